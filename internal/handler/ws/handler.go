package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	reqdto "zenithstays/internal/handler/dto/request"
	"zenithstays/internal/handler/middleware"
	"zenithstays/internal/pkg/config"
	"zenithstays/internal/realtime"
	"zenithstays/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Inbound event names understood by the socket endpoint.
const (
	eventJoinRoom        = "join_room"
	eventBroadcastSearch = "broadcast_search"
)

// inboundMessage keeps the payload raw so each event can bind its own shape.
type inboundMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Handler struct {
	registry          *realtime.Registry
	broadcastCommands commands.BroadcastCommands
	cfg               config.RealtimeConfig
	logger            *slog.Logger
	upgrader          websocket.Upgrader
}

func NewHandler(
	registry *realtime.Registry,
	broadcastCommands commands.BroadcastCommands,
	cfg config.RealtimeConfig,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registry:          registry,
		broadcastCommands: broadcastCommands,
		cfg:               cfg,
		logger:            logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origins are already filtered by the CORS layer and the
			// socket endpoint requires a valid token on top.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the authenticated request and runs the connection until the
// peer disconnects. One write pump per connection keeps delivery ordered.
func (h *Handler) Serve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err, "user_id", userID)
		return
	}

	client := realtime.NewClient(conn, h.cfg.SendBufferSize)
	// Pings must land before the read deadline below lapses, otherwise an
	// idle but healthy connection gets reaped.
	go client.WritePump(h.cfg.WriteTimeout, h.cfg.PongTimeout*9/10)

	defer func() {
		h.registry.Leave(client)
		client.CloseSend()
	}()

	conn.SetReadLimit(h.cfg.MaxMessageBytes)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.PongTimeout))
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", "error", err, "user_id", userID)
			}
			return
		}
		h.dispatch(c, client, userID, msg)
	}
}

func (h *Handler) dispatch(c *gin.Context, client *realtime.Client, userID uuid.UUID, msg inboundMessage) {
	switch msg.Event {
	case eventJoinRoom:
		// The room identity comes from the authenticated token, never from
		// the payload, so a client cannot join another user's room.
		h.registry.Join(client, userID)

	case eventBroadcastSearch:
		var req reqdto.CreateBroadcastRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.logger.Warn("malformed broadcast_search payload", "error", err, "user_id", userID)
			return
		}
		if _, err := h.broadcastCommands.Submit(c.Request.Context(), userID, req); err != nil {
			h.logger.Warn("broadcast submit over socket failed", "error", err, "user_id", userID)
		}

	default:
		h.logger.Debug("ignoring unknown socket event", "event", msg.Event, "user_id", userID)
	}
}
