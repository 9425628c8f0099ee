package realtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message is the JSON envelope for every frame pushed to a live connection.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Client is one live connection. A user with several tabs open holds several
// clients in the same room. Frames are queued on a buffered send channel and
// written by a single write pump, so delivery per connection is FIFO and a
// slow connection never blocks the emitter or its siblings.
type Client struct {
	conn *websocket.Conn

	mu     sync.RWMutex
	send   chan Message
	closed bool
}

func NewClient(conn *websocket.Conn, sendBufferSize int) *Client {
	if sendBufferSize <= 0 {
		sendBufferSize = 64
	}
	return &Client{
		conn: conn,
		send: make(chan Message, sendBufferSize),
	}
}

// TrySend queues a message without blocking. Returns false when the client
// is closed or its buffer is full and the message was dropped. An emitter
// may hold a member snapshot taken just before the client left, so sending
// after CloseSend must stay safe.
func (c *Client) TrySend(msg Message) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Send exposes the queue for the write pump and for tests.
func (c *Client) Send() <-chan Message {
	return c.send
}

// WritePump drains the send queue onto the websocket until the queue is
// closed or a write fails, and pings the peer every pingInterval so the
// pong handler on the read side keeps extending its deadline. pingInterval
// must be shorter than the read side's pong timeout or idle connections
// get reaped. Run it in its own goroutine per connection.
func (c *Client) WritePump(writeTimeout, pingInterval time.Duration) {
	if pingInterval <= 0 {
		pingInterval = 30 * time.Second
	}
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				_ = c.conn.Close()
				return
			}
			if writeTimeout > 0 {
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				slog.Debug("websocket write failed, closing connection", "error", err.Error())
				_ = c.conn.Close()
				return
			}
		case <-ticker.C:
			if writeTimeout > 0 {
				_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("websocket ping failed, closing connection", "error", err.Error())
				_ = c.conn.Close()
				return
			}
		}
	}
}

// CloseSend stops the write pump. Idempotent; call after the client has
// left the registry.
func (c *Client) CloseSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}
