package api

import (
	"errors"
	"net/http"

	reqdto "zenithstays/internal/handler/dto/request"
	resdto "zenithstays/internal/handler/dto/response"
	"zenithstays/internal/handler/middleware"
	"zenithstays/internal/usecase/commands"
	"zenithstays/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BroadcastHandler struct {
	broadcastCommands commands.BroadcastCommands
	broadcastQueries  queries.BroadcastQueries
}

func NewBroadcastHandler(
	broadcastCommands commands.BroadcastCommands,
	broadcastQueries queries.BroadcastQueries,
) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastCommands: broadcastCommands,
		broadcastQueries:  broadcastQueries,
	}
}

// @Summary Submit broadcast
// @Description Broadcast a stay request to owners with matching listings
// @Tags broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBroadcastRequest true "Broadcast request"
// @Success 201 {object} resdto.BroadcastResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /broadcasts [post]
func (h *BroadcastHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.broadcastCommands.Submit(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPhoneRequired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Phone number is required",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid broadcast data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respond(c, http.StatusCreated, view)
}

// @Summary List open broadcasts for owner
// @Description List open broadcasts whose location matches any of the caller's listings
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BroadcastResponse
// @Failure 401 {object} map[string]string
// @Router /broadcasts/owner [get]
func (h *BroadcastHandler) ListForOwner(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.broadcastQueries.ListOpenForOwner(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromBroadcastViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Accept broadcast
// @Description Claim an open broadcast; exactly one owner may win
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Broadcast ID"
// @Success 200 {object} resdto.BroadcastResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /broadcasts/{id}/accept [put]
func (h *BroadcastHandler) Accept(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	broadcastID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid broadcast ID format",
		})
		return
	}

	view, err := h.broadcastCommands.Accept(c.Request.Context(), broadcastID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBroadcastNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Broadcast not found",
			})
		case errors.Is(err, commands.ErrBroadcastAlreadyTaken):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Broadcast already accepted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respond(c, http.StatusOK, view)
}

func (h *BroadcastHandler) respond(c *gin.Context, status int, view *queries.BroadcastView) {
	resp, err := resdto.FromBroadcastView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(status, resp)
}
