package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/core"
	"github.com/classchat/classchat-server/internal/metrics"
)

// AdminHandlers provides HTTP handlers for teacher-only operations plus the
// unprivileged privacy state probe.
type AdminHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewAdminHandlers creates a new admin handlers instance.
func NewAdminHandlers(hub *core.Hub, logger *zerolog.Logger) *AdminHandlers {
	return &AdminHandlers{
		hub: hub,
		log: logger,
	}
}

// CreateRoomRequest represents the create room request body.
type CreateRoomRequest struct {
	Sender   string `json:"sender" binding:"required"`
	RoomName string `json:"room_name" binding:"required"`
}

// MembershipRequest represents add/remove member request bodies.
type MembershipRequest struct {
	Sender string `json:"sender" binding:"required"`
	User   string `json:"user" binding:"required"`
	Room   string `json:"room" binding:"required"`
}

// CloseRoomRequest represents the close room request body.
type CloseRoomRequest struct {
	Sender string `json:"sender" binding:"required"`
	Room   string `json:"room" binding:"required"`
}

// ToggleRequest represents the privacy toggle request body.
type ToggleRequest struct {
	Sender string `json:"sender" binding:"required"`
}

// CreateRoom creates a new empty room.
// POST /api/admin/rooms
func (h *AdminHandlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create room request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.CreateRoom(req.Sender, req.RoomName); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: fmt.Sprintf("Room %s created", req.RoomName)})
}

// AddMember places a user in a room, creating the room if needed.
// POST /api/admin/members/add
func (h *AdminHandlers) AddMember(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid add member request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.AddMember(req.Sender, req.User, req.Room); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: fmt.Sprintf("%s added to room %s", req.User, req.Room)})
}

// RemoveMember takes a user out of a room and back into the default room.
// POST /api/admin/members/remove
func (h *AdminHandlers) RemoveMember(c *gin.Context) {
	var req MembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid remove member request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.RemoveMember(req.Sender, req.User, req.Room); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Status: fmt.Sprintf("%s removed from room %s and moved to %s", req.User, req.Room, h.hub.DefaultRoom()),
	})
}

// CloseRoom deletes a room and migrates its members to the default room.
// POST /api/admin/rooms/close
func (h *AdminHandlers) CloseRoom(c *gin.Context) {
	var req CloseRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid close room request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.CloseRoom(req.Sender, req.Room); err != nil {
		writeError(c, err)
		return
	}

	metrics.RoomsClosed.Inc()
	c.JSON(http.StatusOK, StatusResponse{
		Status: fmt.Sprintf("Room %s closed and users moved to %s", req.Room, h.hub.DefaultRoom()),
	})
}

// TogglePrivacy flips the global privacy flag.
// POST /api/admin/privacy/toggle
func (h *AdminHandlers) TogglePrivacy(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid toggle request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	enabled, err := h.hub.TogglePrivacy(req.Sender)
	if err != nil {
		writeError(c, err)
		return
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	c.JSON(http.StatusOK, PrivacyResponse{
		Status:  fmt.Sprintf("Private communication has been %s", state),
		Enabled: enabled,
	})
}

// PrivacyState reports the current privacy flag. Unprivileged.
// GET /api/privacy
func (h *AdminHandlers) PrivacyState(c *gin.Context) {
	c.JSON(http.StatusOK, PrivacyResponse{Enabled: h.hub.PrivacyEnabled()})
}
