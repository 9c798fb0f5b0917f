package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/core"
)

// RoomHandlers provides HTTP handlers for room listing endpoints.
type RoomHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(hub *core.Hub, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		hub: hub,
		log: logger,
	}
}

// ListRooms returns every existing room, default room included.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, RoomsResponse{Rooms: h.hub.ListRooms()})
}

// ListUserRooms returns the rooms the given user belongs to.
// GET /api/users/rooms?user=NAME
func (h *RoomHandlers) ListUserRooms(c *gin.Context) {
	user := c.Query("user")

	rooms, err := h.hub.RoomsFor(user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, RoomsResponse{Rooms: rooms})
}
