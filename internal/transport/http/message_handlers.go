package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/core"
	"github.com/classchat/classchat-server/internal/metrics"
)

// MessageHandlers provides HTTP handlers for sending and polling messages.
type MessageHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewMessageHandlers creates a new message handlers instance.
func NewMessageHandlers(hub *core.Hub, logger *zerolog.Logger) *MessageHandlers {
	return &MessageHandlers{
		hub: hub,
		log: logger,
	}
}

// BroadcastRequest represents the send-to-all-rooms request body.
type BroadcastRequest struct {
	Sender  string `json:"sender" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// RoomMessageRequest represents the send-to-room request body.
type RoomMessageRequest struct {
	Sender  string `json:"sender" binding:"required"`
	Room    string `json:"room" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// PrivateMessageRequest represents the send-to-user request body.
type PrivateMessageRequest struct {
	Sender    string `json:"sender" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// Broadcast posts a message to every existing room.
// POST /api/broadcast
func (h *MessageHandlers) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid broadcast request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.SendToAllRooms(c.Request.Context(), req.Sender, req.Message); err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesSent.WithLabelValues("broadcast").Inc()
	c.JSON(http.StatusOK, StatusResponse{Status: "Message sent to all rooms successfully"})
}

// SendToRoom posts a message to a single room.
// POST /api/rooms/messages
func (h *MessageHandlers) SendToRoom(c *gin.Context) {
	var req RoomMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid room message request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.SendToRoom(c.Request.Context(), req.Sender, req.Room, req.Message); err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesSent.WithLabelValues("room").Inc()
	c.JSON(http.StatusOK, StatusResponse{Status: fmt.Sprintf("Message sent to room %s successfully", req.Room)})
}

// SendPrivate posts a message to a single recipient's private queue.
// POST /api/private/messages
func (h *MessageHandlers) SendPrivate(c *gin.Context) {
	var req PrivateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid private message request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
		return
	}

	if err := h.hub.SendPrivate(c.Request.Context(), req.Sender, req.Recipient, req.Message); err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesSent.WithLabelValues("private").Inc()
	c.JSON(http.StatusOK, StatusResponse{Status: "Private message sent successfully"})
}

// FetchForRoom drains and returns one room's backlog.
// GET /api/rooms/messages?room=NAME
func (h *MessageHandlers) FetchForRoom(c *gin.Context) {
	room := c.Query("room")

	msgs, err := h.hub.FetchForRoom(room)
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesDelivered.Add(float64(len(msgs)))
	c.JSON(http.StatusOK, MessagesResponse{Messages: toMessageItems(msgs)})
}

// FetchForUser drains and returns the caller's merged inbox.
// GET /api/inbox?user=NAME
func (h *MessageHandlers) FetchForUser(c *gin.Context) {
	user := c.Query("user")

	msgs, err := h.hub.FetchForUser(user)
	if err != nil {
		writeError(c, err)
		return
	}

	metrics.MessagesDelivered.Add(float64(len(msgs)))
	c.JSON(http.StatusOK, MessagesResponse{Messages: toMessageItems(msgs)})
}
