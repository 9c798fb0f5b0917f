package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/core"
	"github.com/classchat/classchat-server/internal/metrics"
)

// UserHandlers provides HTTP handlers for user registration and lookup.
type UserHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewUserHandlers creates a new user handlers instance.
func NewUserHandlers(hub *core.Hub, logger *zerolog.Logger) *UserHandlers {
	return &UserHandlers{
		hub: hub,
		log: logger,
	}
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
}

// Register makes a user known to the system. Registration is otherwise
// implicit on first contact; this endpoint just lets clients do it eagerly.
// POST /api/users/register
func (h *UserHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid register request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing username"})
		return
	}

	if err := h.hub.RegisterUser(req.Username); err != nil {
		writeError(c, err)
		return
	}

	metrics.UsersRegistered.Inc()
	c.JSON(http.StatusOK, StatusResponse{
		Status: fmt.Sprintf("%s registered and added to %s", req.Username, h.hub.DefaultRoom()),
	})
}

// IsTeacher reports whether a username names the privileged identity.
// GET /api/users/teacher?username=NAME
func (h *UserHandlers) IsTeacher(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing username"})
		return
	}

	c.JSON(http.StatusOK, TeacherResponse{Teacher: h.hub.IsTeacher(username)})
}
