package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classchat/classchat-server/internal/core"
)

// statusForCode maps core error codes onto the HTTP contract.
func statusForCode(code string) int {
	switch code {
	case core.ErrCodeMissingFields:
		return http.StatusBadRequest
	case core.ErrCodeUnauthorized:
		return http.StatusForbidden
	case core.ErrCodeNotAMember:
		return http.StatusBadRequest
	case core.ErrCodeRoomNotFound:
		return http.StatusNotFound
	case core.ErrCodeRoomExists:
		return http.StatusBadRequest
	case core.ErrCodeDefaultRoom:
		return http.StatusUnprocessableEntity
	case core.ErrCodePrivateDisabled:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a core error (or a generic 500) as JSON.
func writeError(c *gin.Context, err error) {
	var ce *core.CoreError
	if errors.As(err, &ce) {
		c.JSON(statusForCode(ce.Code), ErrorResponse{Error: ce.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
