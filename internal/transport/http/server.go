package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/config"
	"github.com/classchat/classchat-server/internal/core"
)

// NewServer builds an HTTP server with all API routes registered.
func NewServer(hub *core.Hub, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger), MetricsMiddleware())

	router.GET("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	msgHandlers := NewMessageHandlers(hub, logger)
	roomHandlers := NewRoomHandlers(hub, logger)
	userHandlers := NewUserHandlers(hub, logger)
	adminHandlers := NewAdminHandlers(hub, logger)

	api := router.Group("/api")
	{
		api.POST("/broadcast", msgHandlers.Broadcast)
		api.POST("/rooms/messages", msgHandlers.SendToRoom)
		api.POST("/private/messages", msgHandlers.SendPrivate)
		api.GET("/rooms/messages", msgHandlers.FetchForRoom)
		api.GET("/inbox", msgHandlers.FetchForUser)

		api.GET("/rooms", roomHandlers.ListRooms)
		api.GET("/users/rooms", roomHandlers.ListUserRooms)

		api.POST("/users/register", userHandlers.Register)
		api.GET("/users/teacher", userHandlers.IsTeacher)

		api.GET("/privacy", adminHandlers.PrivacyState)

		admin := api.Group("/admin")
		{
			admin.POST("/rooms", adminHandlers.CreateRoom)
			admin.POST("/rooms/close", adminHandlers.CloseRoom)
			admin.POST("/members/add", adminHandlers.AddMember)
			admin.POST("/members/remove", adminHandlers.RemoveMember)
			admin.POST("/privacy/toggle", adminHandlers.TogglePrivacy)
		}
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
