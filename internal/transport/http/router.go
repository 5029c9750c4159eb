package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/save-point/internal/service/game"
	"github.com/iamasit07/save-point/internal/transport/http/middleware"
	"github.com/iamasit07/save-point/internal/transport/websocket"
)

// NewRouter builds the gin engine serving the games API, the health check
// and the change feed. wsHandler may be nil to disable the feed.
func NewRouter(gameService *game.Service, wsHandler *websocket.Handler, allowedOrigins []string, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(log), gin.Recovery())
	router.Use(middleware.CORSMiddleware(allowedOrigins, log))

	router.GET("/health", HealthHandler(gameService))

	NewGameHandler(gameService, log).Register(router)

	if wsHandler != nil {
		router.GET("/ws", wsHandler.HandleWebSocket)
	}

	return router
}
