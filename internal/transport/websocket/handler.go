package websocket

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/iamasit07/save-point/internal/domain"
	"github.com/iamasit07/save-point/internal/lib/logger/sl"
	"github.com/iamasit07/save-point/pkg/uid"
)

// Handler upgrades requests on /ws into change feed subscriptions
type Handler struct {
	ConnManager *ConnectionManager
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, checkOrigin func(r *http.Request) bool) *Handler {
	return &Handler{
		ConnManager: cm,
		Upgrader: websocket.Upgrader{
			CheckOrigin:     checkOrigin,
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket blocks until the subscriber disconnects
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.ConnManager.log.Warn("upgrade failed", sl.Err(err))
		return
	}

	sub := &client{
		id:   uid.GenerateConnectionID(),
		conn: conn,
		send: make(chan domain.GameEvent, sendBuffer),
	}
	h.ConnManager.add(sub)
	h.ConnManager.log.Info("feed subscriber connected", slog.String("client_id", sub.id))

	go h.ConnManager.writePump(sub)
	h.ConnManager.readPump(sub)

	h.ConnManager.log.Info("feed subscriber disconnected", slog.String("client_id", sub.id))
}
