package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/save-point/internal/domain"
	"github.com/iamasit07/save-point/internal/lib/logger/sl"
)

const (
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512
	sendBuffer     = 16

	defaultWriteWait = 10 * time.Second
)

// client is one feed subscriber. Only writePump writes to conn.
type client struct {
	id   string
	conn *websocket.Conn
	send chan domain.GameEvent
}

// ConnectionManager tracks feed subscribers and fans game events out to them
type ConnectionManager struct {
	clients   map[string]*client
	mu        sync.RWMutex // protects clients
	writeWait time.Duration
	log       *slog.Logger
}

func NewConnectionManager(log *slog.Logger, writeWait time.Duration) *ConnectionManager {
	if writeWait <= 0 {
		writeWait = defaultWriteWait
	}
	return &ConnectionManager{
		clients:   make(map[string]*client),
		writeWait: writeWait,
		log:       log.With(slog.String("component", "transport/websocket")),
	}
}

func (cm *ConnectionManager) add(c *client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.clients[c.id] = c
}

// remove unregisters c and closes its send channel, which stops writePump.
// Safe to call more than once.
func (cm *ConnectionManager) remove(c *client) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if current, exists := cm.clients[c.id]; exists && current == c {
		delete(cm.clients, c.id)
		close(c.send)
	}
}

// Count returns the number of connected subscribers
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.clients)
}

// Publish queues event for every subscriber without blocking. A subscriber
// whose buffer is full is dropped.
func (cm *ConnectionManager) Publish(event domain.GameEvent) {
	var slow []*client

	cm.mu.RLock()
	for _, c := range cm.clients {
		select {
		case c.send <- event:
		default:
			slow = append(slow, c)
		}
	}
	cm.mu.RUnlock()

	for _, c := range slow {
		cm.log.Warn("dropping slow feed subscriber", slog.String("client_id", c.id))
		cm.remove(c)
	}
}

// CloseAll disconnects every subscriber. Used on shutdown since hijacked
// connections are not tracked by http.Server.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id, c := range cm.clients {
		delete(cm.clients, id)
		close(c.send)
	}
}

func (cm *ConnectionManager) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(cm.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				cm.log.Debug("feed write failed", slog.String("client_id", c.id), sl.Err(err))
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(cm.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only exists to process pongs and notice when the peer goes away.
// Subscribers never send commands.
func (cm *ConnectionManager) readPump(c *client) {
	defer cm.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				cm.log.Debug("feed subscriber closed unexpectedly", slog.String("client_id", c.id), sl.Err(err))
			}
			return
		}
	}
}
