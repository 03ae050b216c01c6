package agenda

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks live websocket connections per producer so fired alerts reach
// every open tab/device. Connections are keyed by a generated id; a producer
// may hold several at once.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]map[string]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]map[string]*websocket.Conn),
	}
}

// Register attaches a connection and returns its id for Unregister.
func (h *Hub) Register(userID int64, conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.connections[userID] == nil {
		h.connections[userID] = make(map[string]*websocket.Conn)
	}
	h.connections[userID][id] = conn
	return id
}

func (h *Hub) Unregister(userID int64, connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.connections[userID]
	if !ok {
		return
	}
	if conn, ok := conns[connID]; ok {
		_ = conn.Close()
		delete(conns, connID)
	}
	if len(conns) == 0 {
		delete(h.connections, userID)
	}
}

// SendToUser pushes a JSON message to every open connection of the producer.
// Dead connections are dropped on write failure. Reports whether at least
// one delivery succeeded.
func (h *Hub) SendToUser(userID int64, message interface{}) bool {
	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections[userID]))
	for id, c := range h.connections[userID] {
		conns[id] = c
	}
	h.mu.RUnlock()

	delivered := false
	for id, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(userID, id)
			continue
		}
		delivered = true
	}
	return delivered
}

// IsOnline reports whether the producer has at least one open connection.
func (h *Hub) IsOnline(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections[userID]) > 0
}

// Close drops every connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, conns := range h.connections {
		for _, conn := range conns {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
