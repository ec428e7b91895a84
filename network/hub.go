package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/coder/websocket"
)

var ErrHubFull = errors.New("client limit reached")

// Hub fans snapshots out to connected viewers
type Hub struct {
	mu           sync.Mutex
	clients      map[*websocket.Conn]struct{}
	maxClients   int
	writeTimeout time.Duration
}

func NewHub(maxClients int, writeTimeout time.Duration) *Hub {
	return &Hub{
		clients:      make(map[*websocket.Conn]struct{}),
		maxClients:   maxClients,
		writeTimeout: writeTimeout,
	}
}

// Add registers conn unless the hub is full
func (h *Hub) Add(conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.maxClients > 0 && len(h.clients) >= h.maxClients {
		return ErrHubFull
	}
	h.clients[conn] = struct{}{}
	return nil
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast writes message to every client, dropping those that fail
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), h.writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}

// CloseAll disconnects every client
func (h *Hub) CloseAll() {
	h.mu.Lock()
	for conn := range h.clients {
		_ = conn.Close(websocket.StatusGoingAway, "server shutdown")
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
