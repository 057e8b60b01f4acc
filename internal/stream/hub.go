// Package stream pushes stored events to WebSocket clients as they
// land in the vault.
package stream

import (
	"context"
	"encoding/json"

	"crashvault/internal/model"
	"crashvault/pkg/log"
)

// Hub fans events out to every connected client. The clients map is
// touched only by Run's goroutine, so it needs no lock.
type Hub struct {
	l          log.Logger
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub(l log.Logger) *Hub {
	return &Hub{
		l:          l,
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Broadcast queues an event for delivery. When the hub cannot keep up
// the event is dropped; the stream is a live feed, not a durable one.
func (h *Hub) Broadcast(ev model.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	select {
	case h.broadcast <- data:
	default:
	}
}

// Run owns the client set until ctx is canceled. Clients whose send
// buffer is full are dropped so one stuck reader cannot stall the feed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}
