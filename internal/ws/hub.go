// Package ws pushes order-list updates to connected dashboards. Every
// time the order repository replaces its snapshot, the hub broadcasts
// the fresh list so open dashboards re-render without polling.
package ws

import (
	"context"
	"encoding/json"

	"github.com/pampa-pos/dashboard/internal/model"
	"go.uber.org/zap"
)

// Event is a WebSocket message to be broadcast.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub maintains the set of connected dashboards and fans events out to
// them.
type Hub struct {
	log *zap.SugaredLogger

	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Event
}

// NewHub creates a new Hub.
func NewHub(log *zap.SugaredLogger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Event, 256),
	}
}

// Run owns the client set until ctx is cancelled. Call as a goroutine:
// go hub.Run(ctx)
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return

		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case event := <-h.broadcast:
			message, err := json.Marshal(event)
			if err != nil {
				h.log.Warnw("marshal ws event", "type", event.Type, "error", err)
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues an event for every connected dashboard.
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	default:
		h.log.Warnw("ws broadcast buffer full, dropping event", "type", event.Type)
	}
}

// OrdersUpdated implements the order repository's Notifier: it pushes
// the freshly fetched list to every dashboard.
func (h *Hub) OrdersUpdated(orders []model.Order) {
	payload, err := json.Marshal(orders)
	if err != nil {
		h.log.Warnw("marshal orders payload", "error", err)
		return
	}
	h.Broadcast(Event{Type: "orders.updated", Payload: payload})
}
