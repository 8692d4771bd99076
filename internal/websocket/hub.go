package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	// MessageTypeSnapshot carries the full occupancy snapshot sent on
	// connect.
	MessageTypeSnapshot MessageType = "occupancy_snapshot"
	// MessageTypeOccupancyUpdated carries incremental seat-status changes
	// pushed from the booking backend.
	MessageTypeOccupancyUpdated MessageType = "occupancy_updated"
)

// Message represents a WebSocket message
type Message struct {
	Type       MessageType          `json:"type"`
	FlightID   string               `json:"flightId"`
	ScheduleID string               `json:"scheduleId"`
	Seats      []catalog.SeatStatus `json:"seats"`
	Timestamp  int64                `json:"timestamp"`
}

// topic identifies one watched seat map.
type topic struct {
	flightID   string
	scheduleID string
}

// Hub manages WebSocket connections per flight schedule
type Hub struct {
	clients    map[topic]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[topic]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.topic] == nil {
				h.clients[client.topic] = make(map[*Client]bool)
			}
			h.clients[client.topic][client] = true
			log.Printf("WebSocket: Client registered for %s/%s (total: %d)", client.topic.flightID, client.topic.scheduleID, len(h.clients[client.topic]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.topic]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					log.Printf("WebSocket: Client unregistered from %s/%s (remaining: %d)", client.topic.flightID, client.topic.scheduleID, len(clients))
					if len(clients) == 0 {
						delete(h.clients, client.topic)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("WebSocket: Failed to marshal message: %v", err)
				continue
			}

			key := topic{flightID: message.FlightID, scheduleID: message.ScheduleID}
			h.mu.RLock()
			clients := h.clients[key]
			h.mu.RUnlock()

			log.Printf("WebSocket: Broadcasting %s to %d clients for %s/%s", message.Type, len(clients), message.FlightID, message.ScheduleID)

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[key], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastOccupancy pushes seat-status changes to every client watching
// a flight schedule.
func (h *Hub) BroadcastOccupancy(flightID, scheduleID string, seats []catalog.SeatStatus) {
	msg := &Message{
		Type:       MessageTypeOccupancyUpdated,
		FlightID:   flightID,
		ScheduleID: scheduleID,
		Seats:      seats,
		Timestamp:  time.Now().UnixMilli(),
	}
	h.broadcast <- msg
}

// GetClientCount returns the number of clients watching a flight schedule
func (h *Hub) GetClientCount(flightID, scheduleID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic{flightID: flightID, scheduleID: scheduleID}])
}
