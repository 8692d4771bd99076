package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tienphat2910/KLTN2025-Nhom074-WebsiteDatTourDuLichKetHopBanVeTrucTuyen-sub001/internal/catalog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The storefront is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client represents a WebSocket client watching one flight schedule
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	topic topic
}

// ServeWS upgrades an HTTP request to a WebSocket connection, sends the
// initial occupancy snapshot, and keeps the client registered for
// broadcasts until it disconnects.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request, flightID, scheduleID string, snapshot []catalog.SeatStatus) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket: Upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:   hub,
		conn:  conn,
		send:  make(chan []byte, 64),
		topic: topic{flightID: flightID, scheduleID: scheduleID},
	}
	hub.register <- client

	initial, err := json.Marshal(&Message{
		Type:       MessageTypeSnapshot,
		FlightID:   flightID,
		ScheduleID: scheduleID,
		Seats:      snapshot,
		Timestamp:  time.Now().UnixMilli(),
	})
	if err == nil {
		client.send <- initial
	}

	go client.writePump()
	go client.readPump()
}

// readPump drains inbound frames so control messages are processed and
// unregisters the client on disconnect.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket: Read error: %v", err)
			}
			return
		}
	}
}

// writePump forwards hub broadcasts to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
