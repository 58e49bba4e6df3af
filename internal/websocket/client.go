package websocket

import (
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// Client is a middleman between one websocket connection and the hub.
// SessionId and Joined are owned by the hub goroutine after registration;
// UserId is fixed at handshake time from the JWT.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	UserId uuid.UUID

	// Join protocol state, mutated only by the hub run loop.
	SessionId uuid.UUID
	Joined    bool

	// Buffered channel of outbound frames.
	Send chan []byte
}

// readPump pumps messages from the websocket connection to the hub. Malformed
// frames are swallowed (logged by the hub) so one bad message does not kill a
// collaborative session.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.Hub.dropped(c, err)
			continue
		}

		switch env.Type {
		case TypeJoinSession:
			var msg JoinSessionMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				c.Hub.dropped(c, err)
				continue
			}
			c.Hub.join <- joinRequest{client: c, msg: msg}
		case TypeCellUpdate:
			var msg CellUpdateMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				c.Hub.dropped(c, err)
				continue
			}
			c.Hub.relay <- relayRequest{client: c, msg: msg}
		default:
			// Unknown types are ignored, not errors.
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs attaches a freshly upgraded connection to the hub and runs its
// pumps. The read pump runs on the caller's goroutine (the Fiber handler).
func ServeWs(hub *Hub, conn *websocket.Conn, userId uuid.UUID) {
	client := &Client{Hub: hub, Conn: conn, UserId: userId, Send: make(chan []byte, 256)}

	go client.writePump()
	client.readPump()
}
