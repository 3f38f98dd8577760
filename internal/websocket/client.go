package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

// Client is one open browser tab listening for feed changes.
type Client struct {
	ID      string
	Conn    *websocket.Conn
	Manager *Manager
	Send    chan []byte
}

func NewClient(id string, conn *websocket.Conn, manager *Manager) *Client {
	return &Client{
		ID:      id,
		Conn:    conn,
		Manager: manager,
		Send:    make(chan []byte, 64),
	}
}

// ReadPump only keeps the connection alive; incoming messages are discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.Manager.unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.Manager.maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.Manager.pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.Manager.pongWait))
		return nil
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Manager.debugf("read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(c.Manager.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.Manager.writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
