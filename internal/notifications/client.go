package notifications

import (
	"log"
	"time"

	"socialmanager/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Dashboards only answer pings; anything larger is a misbehaving peer.
	maxMessageSize = 512

	sendBuffer = 64
)

// Client is one dashboard connection fed by a Hub.
type Client struct {
	hub  *Hub
	Conn *websocket.Conn
	// Send carries encoded events; the hub closes it on unregister.
	Send chan []byte
}

// ReadPump drains the connection until the peer goes away, then unregisters
// the client. Incoming text is ignored.
func (c *Client) ReadPump() {
	defer c.hub.UnregisterClient(c)

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("post events socket read error: %v", err)
			}
			return
		}
	}
}

// WritePump writes queued events and keepalive pings until Send is closed.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// trySend queues message without blocking. A full buffer drops it and asks
// the dashboard to re-fetch the listing.
func (c *Client) trySend(message []byte) {
	select {
	case c.Send <- message:
		return
	default:
	}

	observability.DashboardDrops.WithLabelValues("full").Inc()
	select {
	case c.Send <- resyncNotice:
	default:
	}
}
