package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"socialmanager/internal/observability"

	"github.com/gofiber/websocket/v2"
)

// maxDashboardConns caps open sockets per process.
const maxDashboardConns = 1000

// ErrHubFull is returned by Register once maxDashboardConns sockets are open.
var ErrHubFull = errors.New("dashboard connection limit reached")

// resyncNotice tells a dashboard it missed events and should re-list.
var resyncNotice = []byte(`{"type":"resync"}`)

// Hub fans post events out to every connected dashboard. It satisfies the
// post service's publisher so events reach sockets without Redis, and it can
// be wired to the Redis channel to relay other replicas' writes.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds conn as a dashboard client.
func (h *Hub) Register(conn *websocket.Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errors.New("hub is shut down")
	}
	if len(h.clients) >= maxDashboardConns {
		return nil, ErrHubFull
	}

	client := &Client{hub: h, Conn: conn, Send: make(chan []byte, sendBuffer)}
	h.clients[client] = struct{}{}
	observability.DashboardSockets.Inc()
	return client, nil
}

// UnregisterClient removes client and closes its Send channel. It is safe to
// call more than once.
func (h *Hub) UnregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)
	observability.DashboardSockets.Dec()
}

// Count returns the number of registered clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues message for every client.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.trySend(message)
	}
}

// PublishPostEvent encodes event and broadcasts it to local clients.
func (h *Hub) PublishPostEvent(_ context.Context, event PostEvent) error {
	if h == nil {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	h.Broadcast(payload)
	return nil
}

// StartWiring relays every event on PostEventsChannel to local clients until
// ctx is cancelled.
func (h *Hub) StartWiring(ctx context.Context, n *Notifier) error {
	return n.StartSubscriber(ctx, func(e PostEvent) {
		_ = h.PublishPostEvent(ctx, e)
	})
}

// Shutdown unregisters every client; their write pumps send a close frame.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.Send)
		observability.DashboardSockets.Dec()
	}
	h.closed = true
	return nil
}
