// Package notifications publishes post store events over Redis pub/sub and
// streams them to dashboard websockets.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/redis/go-redis/v9"
)

// PostEventsChannel is the Redis channel carrying post store events.
const PostEventsChannel = "posts:events"

// Event types published after a store mutation.
const (
	EventPostCreated = "post.created"
	EventPostUpdated = "post.updated"
	EventPostDeleted = "post.deleted"
)

// PostEvent is the JSON payload published for a mutation.
type PostEvent struct {
	Type       string    `json:"type"`
	PostID     uint      `json:"post_id"`
	Status     string    `json:"status,omitempty"`
	Platforms  []string  `json:"platforms,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier provides helpers to publish events into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
// A nil client turns every call into a no-op.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishPostEvent sends event to PostEventsChannel.
func (n *Notifier) PublishPostEvent(ctx context.Context, event PostEvent) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return n.rdb.Publish(ctx, PostEventsChannel, payload).Err()
}

// StartSubscriber subscribes to PostEventsChannel and calls onEvent for each
// decodable message until ctx is cancelled.
func (n *Notifier) StartSubscriber(ctx context.Context, onEvent func(PostEvent)) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.Subscribe(ctx, PostEventsChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("subscribe %s: %w", PostEventsChannel, err)
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event PostEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("post event subscriber: dropping malformed payload: %v", err)
					continue
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("PANIC in post event subscriber: %v\n%s", r, debug.Stack())
						}
					}()
					onEvent(event)
				}()
			}
		}
	}()

	return nil
}
