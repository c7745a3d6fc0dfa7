package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type EventType string

const (
	EventInserted EventType = "inserted"
	EventDeleted  EventType = "deleted"
)

// Event is one reservation change. Inserted events carry the full stored row
// so subscribers can render without a follow-up fetch; deleted events carry
// only the id.
type Event struct {
	Type        EventType                `json:"type"`
	ID          uuid.UUID                `json:"id"`
	Reservation *queries.ReservationView `json:"reservation,omitempty"`
}

// RedisChangeFeed broadcasts reservation changes over a redis pub/sub channel.
// Delivery is at-least-once and best-effort: a subscriber that drops must
// reconcile by re-fetching full state, and the booking path never depends on
// the feed for correctness.
type RedisChangeFeed struct {
	client  *redis.Client
	channel string
}

func NewRedisChangeFeed(client *redis.Client, channel string) *RedisChangeFeed {
	return &RedisChangeFeed{client: client, channel: channel}
}

func (f *RedisChangeFeed) PublishInserted(ctx context.Context, view *queries.ReservationView) error {
	return f.publish(ctx, Event{Type: EventInserted, ID: view.ID, Reservation: view})
}

func (f *RedisChangeFeed) PublishDeleted(ctx context.Context, id uuid.UUID) error {
	return f.publish(ctx, Event{Type: EventDeleted, ID: id})
}

func (f *RedisChangeFeed) publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal feed event", err)
	}
	if err := f.client.Publish(ctx, f.channel, payload).Err(); err != nil {
		return infra.WrapRepoErr("failed to publish feed event", err)
	}
	return nil
}

// Subscribe opens a caller-owned subscription handle with the lifecycle
// open -> deliver(event)* -> close. The caller must call Close; events
// arriving while the subscriber is slow are dropped rather than blocking
// the pump.
func (f *RedisChangeFeed) Subscribe(ctx context.Context) *Subscription {
	pubsub := f.client.Subscribe(ctx, f.channel)

	sub := &Subscription{
		events: make(chan Event, 16),
		pubsub: pubsub,
	}

	go func() {
		defer close(sub.events)
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.Warn("dropping malformed feed event", "error", err)
				continue
			}
			select {
			case sub.events <- event:
			default:
				slog.Warn("dropping feed event for slow subscriber", "event_id", event.ID)
			}
		}
	}()

	return sub
}

type Subscription struct {
	events    chan Event
	pubsub    *redis.PubSub
	closeOnce sync.Once
}

// C delivers events until the subscription is closed; the channel is closed
// afterwards.
func (s *Subscription) C() <-chan Event {
	return s.events
}

func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.pubsub.Close()
	})
	return err
}
