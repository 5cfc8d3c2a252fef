package bus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is the envelope published for every domain event.
type Message struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewMessage wraps payload with a fresh id and UTC timestamp.
func NewMessage(eventType string, payload any) Message {
	return Message{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// Publisher broadcasts domain events.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every message.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, any) error { return nil }
func (nopPublisher) Close() error                               { return nil }
