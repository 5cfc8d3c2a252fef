package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Delivery is a received message; Payload is left encoded for the handler to decode.
type Delivery struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// DecodePayload unmarshals the payload into v.
func (d Delivery) DecodePayload(v any) error {
	return json.Unmarshal(d.Payload, v)
}

// Decode parses a published envelope.
func Decode(data []byte) (Delivery, error) {
	var d Delivery
	if err := json.Unmarshal(data, &d); err != nil {
		return Delivery{}, fmt.Errorf("failed to decode message: %w", err)
	}
	if d.Type == "" {
		return Delivery{}, fmt.Errorf("failed to decode message: missing type")
	}
	return d, nil
}

// Handler processes one delivery. Returned errors are reported, not retried.
type Handler func(ctx context.Context, d Delivery) error

// Subscriber consumes domain events.
type Subscriber interface {
	Run(ctx context.Context, h Handler, onErr func(error)) error
	Close() error
}

type redisSubscriber struct {
	client  *redis.Client
	channel string
}

// NewRedisSubscriber connects to Redis and verifies the connection with a ping.
func NewRedisSubscriber(ctx context.Context, cfg RedisConfig) (Subscriber, error) {
	client, err := connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &redisSubscriber{client: client, channel: cfg.Channel}, nil
}

// Run blocks until ctx is cancelled or the subscription channel closes.
func (s *redisSubscriber) Run(ctx context.Context, h Handler, onErr func(error)) error {
	if onErr == nil {
		onErr = func(error) {}
	}

	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			d, err := Decode([]byte(msg.Payload))
			if err != nil {
				onErr(err)
				continue
			}
			if err := h(ctx, d); err != nil {
				onErr(fmt.Errorf("handler %s: %w", d.Type, err))
			}
		}
	}
}

func (s *redisSubscriber) Close() error {
	return s.client.Close()
}
