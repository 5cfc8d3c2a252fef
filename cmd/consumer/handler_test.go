package main

import (
	"context"
	"encoding/json"
	"testing"

	"integra-recife/pkg/bus"
	"integra-recife/pkg/log"
)

func delivery(t *testing.T, msgType string, payload any) bus.Delivery {
	t.Helper()
	b, _ := json.Marshal(bus.NewMessage(msgType, payload))
	d, err := bus.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return d
}

func TestHandle(t *testing.T) {
	c := newConsumer(log.NewNop())
	ctx := context.Background()

	if err := c.handle(ctx, delivery(t, statusConcludedMessage, concludedPayload{Count: 2, Source: "scheduler"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.handle(ctx, delivery(t, statusConcludedMessage, concludedPayload{Count: 1, Source: "manual"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.handle(ctx, delivery(t, "event.created", map[string]any{"id": 1})); err != nil {
		t.Fatalf("unknown types must be ignored: %v", err)
	}
	if c.total != 3 {
		t.Errorf("total = %d, want 3", c.total)
	}

	if err := c.handle(ctx, delivery(t, statusConcludedMessage, "not an object")); err == nil {
		t.Errorf("expected decode error")
	}
}
