package main

import (
	"context"
	"fmt"

	"integra-recife/pkg/bus"
	"integra-recife/pkg/log"
)

const statusConcludedMessage = "event.status.concluded"

type concludedPayload struct {
	Count  int    `json:"count"`
	Source string `json:"source"`
	RanAt  string `json:"ran_at"`
}

type consumer struct {
	l     log.Logger
	total int
}

func newConsumer(l log.Logger) *consumer {
	return &consumer{l: l}
}

func (c *consumer) handle(ctx context.Context, d bus.Delivery) error {
	switch d.Type {
	case statusConcludedMessage:
		var p concludedPayload
		if err := d.DecodePayload(&p); err != nil {
			return fmt.Errorf("decode %s: %w", d.ID, err)
		}
		c.total += p.Count
		c.l.Infof(ctx, "consumer: %d event(s) concluded by %s at %s", p.Count, p.Source, p.RanAt)
	default:
		c.l.Debugf(ctx, "consumer: ignoring message type %q", d.Type)
	}
	return nil
}
