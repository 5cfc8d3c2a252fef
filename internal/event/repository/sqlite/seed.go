package sqlite

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	repo "integra-recife/internal/event/repository"
)

type seedFile struct {
	Events []repo.CreateEventOptions `yaml:"events"`
}

// LoadSeedFile reads event fixtures from a YAML file with a top-level "events" list.
func LoadSeedFile(path string) ([]repo.CreateEventOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return f.Events, nil
}

// Seed inserts events only when the store is empty. It returns how many were inserted.
func Seed(ctx context.Context, r repo.EventRepository, events []repo.CreateEventOptions) (int, error) {
	n, err := r.CountEvents(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, ev := range events {
		if _, err := r.CreateEvent(ctx, ev); err != nil {
			return i, err
		}
	}
	return len(events), nil
}
