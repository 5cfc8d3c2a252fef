package repository

import (
	"time"

	"integra-recife/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	RawDate     string            `yaml:"date"`
	Location    string            `yaml:"location"`
	Category    string            `yaml:"category"`
	Status      model.EventStatus `yaml:"status"`
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
type GetOneEventOptions struct {
	ID int64
}

// ListEventsOptions holds filter parameters for listing Events.
// Categories are matched case-insensitively; empty means all.
type ListEventsOptions struct {
	Categories []string
	Status     model.EventStatus
}

// TransitionStatusOptions is a compare-and-swap on status for a set of ids.
type TransitionStatusOptions struct {
	IDs       []int64
	From      model.EventStatus
	To        model.EventStatus
	UpdatedAt time.Time
}
