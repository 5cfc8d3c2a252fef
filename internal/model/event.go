package model

import "time"

// EventStatus is the lifecycle state persisted with an event.
type EventStatus string

const (
	EventStatusActive    EventStatus = "ativo"
	EventStatusInactive  EventStatus = "inativo"
	EventStatusCancelled EventStatus = "cancelado"
	EventStatusConcluded EventStatus = "concluido"
	EventStatusPostponed EventStatus = "adiado"
)

var eventStatusLabels = map[EventStatus]string{
	EventStatusActive:    "Ativo",
	EventStatusInactive:  "Inativo",
	EventStatusCancelled: "Cancelado",
	EventStatusConcluded: "Concluído",
	EventStatusPostponed: "Adiado",
}

// Label returns the display label. Unknown statuses are returned as-is.
func (s EventStatus) Label() string {
	if l, ok := eventStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	_, ok := eventStatusLabels[s]
	return ok
}

// Event is a city event as read from the store.
type Event struct {
	ID          int64
	Title       string
	Description string
	RawDate     string // date column exactly as stored; see datemath.Parser
	Location    string
	Category    string
	Status      EventStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
