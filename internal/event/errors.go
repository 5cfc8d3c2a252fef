package event

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrInvalidWindow         = errors.New("invalid calendar window")
	ErrInvalidDay            = errors.New("invalid day, expected YYYY-MM-DD")
	ErrInvalidStatus         = errors.New("invalid event status")
	ErrStoreUnavailable      = errors.New("event store unavailable")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrCalendarSyncFailed    = errors.New("failed to add event to google calendar")
)
