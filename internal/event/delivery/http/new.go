package http

import (
	"integra-recife/internal/event"
	pkgLog "integra-recife/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc event.UseCase
}

// New creates a new event HTTP handler.
func New(l pkgLog.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
