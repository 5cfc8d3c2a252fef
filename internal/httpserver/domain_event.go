package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "integra-recife/internal/event/delivery/http"
	"integra-recife/internal/middleware"
)

// setupEventDomain registers the event and calendar routes.
// The use case is built by the caller because the scheduler shares it.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := eventHTTP.New(srv.l, srv.eventUC)

	// Registers /api/v1/events/... and /api/v1/calendar/...
	eventHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
