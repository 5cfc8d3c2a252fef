package http

import (
	"github.com/gin-gonic/gin"

	"integra-recife/internal/middleware"
)

// RegisterRoutes registers the event and calendar routes on rg (mounted at /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/calendar.ics", h.ExportICS)
		events.POST("/status/transition", mw.RateLimit(), h.Transition)
		events.GET("/:id", h.Detail)
		events.POST("/:id/google-calendar", h.AddToGoogleCalendar)
	}

	cal := rg.Group("/calendar")
	{
		cal.GET("/days", h.CalendarDays)
		cal.GET("/days/:date", h.EventsOnDay)
	}
}
