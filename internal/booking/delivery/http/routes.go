package http

import (
	"github.com/gin-gonic/gin"

	"room-booking/internal/middleware"
)

// RegisterRoutes maps the booking endpoints under rg (normally /api/v1).
// Booking creation is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("", mw.RateLimit(), h.Book)
		events.GET("", h.ListEvents)
		events.GET("/:id", h.Detail)
	}

	rg.GET("/calendar.ics", h.ExportICS)
	rg.GET("/locations", h.Locations)
	rg.GET("/rooms", h.Rooms)
}
