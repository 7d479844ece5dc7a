package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "room-booking/internal/booking/delivery/http"
)

// setupBookingDomain registers /api/v1/events, /calendar.ics, /locations and /rooms.
func (srv *HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := bookingHTTP.New(srv.l, srv.bookingUC)
	bookingHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}
