package http

import (
	"github.com/gin-gonic/gin"

	"room-booking/internal/booking"
	"room-booking/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	Book(c *gin.Context)
	ListEvents(c *gin.Context)
	Detail(c *gin.Context)
	ExportICS(c *gin.Context)
	Locations(c *gin.Context)
	Rooms(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l log.Logger, uc booking.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
