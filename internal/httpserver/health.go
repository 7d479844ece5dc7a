package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "room-booking/pkg/errors"
	"room-booking/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Room booking API"
	HealthVersion = "1.0.0"
	ServiceName   = "room-booking"
)

func (srv *HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once at least one bookable room is configured.
// @Summary Readiness Check
// @Description Check if the API is ready to accept bookings
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "No rooms configured"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	rooms := srv.bookingUC.Rooms(c.Request.Context())
	if len(rooms.Names) == 0 {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no rooms configured"))
		return
	}
	body := srv.status("ready")
	body["rooms"] = len(rooms.Names)
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
