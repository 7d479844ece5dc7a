package http

import (
	"github.com/gin-gonic/gin"

	"room-booking/pkg/response"
)

// Book godoc
// @Summary     Book a room
// @Description Checks the room's day for conflicts (with the configured buffer) and creates the event when the slot is free.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body bookReq true "Booking request"
// @Success     200 {object} bookResp
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Room not found"
// @Failure     409 {object} response.Resp "Conflicts with existing events"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     502 {object} response.Resp "Calendar service failure"
// @Router      /api/v1/events [POST]
func (h *handler) Book(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Book(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Book: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookResp(output))
}

// ListEvents godoc
// @Summary     List events of a day
// @Description Returns every event of one civil day in the configured timezone.
// @Tags        Events
// @Produce     json
// @Param       date query string false "YYYY-MM-DD, today, tomorrow or yesterday (default today)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Invalid date"
// @Failure     502 {object} response.Resp "Calendar service failure"
// @Router      /api/v1/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.EventsOn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EventsOn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// Detail godoc
// @Summary     Get an event
// @Description Fetches a single event from the calendar by id.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Calendar service failure"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	ev, err := h.uc.Event(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Event: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Event: newEventResp(ev)})
}

// Locations godoc
// @Summary     List bookable locations
// @Tags        Rooms
// @Produce     json
// @Success     200 {object} locationsResp
// @Router      /api/v1/locations [GET]
func (h *handler) Locations(c *gin.Context) {
	out := h.uc.Rooms(c.Request.Context())
	response.OK(c, locationsResp{Locations: out.Names})
}

// Rooms godoc
// @Summary     List buildings and rooms
// @Tags        Rooms
// @Produce     json
// @Success     200 {object} roomsResp
// @Router      /api/v1/rooms [GET]
func (h *handler) Rooms(c *gin.Context) {
	out := h.uc.Rooms(c.Request.Context())
	response.OK(c, h.newRoomsResp(out))
}
