package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/gin-gonic/gin"

	"room-booking/internal/booking"
	"room-booking/pkg/response"
)

const productID = "-//room-booking//EN"

// ExportICS godoc
// @Summary     Export a day as iCalendar
// @Description Returns the events of one day as a text/calendar document.
// @Tags        Events
// @Produce     text/calendar
// @Param       date query string false "YYYY-MM-DD, today, tomorrow or yesterday (default today)"
// @Success     200 {string} string "VCALENDAR document"
// @Failure     400 {object} response.Resp "Invalid date"
// @Failure     502 {object} response.Resp "Calendar service failure"
// @Router      /api/v1/calendar.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
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

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(toICalendar(output, time.Now().UTC())); err != nil {
		h.l.Errorf(ctx, "ical.Encode: %v", err)
		response.InternalError(c, err)
		return
	}

	filename := fmt.Sprintf("rooms-%s.ics", output.Day.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func toICalendar(out booking.EventsOnOutput, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for _, e := range out.Events {
		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, e.ID)
		ve.Props.SetText(ical.PropSummary, e.Name)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		ve.Props.SetDateTime(ical.PropDateTimeStart, e.StartTime.UTC())
		ve.Props.SetDateTime(ical.PropDateTimeEnd, e.EndTime.UTC())
		ve.Props.SetText(ical.PropLocation, e.Location)
		if e.Description != "" {
			ve.Props.SetText(ical.PropDescription, e.Description)
		}
		if e.URL != "" {
			ve.Props.SetText(ical.PropURL, e.URL)
		}
		if e.HostEmail != "" {
			p := ical.NewProp(ical.PropOrganizer)
			p.SetText("mailto:" + e.HostEmail)
			ve.Props.Add(p)
		}
		cal.Children = append(cal.Children, ve)
	}
	return cal
}
