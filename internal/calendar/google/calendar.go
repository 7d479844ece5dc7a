package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-booking/internal/calendar"
	"room-booking/internal/model"
	"room-booking/pkg/gcalendar"
	pkgLog "room-booking/pkg/log"
)

// Client is the subset of *gcalendar.Client the provider uses.
type Client interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	GetEvent(ctx context.Context, calendarID, eventID string) (*gcalendar.Event, error)
	AddAttendee(ctx context.Context, calendarID, eventID, email string) error
}

type implCalendar struct {
	l          pkgLog.Logger
	client     Client
	locator    *calendar.Locator
	loc        *time.Location
	calendarID string
	pageSize   int64
}

// New creates a calendar.Calendar backed by a Google calendar. Hosts are
// attached as attendees.
func New(l pkgLog.Logger, client Client, locator *calendar.Locator, loc *time.Location, calendarID string, pageSize int64) calendar.Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &implCalendar{
		l:          l,
		client:     client,
		locator:    locator,
		loc:        loc,
		calendarID: calendarID,
		pageSize:   pageSize,
	}
}

func (c *implCalendar) GetEvents(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	items, err := c.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: c.calendarID,
		TimeMin:    start,
		TimeMax:    end,
		MaxResults: c.pageSize,
	})
	if err != nil {
		c.l.Errorf(ctx, "google.GetEvents: %v", err)
		return nil, &calendar.UpstreamError{Op: "google.GetEvents", Err: err}
	}

	events := make([]model.Event, 0, len(items))
	for _, item := range items {
		events = append(events, c.toModel(item))
	}
	return events, nil
}

func (c *implCalendar) CreateEvent(ctx context.Context, event model.Event) (calendar.CreateOutput, error) {
	addr, err := c.locator.Address(event.Location)
	if err != nil {
		return calendar.CreateOutput{}, err
	}

	created, err := c.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  c.calendarID,
		Summary:     event.Name,
		Description: event.Description,
		Location:    addr.Text,
		StartTime:   event.StartTime.In(c.loc),
		EndTime:     event.EndTime.In(c.loc),
		Timezone:    c.loc.String(),
	})
	if err != nil {
		c.l.Errorf(ctx, "google.CreateEvent: %v", err)
		return calendar.CreateOutput{}, &calendar.UpstreamError{Op: "google.CreateEvent", Err: err}
	}
	c.l.Infof(ctx, "google.CreateEvent: created %s (%q in %s)", created.ID, event.Name, event.Location)

	failures, err := calendar.AttachHosts(ctx, c.l, c, created.ID, event.HostEmail, event.AdditionalHosts)
	if err != nil {
		return calendar.CreateOutput{EventID: created.ID}, err
	}
	return calendar.CreateOutput{EventID: created.ID, HostFailures: failures}, nil
}

func (c *implCalendar) GetEvent(ctx context.Context, id string) (model.Event, error) {
	item, err := c.client.GetEvent(ctx, c.calendarID, id)
	if err != nil {
		return model.Event{}, mapErr("google.GetEvent", err)
	}
	return c.toModel(*item), nil
}

func (c *implCalendar) AddHost(ctx context.Context, eventID, email string) error {
	if err := c.client.AddAttendee(ctx, c.calendarID, eventID, email); err != nil {
		return mapErr("google.AddHost", err)
	}
	return nil
}

func (c *implCalendar) toModel(item gcalendar.Event) model.Event {
	ev := model.Event{
		ID:          item.ID,
		Name:        item.Summary,
		StartTime:   item.StartTime.In(c.loc),
		EndTime:     item.EndTime.In(c.loc),
		Description: item.Description,
		URL:         item.HtmlLink,
		Location: c.locator.Locate(calendar.LocationFields{
			Address:     item.Location,
			Name:        item.Summary,
			Description: item.Description,
		}),
	}
	if len(item.Attendees) > 0 {
		ev.HostEmail = item.Attendees[0]
		ev.AdditionalHosts = item.Attendees[1:]
	}
	return ev
}

func mapErr(op string, err error) error {
	if errors.Is(err, gcalendar.ErrEventNotFound) {
		return fmt.Errorf("%s: %w", op, calendar.ErrEventNotFound)
	}
	return &calendar.UpstreamError{Op: op, Err: err}
}
