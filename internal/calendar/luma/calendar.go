package luma

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/calendar"
	"room-booking/internal/model"
	pkgLog "room-booking/pkg/log"
)

const (
	defaultPageSize    = 50
	defaultAccessLevel = "manager"
)

// Options configures the Luma-backed calendar.
type Options struct {
	PageSize        int    // pagination_limit per page
	HostAccessLevel string // access_level granted by add-host
}

type implCalendar struct {
	l       pkgLog.Logger
	client  *Client
	locator *calendar.Locator
	loc     *time.Location
	opts    Options
}

// New creates a calendar.Calendar backed by the Luma public API.
// Events are created with loc's name as their timezone and read back in loc.
func New(l pkgLog.Logger, client *Client, locator *calendar.Locator, loc *time.Location, opts Options) calendar.Calendar {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.HostAccessLevel == "" {
		opts.HostAccessLevel = defaultAccessLevel
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implCalendar{l: l, client: client, locator: locator, loc: loc, opts: opts}
}

// GetEvents follows next_cursor until has_more is false, the cursor is
// empty, or the API hands back a cursor it already returned.
func (c *implCalendar) GetEvents(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	params := ListEventsParams{
		After:  start.UTC().Format(time.RFC3339),
		Before: end.UTC().Format(time.RFC3339),
		Limit:  c.opts.PageSize,
	}

	var events []model.Event
	seen := make(map[string]struct{})
	for page := 1; ; page++ {
		resp, err := c.client.ListEvents(ctx, params)
		if err != nil {
			c.l.Errorf(ctx, "luma.GetEvents: page %d: %v", page, err)
			return nil, err
		}

		for _, entry := range resp.Entries {
			ev, err := c.toModel(entry.APIID, entry.Event)
			if err != nil {
				c.l.Errorf(ctx, "luma.GetEvents: page %d: %v", page, err)
				return nil, &calendar.UpstreamError{Op: "luma.GetEvents", Err: err}
			}
			if ev.StartTime.Before(end) && ev.EndTime.After(start) {
				events = append(events, ev)
			}
		}

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		if _, dup := seen[resp.NextCursor]; dup {
			c.l.Warnf(ctx, "luma.GetEvents: cursor %q repeated on page %d, stopping", resp.NextCursor, page)
			break
		}
		seen[resp.NextCursor] = struct{}{}
		params.Cursor = resp.NextCursor
	}

	c.l.Debugf(ctx, "luma.GetEvents: %d events in [%s, %s)", len(events), params.After, params.Before)
	return events, nil
}

// CreateEvent resolves the room, creates the event and attaches its hosts.
// On a primary host failure the event id is still returned alongside the error.
func (c *implCalendar) CreateEvent(ctx context.Context, event model.Event) (calendar.CreateOutput, error) {
	addr, err := c.locator.Address(event.Location)
	if err != nil {
		return calendar.CreateOutput{}, err
	}

	req := CreateEventRequest{
		Name:     event.Name,
		StartAt:  event.StartTime.UTC().Format(time.RFC3339),
		EndAt:    event.EndTime.UTC().Format(time.RFC3339),
		Timezone: c.loc.String(),
		GeoAddressJSON: GeoAddress{
			Type:    "manual",
			Address: addr.Text,
		},
		GeoLatitude:   addr.Latitude,
		GeoLongitude:  addr.Longitude,
		DescriptionMD: event.Description,
	}

	id, err := c.client.CreateEvent(ctx, req)
	if err != nil {
		c.l.Errorf(ctx, "luma.CreateEvent: %v", err)
		return calendar.CreateOutput{}, err
	}
	c.l.Infof(ctx, "luma.CreateEvent: created %s (%q in %s)", id, event.Name, event.Location)

	failures, err := calendar.AttachHosts(ctx, c.l, c, id, event.HostEmail, event.AdditionalHosts)
	if err != nil {
		return calendar.CreateOutput{EventID: id}, err
	}
	return calendar.CreateOutput{EventID: id, HostFailures: failures}, nil
}

func (c *implCalendar) GetEvent(ctx context.Context, id string) (model.Event, error) {
	raw, err := c.client.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, err
	}
	ev, err := c.toModel(id, raw)
	if err != nil {
		return model.Event{}, &calendar.UpstreamError{Op: "luma.GetEvent", Err: err}
	}
	return ev, nil
}

func (c *implCalendar) AddHost(ctx context.Context, eventID, email string) error {
	return c.client.AddHost(ctx, AddHostRequest{
		EventAPIID:  eventID,
		Email:       email,
		AccessLevel: c.opts.HostAccessLevel,
		IsVisible:   true,
	})
}

func (c *implCalendar) toModel(entryID string, e Event) (model.Event, error) {
	id := e.APIID
	if id == "" {
		id = entryID
	}

	start, err := time.Parse(time.RFC3339, e.StartAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %s: invalid start_at %q: %w", id, e.StartAt, err)
	}
	end, err := time.Parse(time.RFC3339, e.EndAt)
	if err != nil {
		return model.Event{}, fmt.Errorf("event %s: invalid end_at %q: %w", id, e.EndAt, err)
	}

	description := e.Description
	if description == "" {
		description = e.DescriptionMD
	}

	fields := calendar.LocationFields{Name: e.Name, Description: description}
	if e.GeoAddressJSON != nil {
		fields.Address = e.GeoAddressJSON.Address
		fields.FullAddress = e.GeoAddressJSON.FullAddress
	}

	return model.Event{
		ID:          id,
		Name:        e.Name,
		StartTime:   start.In(c.loc),
		EndTime:     end.In(c.loc),
		Location:    c.locator.Locate(fields),
		Description: description,
		URL:         e.URL,
	}, nil
}
