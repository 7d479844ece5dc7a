package mock

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"room-booking/internal/calendar"
	"room-booking/internal/model"
	"room-booking/internal/room"
	pkgLog "room-booking/pkg/log"
)

const idPrefix = "evt_mock_"

// RoomResolver validates locations on create. *room.Registry satisfies it.
type RoomResolver interface {
	Resolve(name string) (room.Resolution, error)
}

// Options configures the in-memory calendar.
type Options struct {
	Location  *time.Location   // civil timezone of the seeded events; UTC when nil
	Now       func() time.Time // clock used for seeding; time.Now when nil
	Rooms     RoomResolver     // when set, CreateEvent rejects unknown rooms
	FailHosts []string         // emails AddHost refuses
	NoSeed    bool             // start empty instead of with the sample events
}

// Calendar is an in-memory calendar.Calendar for local runs and tests.
type Calendar struct {
	l         pkgLog.Logger
	rooms     RoomResolver
	failHosts map[string]struct{}

	mu     sync.RWMutex
	events map[string]model.Event
	hosts  map[string][]string
}

var _ calendar.Calendar = (*Calendar)(nil)

// New creates the in-memory calendar, seeded with a "Daily Standup" and a
// "Team Lunch" today unless opts.NoSeed is set.
func New(l pkgLog.Logger, opts Options) *Calendar {
	c := &Calendar{
		l:         l,
		rooms:     opts.Rooms,
		failHosts: make(map[string]struct{}, len(opts.FailHosts)),
		events:    make(map[string]model.Event),
		hosts:     make(map[string][]string),
	}
	for _, email := range opts.FailHosts {
		c.failHosts[strings.ToLower(email)] = struct{}{}
	}
	if !opts.NoSeed {
		c.Seed(sampleEvents(opts)...)
	}
	return c
}

func sampleEvents(opts Options) []model.Event {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	y, m, d := now().In(loc).Date()
	at := func(hour, minute int) time.Time { return time.Date(y, m, d, hour, minute, 0, 0, loc) }

	return []model.Event{
		{
			Name:        "Daily Standup",
			StartTime:   at(10, 0),
			EndTime:     at(10, 30),
			Location:    "Conference Room A",
			Description: "Daily team sync",
		},
		{
			Name:        "Team Lunch",
			StartTime:   at(12, 0),
			EndTime:     at(13, 0),
			Location:    "Collaboration Space",
			Description: "Team building lunch",
		},
	}
}

// Seed stores events as-is, assigning ids to those without one.
func (c *Calendar) Seed(events ...model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range events {
		if e.ID == "" {
			e.ID = newID()
		}
		c.events[e.ID] = e
	}
}

// GetEvents returns stored events overlapping [start, end), ordered by start time.
func (c *Calendar) GetEvents(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Event
	for _, e := range c.events {
		if e.StartTime.Before(end) && e.EndTime.After(start) {
			out = append(out, clone(e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

// CreateEvent stores event under a new id and attaches its hosts.
func (c *Calendar) CreateEvent(ctx context.Context, event model.Event) (calendar.CreateOutput, error) {
	if c.rooms != nil {
		if _, err := c.rooms.Resolve(event.Location); err != nil {
			return calendar.CreateOutput{}, fmt.Errorf("mock.CreateEvent: %w", err)
		}
	}

	primary, additional := event.HostEmail, event.AdditionalHosts
	event = clone(event)
	event.ID = newID()
	event.HostEmail = ""
	event.AdditionalHosts = nil

	c.mu.Lock()
	c.events[event.ID] = event
	c.mu.Unlock()
	c.l.Infof(ctx, "mock.CreateEvent: created %s (%q in %s)", event.ID, event.Name, event.Location)

	failures, err := calendar.AttachHosts(ctx, c.l, c, event.ID, primary, additional)
	if err != nil {
		return calendar.CreateOutput{EventID: event.ID}, err
	}
	return calendar.CreateOutput{EventID: event.ID, HostFailures: failures}, nil
}

// GetEvent returns the stored event with its attached hosts.
func (c *Calendar) GetEvent(ctx context.Context, id string) (model.Event, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.events[id]
	if !ok {
		return model.Event{}, fmt.Errorf("mock.GetEvent %s: %w", id, calendar.ErrEventNotFound)
	}
	e = clone(e)
	if hosts := c.hosts[id]; len(hosts) > 0 {
		e.HostEmail = hosts[0]
		e.AdditionalHosts = slices.Clone(hosts[1:])
	}
	return e, nil
}

// AddHost records email as a host of eventID. Emails listed in
// Options.FailHosts are refused.
func (c *Calendar) AddHost(ctx context.Context, eventID, email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[eventID]; !ok {
		return fmt.Errorf("mock.AddHost %s: %w", eventID, calendar.ErrEventNotFound)
	}
	if _, fail := c.failHosts[strings.ToLower(email)]; fail {
		return fmt.Errorf("mock.AddHost: %s is not allowed to host", email)
	}
	if !slices.Contains(c.hosts[eventID], email) {
		c.hosts[eventID] = append(c.hosts[eventID], email)
	}
	return nil
}

// Hosts returns the hosts recorded for eventID in the order they were added.
func (c *Calendar) Hosts(eventID string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.hosts[eventID])
}

func newID() string {
	return idPrefix + uuid.NewString()
}

func clone(e model.Event) model.Event {
	e.AdditionalHosts = slices.Clone(e.AdditionalHosts)
	return e
}
