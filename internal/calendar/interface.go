package calendar

import (
	"context"
	"time"

	"room-booking/internal/model"
)

// Calendar is the booking store capability. Remote providers (Luma, Google)
// and the in-memory mock all implement it; one is chosen at startup.
type Calendar interface {
	// GetEvents returns every event overlapping [start, end), following
	// pagination until the backing store has no more pages.
	GetEvents(ctx context.Context, start, end time.Time) ([]model.Event, error)

	// CreateEvent creates event and attaches its hosts.
	CreateEvent(ctx context.Context, event model.Event) (CreateOutput, error)

	// GetEvent returns a single event. Unknown ids yield ErrEventNotFound.
	GetEvent(ctx context.Context, id string) (model.Event, error)

	// AddHost grants email host access to an existing event.
	AddHost(ctx context.Context, eventID, email string) error
}

// HostAdder is the subset of Calendar needed to attach hosts.
type HostAdder interface {
	AddHost(ctx context.Context, eventID, email string) error
}
