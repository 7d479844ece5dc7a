package booking

import (
	"context"

	"room-booking/internal/model"
)

// UseCase defines the business logic interface for the booking domain.
type UseCase interface {
	// Book checks the candidate against the day's events and creates it when
	// nothing collides. Rejections are *ValidationError, *ConflictError or
	// *CreateError.
	Book(ctx context.Context, input BookInput) (BookOutput, error)

	// EventsOn lists the events of one civil day in the configured timezone.
	EventsOn(ctx context.Context, input EventsOnInput) (EventsOnOutput, error)

	// Event fetches a single event by its calendar id.
	Event(ctx context.Context, id string) (model.Event, error)

	// Rooms lists the configured buildings and rooms.
	Rooms(ctx context.Context) RoomsOutput
}

// Registry is the read-only room directory used for listings.
// *room.Registry satisfies it.
type Registry interface {
	Names() []string
	Buildings() []model.Building
}
