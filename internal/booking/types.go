package booking

import (
	"time"

	"room-booking/internal/calendar"
	"room-booking/internal/model"
)

// BookInput is an inbound booking request.
type BookInput struct {
	Name            string    `validate:"required,max=200"`
	StartTime       time.Time `validate:"required"`
	EndTime         time.Time `validate:"required"`
	Location        string    `validate:"required"`
	Description     string    `validate:"max=4000"`
	HostEmail       string    `validate:"omitempty,email"`
	AdditionalHosts []string  `validate:"omitempty,max=50,dive,email"`
}

// BookOutput is the result of a successful booking.
// HostFailures lists additional hosts that could not be attached.
type BookOutput struct {
	EventID      string
	Event        model.Event
	HostFailures []calendar.HostFailure
}

// EventsOnInput selects a civil day: YYYY-MM-DD, "today", "tomorrow",
// "yesterday", or empty for today.
type EventsOnInput struct {
	Date string
}

// EventsOnOutput is the list of events of one day.
type EventsOnOutput struct {
	Day    time.Time
	Events []model.Event
}

// RoomsOutput is the room directory.
type RoomsOutput struct {
	Names     []string
	Buildings []model.Building
}
