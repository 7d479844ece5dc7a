package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName        = errors.New("event name is required")
	ErrEmptyLocation    = errors.New("event location is required")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

// Event is a proposed or confirmed booking.
// ID and URL are empty until the calendar backend assigns them.
type Event struct {
	ID              string
	Name            string
	StartTime       time.Time
	EndTime         time.Time
	Location        string // room identifier; free text for events read back from a calendar
	Description     string
	HostEmail       string
	AdditionalHosts []string
	URL             string
}

// Duration returns EndTime - StartTime.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Validate checks the invariants every booking candidate must satisfy.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.Location) == "" {
		return ErrEmptyLocation
	}
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
