package booking

import (
	"fmt"
	"strings"

	"room-booking/internal/model"
)

// FieldError is a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects malformed input before any calendar call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// ConflictError rejects a candidate that collides with existing bookings.
// Conflicts holds every colliding event in calendar order.
type ConflictError struct {
	Candidate model.Event
	Conflicts []model.Event
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%q in %s conflicts with %d existing event(s)", e.Candidate.Name, e.Candidate.Location, len(e.Conflicts))
}

// CreateError reports that the calendar refused or failed the create call.
// EventID is set when the event exists but a later step failed (primary host).
type CreateError struct {
	EventID string
	Err     error
}

func (e *CreateError) Error() string {
	if e.EventID != "" {
		return fmt.Sprintf("create event (left as %s): %v", e.EventID, e.Err)
	}
	return fmt.Sprintf("create event: %v", e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}
