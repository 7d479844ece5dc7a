package conflict

import (
	"time"

	"room-booking/internal/model"
)

// Rooms reports whether two room identifiers cannot be booked at once.
// *room.Registry satisfies it.
type Rooms interface {
	Conflicting(a, b string) bool
}

// Checker decides whether a candidate booking collides with existing ones.
// It holds no mutable state and performs no I/O.
type Checker struct {
	buffer time.Duration
	rooms  Rooms
}

// New creates a Checker. A negative buffer is treated as zero; a nil Rooms
// only treats identical location strings as the same space.
func New(buffer time.Duration, rooms Rooms) *Checker {
	if buffer < 0 {
		buffer = 0
	}
	return &Checker{buffer: buffer, rooms: rooms}
}

// Buffer returns the padding applied on both ends of a candidate.
func (c *Checker) Buffer() time.Duration {
	return c.buffer
}

// Collides is the predicate behind HasConflict and Conflicts: the buffered
// candidate interval overlaps existing (half-open, touching ends do not
// overlap) and the two locations refer to conflicting spaces.
func (c *Checker) Collides(candidate, existing model.Event) bool {
	start := candidate.StartTime.Add(-c.buffer)
	end := candidate.EndTime.Add(c.buffer)

	if !(start.Before(existing.EndTime) && existing.StartTime.Before(end)) {
		return false
	}
	return c.locationsConflict(candidate.Location, existing.Location)
}

// HasConflict reports whether any existing event collides with candidate.
func (c *Checker) HasConflict(candidate model.Event, existing []model.Event) bool {
	for _, e := range existing {
		if c.Collides(candidate, e) {
			return true
		}
	}
	return false
}

// Conflicts returns every existing event that collides with candidate,
// in the order given.
func (c *Checker) Conflicts(candidate model.Event, existing []model.Event) []model.Event {
	var out []model.Event
	for _, e := range existing {
		if c.Collides(candidate, e) {
			out = append(out, e)
		}
	}
	return out
}

func (c *Checker) locationsConflict(a, b string) bool {
	if a == b {
		return true
	}
	if c.rooms == nil {
		return false
	}
	return c.rooms.Conflicting(a, b)
}
