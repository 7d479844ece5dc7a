package datemath

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Parser resolves dates and wall-clock times in one fixed civil timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "America/Los_Angeles".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// StartOfDay returns midnight at the start of t's civil day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DayBounds returns the half-open civil day [start, end) containing t.
// end is the next midnight, so days that cross a DST change are 23 or 25 hours long.
func (p *Parser) DayBounds(t time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// ParseDate accepts "today", "tomorrow", "yesterday" or YYYY-MM-DD and
// returns the start of that day. baseTime anchors the relative forms.
func (p *Parser) ParseDate(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "", "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.In(p.location).AddDate(0, 0, -1)), nil
	}

	day, err := time.ParseInLocation(DateLayout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return day, nil
}

// At combines a day (as returned by ParseDate) with an HH:MM wall-clock time.
func (p *Parser) At(day time.Time, clock string) (time.Time, error) {
	hm, err := time.Parse(ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, p.location), nil
}
