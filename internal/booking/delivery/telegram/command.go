package telegram

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"room-booking/internal/booking"
	"room-booking/pkg/datemath"
)

// "Name" YYYY-MM-DD HH:MM HH:MM "Location" ["Description"]
var eventPattern = regexp.MustCompile(`^"([^"]+)"\s+(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})\s+(\d{2}:\d{2})\s+"([^"]+)"\s*(?:"([^"]*)")?\s*$`)

// splitCommand separates "/event@MyBot args" into ("/event", "args").
func splitCommand(text string) (string, string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	cmd, args, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), strings.TrimSpace(args)
}

// parseEvent turns the /event arguments into a booking input. Times are
// wall-clock times on the given date in dm's timezone.
func parseEvent(args string, dm *datemath.Parser) (booking.BookInput, error) {
	m := eventPattern.FindStringSubmatch(strings.TrimSpace(args))
	if m == nil {
		return booking.BookInput{}, ErrInvalidFormat
	}
	name, date, from, to, location, description := m[1], m[2], m[3], m[4], m[5], m[6]

	day, err := dm.ParseDate(date, time.Now())
	if err != nil {
		return booking.BookInput{}, fmt.Errorf("invalid date/time format: %w", err)
	}
	start, err := dm.At(day, from)
	if err != nil {
		return booking.BookInput{}, fmt.Errorf("invalid date/time format: %w", err)
	}
	end, err := dm.At(day, to)
	if err != nil {
		return booking.BookInput{}, fmt.Errorf("invalid date/time format: %w", err)
	}
	if !end.After(start) {
		return booking.BookInput{}, ErrEndBeforeStart
	}

	return booking.BookInput{
		Name:        strings.TrimSpace(name),
		StartTime:   start,
		EndTime:     end,
		Location:    strings.TrimSpace(location),
		Description: description,
	}, nil
}
