package telegram

import (
	"fmt"
	"html"
	"strings"

	"room-booking/internal/booking"
	"room-booking/internal/model"
)

const (
	startText = "👋 Welcome to <b>Room Booking</b>!\n\n" +
		"Book a room with:\n" +
		"<code>/event \"Sprint planning\" 2025-01-15 14:00 15:00 \"Hogwarts Hall\" \"Q1 goals\"</code>\n\n" +
		"Use /rooms to see the bookable rooms."
	helpText = "<b>Commands</b>\n" +
		"/event \"Name\" YYYY-MM-DD HH:MM HH:MM \"Location\" [\"Description\"] - book a room\n" +
		"/rooms - list bookable rooms\n" +
		"/help - this message"
)

func formatError(msg string) string {
	return "❌ Error: " + html.EscapeString(msg)
}

func formatCreated(out booking.BookOutput) string {
	e := out.Event
	var b strings.Builder
	b.WriteString("✅ Event created successfully!\n")
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(e.Name))
	fmt.Fprintf(&b, "📅 %s\n", e.StartTime.Format("January 02, 2006"))
	fmt.Fprintf(&b, "🕒 %s - %s\n", e.StartTime.Format("15:04"), e.EndTime.Format("15:04"))
	fmt.Fprintf(&b, "📍 %s\n", html.EscapeString(e.Location))
	fmt.Fprintf(&b, "Event ID: <code>%s</code>", html.EscapeString(out.EventID))

	for _, f := range out.HostFailures {
		fmt.Fprintf(&b, "\n⚠️ Could not add host %s", html.EscapeString(f.Email))
	}
	return b.String()
}

func formatConflicts(conflicts []model.Event) string {
	var b strings.Builder
	b.WriteString("⚠️ Cannot create event due to conflicts:")
	for _, e := range conflicts {
		fmt.Fprintf(&b, "\n• %s (%s - %s, %s)", html.EscapeString(e.Name),
			e.StartTime.Format("15:04"), e.EndTime.Format("15:04"), html.EscapeString(e.Location))
	}
	return b.String()
}

func formatRooms(names []string) string {
	if len(names) == 0 {
		return "No rooms are configured."
	}
	var b strings.Builder
	b.WriteString("<b>Bookable rooms</b>")
	for _, n := range names {
		b.WriteString("\n• " + html.EscapeString(n))
	}
	return b.String()
}
