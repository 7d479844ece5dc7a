package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-booking/internal/booking"
	"room-booking/internal/calendar"
	"room-booking/internal/calendar/mock"
	"room-booking/internal/conflict"
	"room-booking/internal/model"
	"room-booking/internal/room"
	"room-booking/pkg/datemath"
)

func mustParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected parser error: %v", err)
	}
	return p
}

func mustRegistry(t *testing.T, rooms ...model.Room) *room.Registry {
	t.Helper()
	reg, err := room.New([]model.Building{{ID: "hq", Address: "1 Main St, Springfield", Rooms: rooms}})
	if err != nil {
		t.Fatalf("unexpected registry error: %v", err)
	}
	return reg
}

func TestBookEndToEnd(t *testing.T) {
	ctx := context.Background()
	dm := mustParser(t)
	loc := dm.Location()
	at := func(h, m int) time.Time { return time.Date(2025, 1, 15, h, m, 0, 0, loc) }

	standup := booking.BookInput{
		Name:      "Standup",
		StartTime: at(10, 0),
		EndTime:   at(10, 30),
		Location:  "Room A",
		HostEmail: "owner@example.com",
	}
	lunch := model.Event{Name: "Lunch", StartTime: at(12, 0), EndTime: at(13, 0), Location: "Room A"}

	newUseCase := func(reg *room.Registry, seed ...model.Event) (booking.UseCase, *mock.Calendar) {
		cal := mock.New(&mockLogger{}, mock.Options{Rooms: reg, NoSeed: true})
		cal.Seed(seed...)
		return New(&mockLogger{}, cal, conflict.New(15*time.Minute, reg), reg, dm), cal
	}

	t.Run("books a free slot", func(t *testing.T) {
		uc, cal := newUseCase(mustRegistry(t, model.Room{Name: "Room A"}), lunch)
		out, err := uc.Book(ctx, standup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.EventID == "" || out.Event.ID != out.EventID {
			t.Errorf("unexpected output %+v", out)
		}
		if hosts := cal.Hosts(out.EventID); len(hosts) != 1 || hosts[0] != "owner@example.com" {
			t.Errorf("unexpected hosts %v", hosts)
		}
	})

	t.Run("rejects a conflicting slot", func(t *testing.T) {
		old := model.Event{ID: "evt-old", Name: "Standup-old", StartTime: at(9, 50), EndTime: at(10, 10), Location: "Room A"}
		uc, _ := newUseCase(mustRegistry(t, model.Room{Name: "Room A"}), lunch, old)

		_, err := uc.Book(ctx, standup)
		var conflictErr *booking.ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
		if len(conflictErr.Conflicts) != 1 || conflictErr.Conflicts[0].Name != "Standup-old" {
			t.Errorf("unexpected conflicts %+v", conflictErr.Conflicts)
		}
	})

	t.Run("unknown room is a create failure", func(t *testing.T) {
		uc, _ := newUseCase(mustRegistry(t, model.Room{Name: "Room B"}), lunch)

		_, err := uc.Book(ctx, standup)
		var createErr *booking.CreateError
		if !errors.As(err, &createErr) {
			t.Fatalf("expected CreateError, got %v", err)
		}
		if !errors.Is(err, room.ErrRoomNotFound) {
			t.Errorf("expected ErrRoomNotFound cause, got %v", err)
		}
	})

	t.Run("conflicting neighbour room", func(t *testing.T) {
		reg := mustRegistry(t,
			model.Room{Name: "Room A"},
			model.Room{Name: "Half A", ConflictsWith: []string{"Room A"}},
		)
		neighbour := model.Event{Name: "Workshop", StartTime: at(10, 15), EndTime: at(11, 0), Location: "Half A"}
		uc, _ := newUseCase(reg, neighbour)

		_, err := uc.Book(ctx, standup)
		var conflictErr *booking.ConflictError
		if !errors.As(err, &conflictErr) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	dm := mustParser(t)
	loc := dm.Location()
	reg := mustRegistry(t, model.Room{Name: "Room A"})
	start := time.Date(2025, 1, 15, 23, 30, 0, 0, loc)

	valid := booking.BookInput{Name: "Late", StartTime: start, EndTime: start.Add(time.Hour), Location: "Room A"}

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			input booking.BookInput
			field string
		}{
			{"missing name", booking.BookInput{StartTime: start, EndTime: start.Add(time.Hour), Location: "Room A"}, "Name"},
			{"blank name", booking.BookInput{Name: "  ", StartTime: start, EndTime: start.Add(time.Hour), Location: "Room A"}, "Name"},
			{"missing location", booking.BookInput{Name: "X", StartTime: start, EndTime: start.Add(time.Hour)}, "Location"},
			{"end before start", booking.BookInput{Name: "X", StartTime: start, EndTime: start.Add(-time.Hour), Location: "Room A"}, "EndTime"},
			{"zero length", booking.BookInput{Name: "X", StartTime: start, EndTime: start, Location: "Room A"}, "EndTime"},
			{"missing start", booking.BookInput{Name: "X", EndTime: start, Location: "Room A"}, "StartTime"},
			{"bad host", booking.BookInput{Name: "X", StartTime: start, EndTime: start.Add(time.Hour), Location: "Room A", HostEmail: "nope"}, "HostEmail"},
			{"bad additional host", booking.BookInput{Name: "X", StartTime: start, EndTime: start.Add(time.Hour), Location: "Room A", AdditionalHosts: []string{"a@example.com", "nope"}}, "AdditionalHosts[1]"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cal := &stubCalendar{}
				uc := New(&mockLogger{}, cal, conflict.New(0, reg), reg, dm)

				_, err := uc.Book(ctx, tt.input)
				var vErr *booking.ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				found := false
				for _, f := range vErr.Fields {
					if f.Field == tt.field {
						found = true
					}
				}
				if !found {
					t.Errorf("expected field %s in %+v", tt.field, vErr.Fields)
				}
				if !cal.fetchStart.IsZero() || len(cal.created) != 0 {
					t.Errorf("no calendar call expected on invalid input")
				}
			})
		}
	})

	t.Run("fetch window covers the buffered day", func(t *testing.T) {
		cal := &stubCalendar{createOut: calendar.CreateOutput{EventID: "evt-1"}}
		uc := New(&mockLogger{}, cal, conflict.New(15*time.Minute, reg), reg, dm)

		if _, err := uc.Book(ctx, valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2025, 1, 14, 23, 45, 0, 0, loc)
		wantEnd := start.Add(time.Hour + 15*time.Minute)
		if !cal.fetchStart.Equal(wantStart) || !cal.fetchEnd.Equal(wantEnd) {
			t.Errorf("fetch window = [%s, %s), want [%s, %s)", cal.fetchStart, cal.fetchEnd, wantStart, wantEnd)
		}
	})

	t.Run("fetch failure is surfaced", func(t *testing.T) {
		cal := &stubCalendar{getErr: &calendar.UpstreamError{Op: "list", StatusCode: 500}}
		uc := New(&mockLogger{}, cal, conflict.New(0, reg), reg, dm)

		_, err := uc.Book(ctx, valid)
		if !errors.Is(err, calendar.ErrUpstream) {
			t.Errorf("expected ErrUpstream, got %v", err)
		}
		if len(cal.created) != 0 {
			t.Errorf("create must not be called")
		}
	})

	t.Run("primary host failure keeps the event id", func(t *testing.T) {
		cal := &stubCalendar{
			createOut: calendar.CreateOutput{EventID: "evt-orphan"},
			createErr: calendar.ErrPrimaryHost,
		}
		uc := New(&mockLogger{}, cal, conflict.New(0, reg), reg, dm)

		_, err := uc.Book(ctx, valid)
		var createErr *booking.CreateError
		if !errors.As(err, &createErr) || createErr.EventID != "evt-orphan" {
			t.Fatalf("expected CreateError with event id, got %v", err)
		}
		if !errors.Is(err, calendar.ErrPrimaryHost) {
			t.Errorf("expected ErrPrimaryHost cause")
		}
	})

	t.Run("partial host failure still succeeds", func(t *testing.T) {
		cal := &stubCalendar{createOut: calendar.CreateOutput{
			EventID:      "evt-2",
			HostFailures: []calendar.HostFailure{{Email: "b@example.com", Err: errors.New("nope")}},
		}}
		uc := New(&mockLogger{}, cal, conflict.New(0, reg), reg, dm)

		out, err := uc.Book(ctx, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.HostFailures) != 1 {
			t.Errorf("expected host failure to be reported, got %+v", out.HostFailures)
		}
	})

	t.Run("trims name and location", func(t *testing.T) {
		cal := &stubCalendar{createOut: calendar.CreateOutput{EventID: "evt-3"}}
		uc := New(&mockLogger{}, cal, conflict.New(0, reg), reg, dm)

		in := valid
		in.Name, in.Location = "  Late  ", " Room A "
		if _, err := uc.Book(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cal.created[0].Name != "Late" || cal.created[0].Location != "Room A" {
			t.Errorf("unexpected created event %+v", cal.created[0])
		}
	})
}
