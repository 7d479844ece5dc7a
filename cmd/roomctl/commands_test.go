package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"room-booking/internal/booking/usecase"
	"room-booking/internal/bootstrap"
	"room-booking/internal/calendar/mock"
	"room-booking/internal/conflict"
	"room-booking/internal/model"
	"room-booking/internal/room"
	"room-booking/pkg/datemath"
	"room-booking/pkg/log"
)

func testLoader(t *testing.T) loader {
	t.Helper()
	dm, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("parser: %v", err)
	}
	reg, err := room.New([]model.Building{{
		ID:      "hq",
		Address: "1 Main St, Springfield",
		Rooms: []model.Room{
			{Name: "Hall", ConflictsWith: []string{"Hall East"}},
			{Name: "Hall East"},
		},
	}})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	cal := mock.New(log.NewNop(), mock.Options{Location: dm.Location(), Rooms: reg, NoSeed: true})
	app := &bootstrap.App{
		Rooms:    reg,
		DateMath: dm,
		Calendar: cal,
		Booking:  usecase.New(log.NewNop(), cal, conflict.New(15*time.Minute, reg), reg, dm),
	}
	return func(ctx context.Context, configPath, logLevel string) (*bootstrap.App, error) {
		return app, nil
	}
}

func TestCommands(t *testing.T) {
	var out bytes.Buffer
	load := testLoader(t)

	run := func(args ...string) error {
		out.Reset()
		app := newApp(&out, load)
		app.ExitErrHandler = func(c *cli.Context, err error) {}
		return app.Run(append([]string{"roomctl"}, args...))
	}

	if err := run("rooms"); err != nil {
		t.Fatalf("rooms: %v", err)
	}
	if !strings.Contains(out.String(), "Hall East") || !strings.Contains(out.String(), "hq") {
		t.Errorf("unexpected rooms output:\n%s", out.String())
	}

	if err := run("book", "--name", "Planning", "--room", "Hall", "--date", "2025-01-15", "--start", "10:00", "--end", "11:00"); err != nil {
		t.Fatalf("book: %v", err)
	}
	if !strings.Contains(out.String(), `Booked "Planning" in Hall`) {
		t.Errorf("unexpected book output:\n%s", out.String())
	}

	err := run("book", "--name", "Overlap", "--room", "Hall East", "--date", "2025-01-15", "--start", "10:30", "--end", "11:30")
	if err == nil {
		t.Fatal("expected a conflict exit")
	}
	if !strings.Contains(out.String(), "Planning (10:00-11:00, Hall)") {
		t.Errorf("unexpected conflict output:\n%s", out.String())
	}

	if err := run("events", "--date", "2025-01-15"); err != nil {
		t.Fatalf("events: %v", err)
	}
	if !strings.Contains(out.String(), "(1 events)") || !strings.Contains(out.String(), "10:00-11:00") {
		t.Errorf("unexpected events output:\n%s", out.String())
	}

	if err := run("book", "--name", "Bad", "--room", "Hall", "--date", "2025-01-15", "--start", "25:00", "--end", "26:00"); err == nil {
		t.Error("expected an invalid time error")
	}
}
