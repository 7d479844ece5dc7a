// Package bootstrap builds the booking stack from configuration. It is shared
// by the HTTP service and the operator CLI.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"room-booking/config"
	"room-booking/internal/booking"
	"room-booking/internal/booking/usecase"
	"room-booking/internal/calendar"
	"room-booking/internal/calendar/google"
	"room-booking/internal/calendar/luma"
	"room-booking/internal/calendar/mock"
	"room-booking/internal/conflict"
	"room-booking/internal/room"
	"room-booking/pkg/datemath"
	"room-booking/pkg/gcalendar"
	"room-booking/pkg/log"
)

// App is the assembled booking stack.
type App struct {
	Rooms    *room.Registry
	DateMath *datemath.Parser
	Calendar calendar.Calendar
	Booking  booking.UseCase
}

// New loads the rooms file, selects the calendar provider and builds the use case.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*App, error) {
	dm, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}

	reg, err := room.LoadFile(cfg.Booking.RoomsPath)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	warnUnknownConflicts(ctx, l, reg)

	cal, err := NewCalendar(ctx, l, cfg, reg, dm.Location())
	if err != nil {
		return nil, err
	}

	checker := conflict.New(time.Duration(cfg.Booking.BufferMinutes)*time.Minute, reg)

	return &App{
		Rooms:    reg,
		DateMath: dm,
		Calendar: cal,
		Booking:  usecase.New(l, cal, checker, reg, dm),
	}, nil
}

// NewCalendar builds the configured calendar provider.
func NewCalendar(ctx context.Context, l log.Logger, cfg *config.Config, reg *room.Registry, loc *time.Location) (calendar.Calendar, error) {
	switch cfg.Calendar.Provider {
	case config.ProviderLuma:
		client := luma.NewClient(cfg.Luma.BaseURL, cfg.Luma.APIKey)
		l.Infof(ctx, "Calendar provider: luma (%s)", cfg.Luma.BaseURL)
		return luma.New(l, client, calendar.NewLocator(reg), loc, luma.Options{
			PageSize:        cfg.Luma.PageSize,
			HostAccessLevel: cfg.Luma.HostAccessLevel,
		}), nil

	case config.ProviderGoogle:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			return nil, fmt.Errorf("google calendar: %w", err)
		}
		l.Infof(ctx, "Calendar provider: google (%s)", cfg.GoogleCalendar.CalendarID)
		return google.New(l, client, calendar.NewLocator(reg), loc, cfg.GoogleCalendar.CalendarID, int64(cfg.GoogleCalendar.PageSize)), nil

	case config.ProviderMock:
		l.Warnf(ctx, "Calendar provider: mock, bookings are kept in memory only")
		return mock.New(l, mock.Options{
			Location:  loc,
			Rooms:     reg,
			FailHosts: cfg.Booking.FailHosts,
		}), nil

	default:
		return nil, fmt.Errorf("unknown calendar provider %q", cfg.Calendar.Provider)
	}
}

func warnUnknownConflicts(ctx context.Context, l log.Logger, reg *room.Registry) {
	for _, name := range reg.Names() {
		for _, other := range reg.ConflictsOf(name) {
			if _, err := reg.Resolve(other); err != nil {
				l.Warnf(ctx, "Room %q lists unknown conflicting room %q", name, other)
			}
		}
	}
}
