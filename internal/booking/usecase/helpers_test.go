package usecase

import (
	"context"
	"time"

	"room-booking/internal/calendar"
	"room-booking/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubCalendar records calls and returns canned results.
type stubCalendar struct {
	events    []model.Event
	getErr    error
	createOut calendar.CreateOutput
	createErr error

	fetchStart, fetchEnd time.Time
	created              []model.Event
}

func (s *stubCalendar) GetEvents(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	s.fetchStart, s.fetchEnd = start, end
	return s.events, s.getErr
}

func (s *stubCalendar) CreateEvent(ctx context.Context, event model.Event) (calendar.CreateOutput, error) {
	s.created = append(s.created, event)
	return s.createOut, s.createErr
}

func (s *stubCalendar) GetEvent(ctx context.Context, id string) (model.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Event{}, calendar.ErrEventNotFound
}

func (s *stubCalendar) AddHost(ctx context.Context, eventID, email string) error {
	return nil
}
