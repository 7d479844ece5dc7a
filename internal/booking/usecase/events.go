package usecase

import (
	"context"
	"fmt"
	"strings"

	"room-booking/internal/booking"
	"room-booking/internal/model"
)

func (uc *implUseCase) EventsOn(ctx context.Context, input booking.EventsOnInput) (booking.EventsOnOutput, error) {
	day, err := uc.dateMath.ParseDate(input.Date, uc.now())
	if err != nil {
		return booking.EventsOnOutput{}, invalid("date", err.Error())
	}

	start, end := uc.dateMath.DayBounds(day)
	events, err := uc.calendar.GetEvents(ctx, start, end)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.EventsOn: %s: %v", start.Format("2006-01-02"), err)
		return booking.EventsOnOutput{}, fmt.Errorf("list events: %w", err)
	}
	return booking.EventsOnOutput{Day: start, Events: events}, nil
}

func (uc *implUseCase) Event(ctx context.Context, id string) (model.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Event{}, invalid("id", "event id is required")
	}

	ev, err := uc.calendar.GetEvent(ctx, id)
	if err != nil {
		return model.Event{}, fmt.Errorf("get event %s: %w", id, err)
	}
	return ev, nil
}
