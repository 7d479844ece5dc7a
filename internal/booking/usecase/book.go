package usecase

import (
	"context"
	"fmt"
	"strings"

	"room-booking/internal/booking"
	"room-booking/internal/model"
)

// Book runs one booking request: validate, fetch the candidate's day,
// check for conflicts, then create. Nothing is retried.
func (uc *implUseCase) Book(ctx context.Context, input booking.BookInput) (booking.BookOutput, error) {
	if err := uc.validateBook(input); err != nil {
		uc.l.Warnf(ctx, "booking.usecase.Book: rejected input: %v", err)
		return booking.BookOutput{}, err
	}

	loc := uc.dateMath.Location()
	candidate := model.Event{
		Name:            strings.TrimSpace(input.Name),
		StartTime:       input.StartTime.In(loc),
		EndTime:         input.EndTime.In(loc),
		Location:        strings.TrimSpace(input.Location),
		Description:     input.Description,
		HostEmail:       input.HostEmail,
		AdditionalHosts: input.AdditionalHosts,
	}

	// The buffer can reach across midnight, and so can the candidate itself.
	buffer := uc.checker.Buffer()
	dayStart, dayEnd := uc.dateMath.DayBounds(candidate.StartTime)
	if candidate.EndTime.After(dayEnd) {
		dayEnd = candidate.EndTime
	}
	existing, err := uc.calendar.GetEvents(ctx, dayStart.Add(-buffer), dayEnd.Add(buffer))
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Book: fetch events for %s: %v", dayStart.Format("2006-01-02"), err)
		return booking.BookOutput{}, fmt.Errorf("fetch existing events: %w", err)
	}

	if conflicts := uc.checker.Conflicts(candidate, existing); len(conflicts) > 0 {
		uc.l.Infof(ctx, "booking.usecase.Book: %q in %s rejected, %d conflict(s)", candidate.Name, candidate.Location, len(conflicts))
		return booking.BookOutput{}, &booking.ConflictError{Candidate: candidate, Conflicts: conflicts}
	}

	out, err := uc.calendar.CreateEvent(ctx, candidate)
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Book: create %q: %v", candidate.Name, err)
		return booking.BookOutput{}, &booking.CreateError{EventID: out.EventID, Err: err}
	}

	candidate.ID = out.EventID
	uc.l.Infof(ctx, "booking.usecase.Book: created %s (%q in %s, %s-%s)", out.EventID, candidate.Name, candidate.Location,
		candidate.StartTime.Format("15:04"), candidate.EndTime.Format("15:04"))

	return booking.BookOutput{
		EventID:      out.EventID,
		Event:        candidate,
		HostFailures: out.HostFailures,
	}, nil
}
