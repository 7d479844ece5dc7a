package http

import (
	"errors"

	"room-booking/internal/booking"
	"room-booking/internal/calendar"
	"room-booking/internal/room"
	pkgErrors "room-booking/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	var (
		validationErr *booking.ValidationError
		conflictErr   *booking.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		return pkgErrors.BadRequest("validation failed").WithData(validationErr.Fields).Wrap(err)
	case errors.As(err, &conflictErr):
		return pkgErrors.Conflict("time slot conflicts with existing events").WithData(newConflictsResp(conflictErr.Conflicts)).Wrap(err)
	case errors.Is(err, room.ErrRoomNotFound):
		return pkgErrors.NotFound("room not found").Wrap(err)
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NotFound("event not found").Wrap(err)
	case errors.Is(err, calendar.ErrPrimaryHost):
		var createErr *booking.CreateError
		if errors.As(err, &createErr) && createErr.EventID != "" {
			return pkgErrors.BadGateway("event created but primary host could not be attached").
				WithData(map[string]string{"event_id": createErr.EventID}).Wrap(err)
		}
		return pkgErrors.BadGateway("primary host could not be attached").Wrap(err)
	case errors.Is(err, calendar.ErrUpstream):
		return pkgErrors.BadGateway("calendar service unavailable").Wrap(err)
	default:
		return pkgErrors.Internal(err)
	}
}
