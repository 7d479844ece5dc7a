package usecase

import (
	"time"

	"github.com/go-playground/validator/v10"

	"room-booking/internal/booking"
	"room-booking/internal/calendar"
	"room-booking/internal/conflict"
	"room-booking/pkg/datemath"
	pkgLog "room-booking/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	calendar calendar.Calendar
	checker  *conflict.Checker
	rooms    booking.Registry
	dateMath *datemath.Parser
	validate *validator.Validate
	now      func() time.Time
}

// New creates a new booking UseCase instance.
func New(
	l pkgLog.Logger,
	cal calendar.Calendar,
	checker *conflict.Checker,
	rooms booking.Registry,
	dateMath *datemath.Parser,
) booking.UseCase {
	return &implUseCase{
		l:        l,
		calendar: cal,
		checker:  checker,
		rooms:    rooms,
		dateMath: dateMath,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}
