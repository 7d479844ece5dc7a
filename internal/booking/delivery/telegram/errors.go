package telegram

import "errors"

var (
	ErrInvalidFormat  = errors.New(`invalid format, use: /event "Event Name" YYYY-MM-DD HH:MM HH:MM "Location" ["Description"]`)
	ErrEndBeforeStart = errors.New("end time must be after start time")
)
