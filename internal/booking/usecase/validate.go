package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"room-booking/internal/booking"
)

func (uc *implUseCase) validateBook(input booking.BookInput) error {
	var fields []booking.FieldError

	if err := uc.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		fields = translate(verrs)
	}

	if strings.TrimSpace(input.Name) == "" && !hasField(fields, "Name") {
		fields = append(fields, booking.FieldError{Field: "Name", Message: "Name is required"})
	}
	if strings.TrimSpace(input.Location) == "" && !hasField(fields, "Location") {
		fields = append(fields, booking.FieldError{Field: "Location", Message: "Location is required"})
	}
	if !input.StartTime.IsZero() && !input.EndTime.IsZero() && !input.EndTime.After(input.StartTime) {
		fields = append(fields, booking.FieldError{Field: "EndTime", Message: "end_time must be after start_time"})
	}

	if len(fields) > 0 {
		return &booking.ValidationError{Fields: fields}
	}
	return nil
}

func translate(errs validator.ValidationErrors) []booking.FieldError {
	out := make([]booking.FieldError, 0, len(errs))
	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
		case "email":
			message = fmt.Sprintf("%q is not a valid email address", err.Value())
		}
		out = append(out, booking.FieldError{Field: err.Field(), Message: message})
	}
	return out
}

func hasField(fields []booking.FieldError, name string) bool {
	for _, f := range fields {
		if f.Field == name {
			return true
		}
	}
	return false
}

func invalid(field, message string) error {
	return &booking.ValidationError{Fields: []booking.FieldError{{Field: field, Message: message}}}
}
