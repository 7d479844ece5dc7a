package calendar

// CreateOutput is the result of a successful CreateEvent.
type CreateOutput struct {
	EventID      string
	HostFailures []HostFailure
}

// HostFailure records an additional host that could not be attached.
// The event itself was created.
type HostFailure struct {
	Email string
	Err   error
}

func (f HostFailure) Error() string {
	return f.Email + ": " + f.Err.Error()
}
