package calendar

import (
	"context"
	"fmt"

	pkgLog "room-booking/pkg/log"
)

// AttachHosts applies the host policy after an event has been created.
//
// The primary host is mandatory: if attaching it fails the error wraps
// ErrPrimaryHost and the additional hosts are not attempted. The event is
// left in place without a host; nothing is rolled back.
//
// Additional hosts are best-effort: every one is attempted, failures are
// logged and returned as HostFailures without failing the call.
func AttachHosts(ctx context.Context, l pkgLog.Logger, adder HostAdder, eventID, primary string, additional []string) ([]HostFailure, error) {
	if primary != "" {
		if err := adder.AddHost(ctx, eventID, primary); err != nil {
			l.Errorf(ctx, "calendar.AttachHosts: event=%s primary host %s: %v", eventID, primary, err)
			return nil, fmt.Errorf("%w %s on event %s: %w", ErrPrimaryHost, primary, eventID, err)
		}
	}

	var failures []HostFailure
	for _, email := range additional {
		if email == "" || email == primary {
			continue
		}
		if err := adder.AddHost(ctx, eventID, email); err != nil {
			l.Warnf(ctx, "calendar.AttachHosts: event=%s additional host %s (non-fatal): %v", eventID, email, err)
			failures = append(failures, HostFailure{Email: email, Err: err})
		}
	}
	return failures, nil
}
