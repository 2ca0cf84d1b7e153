// Package errkind holds the error taxonomy shared by the processor packages.
// Specific errors wrap one of these kinds so callers can branch on either.
package errkind

import "errors"

var (
	// Validation marks bad input shape: missing email, unknown provider name. Always user-caused.
	Validation = errors.New("validation error")
	// Conflict marks a request that clashes with current aggregate state.
	Conflict = errors.New("conflict")
	// Remote marks a failure reported by a payment gateway.
	Remote = errors.New("remote error")
	// Persistence marks a failure of the aggregate store. No partial state is visible.
	Persistence = errors.New("persistence error")
	// PartialFailure marks a remote mutation that could not be mirrored locally.
	// Operators reconcile these manually.
	PartialFailure = errors.New("partial failure")
	// NotImplemented marks a capability a provider variant does not support.
	NotImplemented = errors.New("not implemented")
)

// Of returns the taxonomy kind err belongs to, or nil when it is unclassified.
func Of(err error) error {
	// PartialFailure is checked first: it wraps the persistence cause.
	for _, kind := range []error{PartialFailure, Validation, Conflict, Remote, Persistence, NotImplemented} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
