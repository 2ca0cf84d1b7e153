package adapter

import (
	"errors"
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

// Typed errors raised by adapters. Each wraps its taxonomy kind so the
// transport layer can map them without knowing about gateway SDK errors.
var (
	ErrUnsupportedProvider = fmt.Errorf("%w: unsupported payment processor", errkind.Validation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", errkind.Validation)
	ErrMissingToken        = fmt.Errorf("%w: payment token is required", errkind.Validation)

	// ErrAmbiguousSubscription signals corrupt remote state; never expected in normal operation.
	ErrAmbiguousSubscription = fmt.Errorf("%w: customer has more than one subscription", errkind.Conflict)
	ErrWrongPlan             = fmt.Errorf("%w: customer is subscribed to an unknown plan", errkind.Conflict)

	ErrNotFound       = fmt.Errorf("%w: remote record not found", errkind.Remote)
	ErrRemoteRejected = fmt.Errorf("%w: remote rejected request", errkind.Remote)
	ErrRemoteInternal = fmt.Errorf("%w: remote internal failure", errkind.Remote)

	ErrCorruptData    = fmt.Errorf("%w: corrupt processor data", errkind.Persistence)
	ErrNotImplemented = errkind.NotImplemented

	// ErrUnbound is returned by operations that need slot data from an adapter created without any.
	ErrUnbound = errors.New("adapter is not bound to processor data")
)

func notImplemented(p Provider, op string) error {
	return fmt.Errorf("%w: %s %s", ErrNotImplemented, p, op)
}
