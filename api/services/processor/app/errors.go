package app

import (
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

// Typed errors for the processor app layer. Transport code maps them through
// errkind rather than inspecting adapter or store internals.
var (
	// ErrMissingOwner indicates a request without an owner id.
	ErrMissingOwner = fmt.Errorf("%w: owner is required", errkind.Validation)
	// ErrMissingEmail indicates the owner exists but has no email to register with.
	ErrMissingEmail = fmt.Errorf("%w: owner has no email", errkind.Validation)
	// ErrUserNotFound indicates the owner is unknown to the user directory.
	ErrUserNotFound = db.ErrUserNotFound
)
