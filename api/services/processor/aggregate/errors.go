package aggregate

import (
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

var (
	ErrInvalidProcessorName   = fmt.Errorf("%w: invalid payment processor name", errkind.Validation)
	ErrProviderAlreadyExists  = fmt.Errorf("%w: payment processor already exists", errkind.Conflict)
	ErrNoDefaultProcessor     = fmt.Errorf("%w: no default payment processor", errkind.Conflict)
	ErrProcessorNotRegistered = fmt.Errorf("%w: payment processor not registered", errkind.Conflict)
	// ErrValidationRejected is returned by the gate when adapter validation reports false.
	ErrValidationRejected = fmt.Errorf("%w: payment processor data failed validation", errkind.Validation)
	// ErrBrokenDefault means a stored aggregate points its default at an empty slot.
	ErrBrokenDefault = fmt.Errorf("%w: default payment processor references an empty slot", errkind.Persistence)
)
