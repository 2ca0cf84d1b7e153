package aggregate

import (
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
)

// Gate validates candidate slot data for p through a freshly bound adapter and,
// only if validation passes, applies mutate to a copy of agg. agg itself is
// never modified, so a rejected or failed mutation leaves the caller's state intact.
func Gate(reg *adapter.Registry, agg Aggregate, p adapter.Provider, data adapter.StoredData, mutate func(*Aggregate) error) (Aggregate, error) {
	a, err := reg.Bind(p, data)
	if err != nil {
		return Aggregate{}, err
	}
	ok, err := a.Validate()
	if err != nil {
		return Aggregate{}, fmt.Errorf("validate %s: %w", p, err)
	}
	if !ok {
		return Aggregate{}, fmt.Errorf("%w: %s", ErrValidationRejected, p)
	}
	next := agg.Clone()
	if err := mutate(&next); err != nil {
		return Aggregate{}, err
	}
	return next, nil
}
