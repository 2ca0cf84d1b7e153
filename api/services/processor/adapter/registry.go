package adapter

import (
	"fmt"
	"time"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/gateway"
)

// Factory builds an adapter bound to one slot's stored data. Empty data
// yields an unbound adapter, which only supports Register and the pure
// serialize/parse transforms.
type Factory func(bound StoredData) (Adapter, error)

// Config holds what the provider variants need from the outside world.
type Config struct {
	Stripe       gateway.StripeGateway
	StripePlanID string
	// Now anchors billing dates. Defaults to time.Now.
	Now func() time.Time
}

// Registry maps the closed provider set to adapter factories. Lookups have no side effects.
type Registry struct {
	stripe       gateway.StripeGateway
	stripePlanID string
	now          func() time.Time
}

func NewRegistry(cfg Config) *Registry {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Registry{stripe: cfg.Stripe, stripePlanID: cfg.StripePlanID, now: now}
}

// Resolve returns the factory for p.
func (r *Registry) Resolve(p Provider) (Factory, error) {
	switch p {
	case Stripe:
		return r.newStripe, nil
	case Braintree:
		return newBraintree, nil
	case Heroku:
		return r.newHeroku, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, p)
}

// Bind resolves p and builds an adapter over data in one step.
func (r *Registry) Bind(p Provider, data StoredData) (Adapter, error) {
	factory, err := r.Resolve(p)
	if err != nil {
		return nil, err
	}
	return factory(data)
}
