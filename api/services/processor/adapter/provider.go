package adapter

import "fmt"

// Provider names a payment processing backend. The set is closed.
type Provider string

const (
	Stripe    Provider = "stripe"
	Braintree Provider = "braintree"
	Heroku    Provider = "heroku"
)

// Providers returns every supported provider in a stable order.
func Providers() []Provider {
	return []Provider{Stripe, Braintree, Heroku}
}

// ParseProvider maps a processor name onto the closed provider set.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(name); p {
	case Stripe, Braintree, Heroku:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, name)
}

func (p Provider) String() string { return string(p) }
