package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

func TestParseProvider(t *testing.T) {
	for _, p := range Providers() {
		got, err := ParseProvider(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParseProvider("paypal")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
	assert.ErrorIs(t, err, errkind.Validation)

	_, err = ParseProvider("Stripe")
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestRegistry_ResolveEveryProvider(t *testing.T) {
	reg, _ := newTestRegistry(t)
	for _, p := range Providers() {
		factory, err := reg.Resolve(p)
		require.NoError(t, err)
		a, err := factory(nil)
		require.NoError(t, err)
		assert.Equal(t, p, a.Provider())
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Resolve(Provider("paypal"))
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestRegistry_BindCorruptData(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Bind(Stripe, StoredData{[]byte(`{"customer":`)})
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestRegistry_UnboundAdapterNeedsData(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a, err := reg.Bind(Stripe, nil)
	require.NoError(t, err)

	_, err = a.Validate()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = a.BillingDate()
	assert.ErrorIs(t, err, ErrUnbound)
	_, err = a.PaymentMethods()
	assert.ErrorIs(t, err, ErrUnbound)
}
