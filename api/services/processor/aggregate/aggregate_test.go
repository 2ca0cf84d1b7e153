package aggregate

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

var testNow = time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)

func testRegistry() *adapter.Registry {
	return adapter.NewRegistry(adapter.Config{
		StripePlanID: "plan_storage_monthly",
		Now:          func() time.Time { return testNow },
	})
}

func stripeData(t *testing.T, rec adapter.StripeRecord) adapter.StoredData {
	t.Helper()
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	return adapter.StoredData{raw}
}

func activeStripe() adapter.StripeRecord {
	return adapter.StripeRecord{
		Customer: adapter.StripeCustomer{
			ID:    "cus_1",
			Email: "user@domain.tld",
			Subscriptions: []adapter.StripeSubscription{
				{ID: "sub_1", PlanID: "plan_storage_monthly", Status: "active"},
			},
			Sources: []adapter.StripeSource{},
		},
		BillingDate: 17,
	}
}

func herokuData() adapter.StoredData {
	return adapter.StoredData{json.RawMessage(`{"email":"user@domain.tld","billingDate":17}`)}
}

func TestRegister_FirstBecomesDefault(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))
	assert.Equal(t, adapter.Heroku, agg.Default)

	require.NoError(t, agg.Register(adapter.Stripe, stripeData(t, activeStripe())))
	assert.Equal(t, adapter.Heroku, agg.Default, "existing default must not move")
	assert.Equal(t, []adapter.Provider{adapter.Stripe, adapter.Heroku}, agg.Registered())
}

func TestRegister_Duplicate(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))
	err := agg.Register(adapter.Heroku, herokuData())
	require.ErrorIs(t, err, ErrProviderAlreadyExists)
	assert.True(t, errors.Is(errkind.Of(err), errkind.Conflict))
}

func TestRegister_EmptyData(t *testing.T) {
	agg := New("u1", testNow)
	require.ErrorIs(t, agg.Register(adapter.Heroku, nil), adapter.ErrCorruptData)
	assert.True(t, agg.IsEmpty())
}

func TestRemove_ClearsDefault(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Stripe, stripeData(t, activeStripe())))
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))

	require.NoError(t, agg.Remove(adapter.Stripe))
	assert.Equal(t, adapter.Provider(""), agg.Default)
	assert.True(t, agg.Has(adapter.Heroku))
	require.NoError(t, agg.Check())

	require.ErrorIs(t, agg.Remove(adapter.Stripe), ErrProcessorNotRegistered)
}

func TestRemove_NonDefaultKeepsPointer(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Stripe, stripeData(t, activeStripe())))
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))

	require.NoError(t, agg.Remove(adapter.Heroku))
	assert.Equal(t, adapter.Stripe, agg.Default)
}

func TestSetDefault(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Stripe, stripeData(t, activeStripe())))

	err := agg.SetDefault("heroku")
	require.ErrorIs(t, err, ErrProcessorNotRegistered)
	assert.Equal(t, adapter.Stripe, agg.Default)

	err = agg.SetDefault("paypal")
	require.ErrorIs(t, err, ErrInvalidProcessorName)
	assert.True(t, errors.Is(err, errkind.Validation))

	err = agg.SetDefault(DefaultSelector)
	require.ErrorIs(t, err, ErrInvalidProcessorName)

	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))
	require.NoError(t, agg.SetDefault("heroku"))
	assert.Equal(t, adapter.Heroku, agg.Default)
}

func TestResolve(t *testing.T) {
	agg := New("u1", testNow)
	_, err := agg.Resolve(DefaultSelector)
	require.ErrorIs(t, err, ErrNoDefaultProcessor)

	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))
	p, err := agg.Resolve(DefaultSelector)
	require.NoError(t, err)
	assert.Equal(t, adapter.Heroku, p)

	p, err = agg.Resolve("heroku")
	require.NoError(t, err)
	assert.Equal(t, adapter.Heroku, p)

	_, err = agg.Resolve("stripe")
	require.ErrorIs(t, err, ErrInvalidProcessorName)
	_, err = agg.Resolve("Stripe")
	require.ErrorIs(t, err, ErrInvalidProcessorName)
}

func TestResolve_BrokenDefault(t *testing.T) {
	agg := New("u1", testNow)
	agg.Default = adapter.Stripe
	_, err := agg.Resolve(DefaultSelector)
	require.ErrorIs(t, err, ErrBrokenDefault)
	require.ErrorIs(t, agg.Check(), ErrBrokenDefault)

	agg.Default = "paypal"
	require.ErrorIs(t, agg.Check(), ErrBrokenDefault)
}

func TestAdapter_BindsSlot(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))

	a, err := agg.Adapter(testRegistry(), DefaultSelector)
	require.NoError(t, err)
	assert.Equal(t, adapter.Heroku, a.Provider())
	day, err := a.BillingDate()
	require.NoError(t, err)
	assert.Equal(t, 17, day)

	_, err = agg.Adapter(testRegistry(), "braintree")
	require.ErrorIs(t, err, ErrInvalidProcessorName)
}

func TestClone_Independent(t *testing.T) {
	agg := New("u1", testNow)
	require.NoError(t, agg.Register(adapter.Heroku, herokuData()))

	c := agg.Clone()
	require.NoError(t, c.Remove(adapter.Heroku))
	c.Owner = "u2"

	assert.True(t, agg.Has(adapter.Heroku))
	assert.Equal(t, adapter.Heroku, agg.Default)
	assert.Equal(t, "u1", agg.Owner)
}
