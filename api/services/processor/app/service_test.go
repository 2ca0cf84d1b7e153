package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

var errStoreDown = errors.New("store down")

func createStripe(t *testing.T, f *fixture, owner, token string) ProcessorView {
	t.Helper()
	view, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: owner, Provider: "stripe", Token: token})
	require.NoError(t, err)
	return view
}

func TestScenario_CreateConflictDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	view := createStripe(t, f, "u1", "tok_1")
	assert.Equal(t, "stripe", view.DefaultProcessor)
	require.Len(t, view.Processors, 1)
	assert.Equal(t, ProcessorSummary{
		Name:                 "stripe",
		IsDefault:            true,
		BillingDate:          17,
		DefaultPaymentMethod: &adapter.MethodSummary{ID: "card_2", Merchant: "Visa", LastFour: "4242"},
	}, view.Processors[0])

	calls := f.gw.callCount()
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_2"})
	require.ErrorIs(t, err, aggregate.ErrProviderAlreadyExists)
	assert.True(t, errors.Is(errkind.Of(err), errkind.Conflict))
	assert.Equal(t, calls, f.gw.callCount(), "duplicate create must not reach the gateway")

	view, err = f.svc.DeleteProcessor(ctx, "u1", "stripe")
	require.NoError(t, err)
	assert.Empty(t, view.Processors)
	assert.Empty(t, view.DefaultProcessor)

	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, agg.Has(adapter.Stripe))
	assert.Equal(t, adapter.Provider(""), agg.Default)
}

func TestCreate_RoundTripsStoredData(t *testing.T) {
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	agg, err := f.store.Get(context.Background(), "u1")
	require.NoError(t, err)
	a, err := agg.Adapter(adapter.NewRegistry(adapter.Config{StripePlanID: testPlanID}), "stripe")
	require.NoError(t, err)
	rec, err := a.ParseData(agg.Slots[adapter.Stripe])
	require.NoError(t, err)
	data, err := a.SerializeData(rec)
	require.NoError(t, err)
	again, err := a.ParseData(data)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestCreate_OwnerWithoutEmail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "noemail", Provider: "stripe", Token: "tok_1"})
	require.ErrorIs(t, err, ErrMissingEmail)
	assert.True(t, errors.Is(err, errkind.Validation))

	_, err = f.svc.CreateProcessor(ctx, CreateRequest{Owner: "ghost", Provider: "stripe", Token: "tok_1"})
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.True(t, errors.Is(err, errkind.Validation))

	_, err = f.svc.CreateProcessor(ctx, CreateRequest{Provider: "stripe"})
	require.ErrorIs(t, err, ErrMissingOwner)

	assert.Zero(t, f.gw.callCount())
}

func TestCreate_UnsupportedProvider(t *testing.T) {
	f := newFixture(false)
	_, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: "u1", Provider: "paypal"})
	require.ErrorIs(t, err, adapter.ErrUnsupportedProvider)
	assert.Zero(t, f.gw.callCount())
}

func TestCreate_SecondProviderKeepsDefault(t *testing.T) {
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	view, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)
	assert.Equal(t, "stripe", view.DefaultProcessor)
	require.Len(t, view.Processors, 2)
	assert.Equal(t, "heroku", view.Processors[1].Name)
	assert.False(t, view.Processors[1].IsDefault)
	assert.Nil(t, view.Processors[1].DefaultPaymentMethod)
}

func TestCreate_RemoteRejectedLeavesNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_bad"})
	require.ErrorIs(t, err, adapter.ErrRemoteRejected)

	_, err = f.store.Get(ctx, "u1")
	require.ErrorIs(t, err, db.ErrAggregateNotFound)
}

func TestCreate_BraintreeNotImplemented(t *testing.T) {
	f := newFixture(false)
	_, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: "u1", Provider: "braintree", Token: "nonce"})
	require.ErrorIs(t, err, adapter.ErrNotImplemented)
	_, err = f.store.Get(context.Background(), "u1")
	require.ErrorIs(t, err, db.ErrAggregateNotFound)
}

func TestCreate_PersistenceFailureRollsBackRemote(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	f.store.setFailSave(errStoreDown)

	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_1"})
	require.ErrorIs(t, err, errStoreDown)
	assert.False(t, errors.Is(err, errkind.PartialFailure))
	assert.Contains(t, f.gw.calls, "delete_customer")
	assert.Empty(t, f.gw.customers, "remote customer must be rolled back")
	assert.Zero(t, f.pub.count())

	f.store.setFailSave(nil)
	view, err := f.svc.GetProcessor(ctx, "u1", AllSelector)
	require.NoError(t, err)
	assert.Empty(t, view.Processors)
}

func TestCreate_PartialFailureWhenRollbackFails(t *testing.T) {
	f := newFixture(false)
	f.store.setFailSave(errStoreDown)
	f.gw.failDelete = errors.New("stripe unavailable")

	_, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_1"})
	require.ErrorIs(t, err, errkind.PartialFailure)
	require.ErrorIs(t, err, errStoreDown)
	assert.Equal(t, 1, f.pub.count())
	assert.Equal(t, "u1", f.pub.records[0].Owner)
	assert.Equal(t, "create_processor", f.pub.records[0].Operation)
}

func TestCreate_SubscriptionFailureRollsBackCustomer(t *testing.T) {
	f := newFixture(false)
	f.gw.failSubscription = errors.New("timeout")

	_, err := f.svc.CreateProcessor(context.Background(), CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_1"})
	require.ErrorIs(t, err, adapter.ErrRemoteInternal)
	assert.Empty(t, f.gw.customers)
	assert.Zero(t, f.pub.count())
}

func TestSetDefaultProcessor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	_, err := f.svc.SetDefaultProcessor(ctx, "u1", "heroku")
	require.ErrorIs(t, err, aggregate.ErrProcessorNotRegistered)
	_, err = f.svc.SetDefaultProcessor(ctx, "u1", "paypal")
	require.ErrorIs(t, err, aggregate.ErrInvalidProcessorName)

	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, adapter.Stripe, agg.Default)

	_, err = f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)
	view, err := f.svc.SetDefaultProcessor(ctx, "u1", "heroku")
	require.NoError(t, err)
	assert.Equal(t, "heroku", view.DefaultProcessor)
}

func TestDelete_NonDefaultKeepsDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	view, err := f.svc.DeleteProcessor(ctx, "u1", "heroku")
	require.NoError(t, err)
	assert.Equal(t, "stripe", view.DefaultProcessor)

	view, err = f.svc.DeleteProcessor(ctx, "u1", aggregate.DefaultSelector)
	require.NoError(t, err)
	assert.Empty(t, view.DefaultProcessor)
	assert.Empty(t, view.Processors)
}

func TestDelete_RemoteFailureKeepsSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	f.gw.failDelete = errors.New("stripe unavailable")

	_, err := f.svc.DeleteProcessor(ctx, "u1", "stripe")
	require.ErrorIs(t, err, adapter.ErrRemoteInternal)

	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, agg.Has(adapter.Stripe))
	assert.Equal(t, adapter.Stripe, agg.Default)
}

func TestDelete_SaveFailureIsPartial(t *testing.T) {
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	f.store.setFailSave(errStoreDown)

	_, err := f.svc.DeleteProcessor(context.Background(), "u1", "stripe")
	require.ErrorIs(t, err, errkind.PartialFailure)
	require.Equal(t, 1, f.pub.count())
	assert.NotEmpty(t, f.pub.records[0].RemoteID)
}

func TestDelete_Unregistered(t *testing.T) {
	f := newFixture(false)
	_, err := f.svc.DeleteProcessor(context.Background(), "u1", "stripe")
	require.ErrorIs(t, err, aggregate.ErrInvalidProcessorName)
	_, err = f.svc.DeleteProcessor(context.Background(), "u1", aggregate.DefaultSelector)
	require.ErrorIs(t, err, aggregate.ErrNoDefaultProcessor)
	assert.Zero(t, f.gw.callCount())
}

func TestDelete_PrunesEmptyAggregate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(true)
	createStripe(t, f, "u1", "tok_1")

	_, err := f.svc.DeleteProcessor(ctx, "u1", "stripe")
	require.NoError(t, err)
	_, err = f.store.Get(ctx, "u1")
	require.ErrorIs(t, err, db.ErrAggregateNotFound)
}

func TestDelete_KeepsEmptyAggregateByDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	_, err := f.svc.DeleteProcessor(ctx, "u1", "stripe")
	require.NoError(t, err)
	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, agg.IsEmpty())
	assert.Equal(t, fixedNow, agg.CreatedAt)
}

func TestAddPaymentMethod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	_, err := f.svc.AddPaymentMethod(ctx, "u1", "default", "tok_2")
	require.NoError(t, err)

	methods, err := f.svc.GetPaymentMethods(ctx, "u1", "stripe")
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, "card_2", methods[0].ID)

	def, err := f.svc.GetDefaultPaymentMethod(ctx, "u1", "stripe")
	require.NoError(t, err)
	assert.Equal(t, "card_2", def.ID)

	day, err := f.svc.GetBillingDate(ctx, "u1", "stripe")
	require.NoError(t, err)
	assert.Equal(t, 17, day)
}

func TestAddPaymentMethod_SaveFailureIsPartial(t *testing.T) {
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	f.store.setFailSave(errStoreDown)

	_, err := f.svc.AddPaymentMethod(context.Background(), "u1", "stripe", "tok_2")
	require.ErrorIs(t, err, errkind.PartialFailure)
	assert.Equal(t, 1, f.pub.count())
}

func TestAddPaymentMethod_HerokuNotImplemented(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	_, err = f.svc.AddPaymentMethod(ctx, "u1", "heroku", "tok_2")
	require.ErrorIs(t, err, adapter.ErrNotImplemented)
	assert.Zero(t, f.pub.count())
}

func TestCancelSubscription_Twice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	conf, err := f.svc.CancelSubscription(ctx, "u1", "stripe")
	require.NoError(t, err)
	assert.Equal(t, adapter.Stripe, conf.Provider)

	_, err = f.svc.CancelSubscription(ctx, "u1", "stripe")
	require.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestGetProcessor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	_, err := f.svc.GetProcessor(ctx, "u1", aggregate.DefaultSelector)
	require.ErrorIs(t, err, aggregate.ErrNoDefaultProcessor)
	view, err := f.svc.GetProcessor(ctx, "u1", AllSelector)
	require.NoError(t, err)
	assert.Empty(t, view.Processors)

	createStripe(t, f, "u1", "tok_1")
	_, err = f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	view, err = f.svc.GetProcessor(ctx, "u1", aggregate.DefaultSelector)
	require.NoError(t, err)
	require.Len(t, view.Processors, 1)
	assert.Equal(t, "stripe", view.Processors[0].Name)

	view, err = f.svc.GetProcessor(ctx, "u1", "heroku")
	require.NoError(t, err)
	require.Len(t, view.Processors, 1)
	assert.Equal(t, 17, view.Processors[0].BillingDate)

	_, err = f.svc.GetProcessor(ctx, "u1", "braintree")
	require.ErrorIs(t, err, aggregate.ErrInvalidProcessorName)
	_, err = f.svc.GetBillingDate(ctx, "u1", "nope")
	require.ErrorIs(t, err, aggregate.ErrInvalidProcessorName)
}

func TestConcurrentCreates_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, provider := range []string{"stripe", "heroku"} {
		wg.Add(1)
		go func(i int, provider string) {
			defer wg.Done()
			_, errs[i] = f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u2", Provider: provider, Token: "tok_1"})
		}(i, provider)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	agg, err := f.store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, agg.Has(adapter.Stripe))
	assert.True(t, agg.Has(adapter.Heroku))
	assert.Contains(t, []adapter.Provider{adapter.Stripe, adapter.Heroku}, agg.Default)
}

func TestConcurrentDuplicateCreate_OneWinsOtherRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "stripe", Token: "tok_1"})
		}(i)
	}
	wg.Wait()

	var failures int
	for _, err := range errs {
		if err != nil {
			failures++
			require.ErrorIs(t, err, aggregate.ErrProviderAlreadyExists)
		}
	}
	assert.Equal(t, 1, failures)
	f.gw.mu.Lock()
	defer f.gw.mu.Unlock()
	assert.Len(t, f.gw.customers, 1, "the losing registration must be removed remotely")
}

func TestDeleteDefault_LeavesNoDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	_, err = f.svc.DeleteProcessor(ctx, "u1", "stripe")
	require.NoError(t, err)

	_, err = f.svc.GetProcessor(ctx, "u1", aggregate.DefaultSelector)
	require.ErrorIs(t, err, aggregate.ErrNoDefaultProcessor)
	assert.True(t, errors.Is(err, errkind.Conflict))

	view, err := f.svc.GetProcessor(ctx, "u1", "heroku")
	require.NoError(t, err)
	require.Len(t, view.Processors, 1)
	assert.False(t, view.Processors[0].IsDefault)
}

func TestConcurrentSetDefaultAndDelete_NoLostUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var setErr, delErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, setErr = f.svc.SetDefaultProcessor(ctx, "u1", "heroku")
	}()
	go func() {
		defer wg.Done()
		_, delErr = f.svc.DeleteProcessor(ctx, "u1", "stripe")
	}()
	wg.Wait()
	require.NoError(t, setErr)
	require.NoError(t, delErr)

	// Either order ends with heroku as the only processor and the default.
	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, agg.Has(adapter.Stripe))
	assert.True(t, agg.Has(adapter.Heroku))
	assert.Equal(t, adapter.Heroku, agg.Default)
	require.NoError(t, agg.Check())
}

func TestConcurrentDeletes_BothApplied(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")
	_, err := f.svc.CreateProcessor(ctx, CreateRequest{Owner: "u1", Provider: "heroku"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, provider := range []string{"stripe", "heroku"} {
		wg.Add(1)
		go func(i int, provider string) {
			defer wg.Done()
			_, errs[i] = f.svc.DeleteProcessor(ctx, "u1", provider)
		}(i, provider)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, agg.IsEmpty())
	assert.Equal(t, adapter.Provider(""), agg.Default)
	f.gw.mu.Lock()
	defer f.gw.mu.Unlock()
	assert.Empty(t, f.gw.customers)
}

func TestCreate_StoresSingleSubscription(t *testing.T) {
	ctx := context.Background()
	f := newFixture(false)
	createStripe(t, f, "u1", "tok_1")

	agg, err := f.store.Get(ctx, "u1")
	require.NoError(t, err)
	a, err := agg.Adapter(adapter.NewRegistry(adapter.Config{StripePlanID: testPlanID}), "stripe")
	require.NoError(t, err)
	rec, err := a.ParseData(agg.Slots[adapter.Stripe])
	require.NoError(t, err)
	sr := rec.(adapter.StripeRecord)
	require.Len(t, sr.Customer.Subscriptions, 1)
	assert.Equal(t, "sub_3", sr.Customer.Subscriptions[0].ID)
	valid, err := a.Validate()
	require.NoError(t, err)
	assert.True(t, valid)
	assert.Contains(t, f.gw.calls, "get_customer")
}
