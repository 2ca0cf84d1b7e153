package adapter

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/gateway"
)

const testPlanID = "plan_storage_monthly"

var fixedNow = time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)

func newTestRegistry(t *testing.T) (*Registry, *gateway.MockStripeGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := gateway.NewMockStripeGateway(ctrl)
	reg := NewRegistry(Config{
		Stripe:       gw,
		StripePlanID: testPlanID,
		Now:          func() time.Time { return fixedNow },
	})
	return reg, gw
}

// bind serializes rec through an unbound adapter and binds a fresh adapter to the result.
func bind(t *testing.T, reg *Registry, rec Record) Adapter {
	t.Helper()
	unbound, err := reg.Bind(rec.Provider(), nil)
	require.NoError(t, err)
	data, err := unbound.SerializeData(rec)
	require.NoError(t, err)
	a, err := reg.Bind(rec.Provider(), data)
	require.NoError(t, err)
	return a
}

func subscribedRecord() StripeRecord {
	return StripeRecord{
		Customer: StripeCustomer{
			ID:    "cus_1",
			Email: "user@domain.tld",
			Subscriptions: []StripeSubscription{
				{ID: "sub_1", PlanID: testPlanID, Status: "active"},
			},
			Sources: []StripeSource{
				{ID: "card_1", Brand: "Visa", LastFour: "4242"},
				{ID: "card_2", Brand: "MasterCard", LastFour: "4444"},
			},
		},
		BillingDate: 17,
	}
}
