package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeParse_RoundTrip(t *testing.T) {
	reg, _ := newTestRegistry(t)
	records := []Record{
		subscribedRecord(),
		StripeRecord{Customer: StripeCustomer{ID: "cus_empty", Subscriptions: []StripeSubscription{}, Sources: []StripeSource{}}, BillingDate: 1},
		StripeRecord{Customer: StripeCustomer{ID: "cus_nil"}, BillingDate: 28},
		HerokuRecord{Email: "user@domain.tld", BillingDate: 3},
		BraintreeRecord{CustomerID: "bt_1", BillingDate: 9},
	}
	for _, rec := range records {
		a, err := reg.Bind(rec.Provider(), nil)
		require.NoError(t, err)

		data, err := a.SerializeData(rec)
		require.NoError(t, err)
		require.Len(t, data, 1, "storage shape wraps a single record")

		got, err := a.ParseData(data)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	}
}

func TestSerialize_StorageShapeIsListOfOne(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a, err := reg.Bind(Heroku, nil)
	require.NoError(t, err)

	data, err := a.SerializeData(HerokuRecord{Email: "user@domain.tld", BillingDate: 3})
	require.NoError(t, err)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"user@domain.tld","billingDate":3}]`, string(raw))
}

func TestParse_RejectsAmbiguousShapes(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a, err := reg.Bind(Heroku, nil)
	require.NoError(t, err)

	_, err = a.ParseData(StoredData{})
	assert.ErrorIs(t, err, ErrCorruptData)

	two := StoredData{[]byte(`{"billingDate":1}`), []byte(`{"billingDate":2}`)}
	_, err = a.ParseData(two)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestSerialize_RejectsForeignRecord(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a, err := reg.Bind(Stripe, nil)
	require.NoError(t, err)

	_, err = a.SerializeData(HerokuRecord{})
	assert.ErrorIs(t, err, ErrCorruptData)
	_, err = a.SerializeData(nil)
	assert.ErrorIs(t, err, ErrCorruptData)
}

func TestStoredData_CloneIsDeep(t *testing.T) {
	orig := StoredData{json.RawMessage(`{"a":1}`)}
	clone := orig.Clone()
	clone[0][2] = 'b'
	assert.Equal(t, `{"a":1}`, string(orig[0]))
	assert.Nil(t, StoredData(nil).Clone())
}
