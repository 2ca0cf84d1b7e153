package grpcserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
)

func TestToProcessorView(t *testing.T) {
	at := time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)
	v := toProcessorView(app.ProcessorView{
		Owner:            "u1",
		DefaultProcessor: "heroku",
		CreatedAt:        at,
		Processors: []app.ProcessorSummary{
			{Name: "stripe", BillingDate: 17, DefaultPaymentMethod: &adapter.MethodSummary{ID: "card_1", Merchant: "Visa", LastFour: "4242"}},
			{Name: "heroku", IsDefault: true},
		},
	})

	assert.Equal(t, "u1", v.GetOwner())
	assert.Equal(t, "heroku", v.GetDefaultProcessor())
	assert.True(t, v.GetCreatedAt().AsTime().Equal(at))
	require.Len(t, v.GetProcessors(), 2)
	assert.Equal(t, int32(17), v.GetProcessors()[0].GetBillingDate())
	assert.Equal(t, "4242", v.GetProcessors()[0].GetDefaultPaymentMethod().GetLastFour())
	assert.True(t, v.GetProcessors()[1].GetIsDefault())
	assert.Nil(t, v.GetProcessors()[1].GetDefaultPaymentMethod())
}

func TestToProcessorView_Empty(t *testing.T) {
	v := toProcessorView(app.ProcessorView{Owner: "u1"})
	assert.Nil(t, v.GetCreatedAt())
	assert.NotNil(t, v.GetProcessors())
	assert.Empty(t, v.GetProcessors())
}

func TestToMethodSummaries(t *testing.T) {
	ms := toMethodSummaries([]adapter.MethodSummary{{ID: "a"}, {ID: "b"}})
	require.Len(t, ms, 2)
	assert.Equal(t, "a", ms[0].GetId())
	assert.Equal(t, "b", ms[1].GetId())
	assert.Nil(t, toMethodSummary(nil))
}
