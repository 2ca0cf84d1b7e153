package grpcserver

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	processorsv1 "github.com/tbeaudouin05/payment-processors/api/gen/processors/v1"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
)

func toProcessorView(v app.ProcessorView) *processorsv1.ProcessorView {
	out := &processorsv1.ProcessorView{
		Owner:            v.Owner,
		DefaultProcessor: v.DefaultProcessor,
		Processors:       make([]*processorsv1.ProcessorSummary, 0, len(v.Processors)),
	}
	if !v.CreatedAt.IsZero() {
		out.CreatedAt = timestamppb.New(v.CreatedAt)
	}
	for _, p := range v.Processors {
		out.Processors = append(out.Processors, &processorsv1.ProcessorSummary{
			Name:                 p.Name,
			IsDefault:            p.IsDefault,
			BillingDate:          int32(p.BillingDate),
			DefaultPaymentMethod: toMethodSummary(p.DefaultPaymentMethod),
		})
	}
	return out
}

func toMethodSummary(m *adapter.MethodSummary) *processorsv1.MethodSummary {
	if m == nil {
		return nil
	}
	return &processorsv1.MethodSummary{Id: m.ID, Merchant: m.Merchant, LastFour: m.LastFour}
}

func toMethodSummaries(ms []adapter.MethodSummary) []*processorsv1.MethodSummary {
	out := make([]*processorsv1.MethodSummary, 0, len(ms))
	for i := range ms {
		out = append(out, toMethodSummary(&ms[i]))
	}
	return out
}
