package grpcserver

import (
	"context"
	"time"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
)

var createdAt = time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)

// stubService answers from fixed data; err, when set, is returned by every call.
type stubService struct {
	err        error
	lastOwner  string
	lastName   string
	lastToken  string
	lastCreate app.CreateRequest
}

func (s *stubService) view(owner string) app.ProcessorView {
	return app.ProcessorView{
		Owner:            owner,
		DefaultProcessor: "stripe",
		CreatedAt:        createdAt,
		Processors: []app.ProcessorSummary{{
			Name:                 "stripe",
			IsDefault:            true,
			BillingDate:          17,
			DefaultPaymentMethod: &adapter.MethodSummary{ID: "card_1", Merchant: "Visa", LastFour: "4242"},
		}},
	}
}

func (s *stubService) record(owner, name string) {
	s.lastOwner, s.lastName = owner, name
}

func (s *stubService) CreateProcessor(_ context.Context, req app.CreateRequest) (app.ProcessorView, error) {
	s.lastCreate = req
	if s.err != nil {
		return app.ProcessorView{}, s.err
	}
	return s.view(req.Owner), nil
}

func (s *stubService) GetProcessor(_ context.Context, owner, name string) (app.ProcessorView, error) {
	s.record(owner, name)
	if s.err != nil {
		return app.ProcessorView{}, s.err
	}
	return s.view(owner), nil
}

func (s *stubService) SetDefaultProcessor(_ context.Context, owner, name string) (app.ProcessorView, error) {
	s.record(owner, name)
	if s.err != nil {
		return app.ProcessorView{}, s.err
	}
	return s.view(owner), nil
}

func (s *stubService) DeleteProcessor(_ context.Context, owner, name string) (app.ProcessorView, error) {
	s.record(owner, name)
	if s.err != nil {
		return app.ProcessorView{}, s.err
	}
	return app.ProcessorView{Owner: owner, CreatedAt: createdAt, Processors: []app.ProcessorSummary{}}, nil
}

func (s *stubService) AddPaymentMethod(_ context.Context, owner, name, token string) (app.ProcessorView, error) {
	s.record(owner, name)
	s.lastToken = token
	if s.err != nil {
		return app.ProcessorView{}, s.err
	}
	return s.view(owner), nil
}

func (s *stubService) CancelSubscription(_ context.Context, owner, name string) (adapter.Confirmation, error) {
	s.record(owner, name)
	if s.err != nil {
		return adapter.Confirmation{}, s.err
	}
	return adapter.Confirmation{Provider: adapter.Stripe, RemoteID: "sub_1", Message: "subscription canceled"}, nil
}

func (s *stubService) GetBillingDate(_ context.Context, owner, name string) (int, error) {
	s.record(owner, name)
	if s.err != nil {
		return 0, s.err
	}
	return 17, nil
}

func (s *stubService) GetPaymentMethods(_ context.Context, owner, name string) ([]adapter.MethodSummary, error) {
	s.record(owner, name)
	if s.err != nil {
		return nil, s.err
	}
	return []adapter.MethodSummary{{ID: "card_1", Merchant: "Visa", LastFour: "4242"}}, nil
}

func (s *stubService) GetDefaultPaymentMethod(_ context.Context, owner, name string) (*adapter.MethodSummary, error) {
	s.record(owner, name)
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.MethodSummary{ID: "card_1", Merchant: "Visa", LastFour: "4242"}, nil
}
