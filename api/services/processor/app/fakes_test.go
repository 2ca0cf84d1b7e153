package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	stripe "github.com/stripe/stripe-go"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/reconcile"
)

const testPlanID = "plan_storage_monthly"

var fixedNow = time.Date(2026, time.March, 17, 9, 30, 0, 0, time.UTC)

// fakeGateway is an in-memory Stripe with just enough behavior for the service flows.
type fakeGateway struct {
	mu        sync.Mutex
	seq       int
	customers map[string]*stripe.Customer
	canceled  map[string]bool
	calls     []string

	failSubscription error
	failDelete       error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{customers: map[string]*stripe.Customer{}, canceled: map[string]bool{}}
}

func notFound(what, id string) error {
	return &stripe.Error{HTTPStatusCode: http.StatusNotFound, Msg: fmt.Sprintf("No such %s: %s", what, id)}
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *fakeGateway) source(token string) *stripe.PaymentSource {
	g.seq++
	return &stripe.PaymentSource{
		ID:   fmt.Sprintf("card_%d", g.seq),
		Card: &stripe.Card{Brand: "Visa", Last4: fmt.Sprintf("%04d", 4240+g.seq)},
	}
}

func (g *fakeGateway) CreateCustomer(_ context.Context, email, token string) (stripe.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "create_customer")
	if token == "tok_bad" {
		return stripe.Customer{}, &stripe.Error{HTTPStatusCode: http.StatusBadRequest, Msg: "No such token: tok_bad"}
	}
	g.seq++
	c := &stripe.Customer{
		ID:            fmt.Sprintf("cus_%d", g.seq),
		Email:         email,
		Subscriptions: &stripe.SubscriptionList{},
		Sources:       &stripe.SourceList{},
	}
	if token != "" {
		c.Sources.Data = append(c.Sources.Data, g.source(token))
	}
	g.customers[c.ID] = c
	return cloneCustomer(c), nil
}

func (g *fakeGateway) GetCustomer(_ context.Context, id string) (stripe.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "get_customer")
	c, ok := g.customers[id]
	if !ok {
		return stripe.Customer{}, notFound("customer", id)
	}
	return cloneCustomer(c), nil
}

func (g *fakeGateway) DeleteCustomer(_ context.Context, id string) (stripe.Customer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "delete_customer")
	if g.failDelete != nil {
		return stripe.Customer{}, g.failDelete
	}
	if _, ok := g.customers[id]; !ok {
		return stripe.Customer{}, notFound("customer", id)
	}
	delete(g.customers, id)
	return stripe.Customer{ID: id, Deleted: true}, nil
}

func (g *fakeGateway) CreateSubscription(_ context.Context, customerID, planID string) (stripe.Subscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "create_subscription")
	if g.failSubscription != nil {
		return stripe.Subscription{}, g.failSubscription
	}
	c, ok := g.customers[customerID]
	if !ok {
		return stripe.Subscription{}, notFound("customer", customerID)
	}
	g.seq++
	s := &stripe.Subscription{
		ID:     fmt.Sprintf("sub_%d", g.seq),
		Status: stripe.SubscriptionStatusActive,
		Plan:   &stripe.Plan{ID: planID},
	}
	c.Subscriptions.Data = append(c.Subscriptions.Data, s)
	return *s, nil
}

// CancelSubscription answers 404 once a subscription is canceled, as Stripe does.
func (g *fakeGateway) CancelSubscription(_ context.Context, id string) (stripe.Subscription, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "cancel_subscription")
	if g.canceled[id] {
		return stripe.Subscription{}, notFound("subscription", id)
	}
	for _, c := range g.customers {
		for i, s := range c.Subscriptions.Data {
			if s.ID == id {
				g.canceled[id] = true
				c.Subscriptions.Data = append(c.Subscriptions.Data[:i], c.Subscriptions.Data[i+1:]...)
				return stripe.Subscription{ID: id, Status: stripe.SubscriptionStatusCanceled}, nil
			}
		}
	}
	return stripe.Subscription{}, notFound("subscription", id)
}

func (g *fakeGateway) CreateSource(_ context.Context, customerID, token string) (stripe.Card, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, "create_source")
	c, ok := g.customers[customerID]
	if !ok {
		return stripe.Card{}, notFound("customer", customerID)
	}
	src := g.source(token)
	c.Sources.Data = append(c.Sources.Data, src)
	return *src.Card, nil
}

// cloneCustomer copies c down to its list entries, as a decoded API response would be.
func cloneCustomer(c *stripe.Customer) stripe.Customer {
	out := *c
	out.Subscriptions = &stripe.SubscriptionList{}
	for _, s := range c.Subscriptions.Data {
		cp := *s
		out.Subscriptions.Data = append(out.Subscriptions.Data, &cp)
	}
	out.Sources = &stripe.SourceList{}
	for _, src := range c.Sources.Data {
		cp := *src
		if src.Card != nil {
			card := *src.Card
			cp.Card = &card
		}
		out.Sources.Data = append(out.Sources.Data, &cp)
	}
	return out
}

// failingStore wraps a MemoryStore and fails saves on demand.
type failingStore struct {
	*db.MemoryStore
	mu       sync.Mutex
	failSave error
}

func (s *failingStore) setFailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSave = err
}

func (s *failingStore) Save(ctx context.Context, agg aggregate.Aggregate) (aggregate.Aggregate, error) {
	s.mu.Lock()
	err := s.failSave
	s.mu.Unlock()
	if err != nil {
		return aggregate.Aggregate{}, err
	}
	return s.MemoryStore.Save(ctx, agg)
}

type recordingPublisher struct {
	mu      sync.Mutex
	records []reconcile.Record
}

func (p *recordingPublisher) Publish(_ context.Context, rec reconcile.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, rec)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.records)
}

type fixture struct {
	svc   Service
	gw    *fakeGateway
	store *failingStore
	users *db.MemoryUsers
	pub   *recordingPublisher
}

func newFixture(prune bool) *fixture {
	gw := newFakeGateway()
	store := &failingStore{MemoryStore: db.NewMemoryStore()}
	users := db.NewMemoryUsers(map[string]string{
		"u1":      "user@domain.tld",
		"u2":      "other@domain.tld",
		"noemail": "",
	})
	pub := &recordingPublisher{}
	svc := NewService(Dependencies{
		Registry: adapter.NewRegistry(adapter.Config{
			Stripe:       gw,
			StripePlanID: testPlanID,
			Now:          func() time.Time { return fixedNow },
		}),
		Store:      store,
		Users:      users,
		Publisher:  pub,
		PruneEmpty: prune,
		Now:        func() time.Time { return fixedNow },
	})
	return &fixture{svc: svc, gw: gw, store: store, users: users, pub: pub}
}
