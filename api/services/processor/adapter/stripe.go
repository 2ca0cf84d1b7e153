package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	stripe "github.com/stripe/stripe-go"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/gateway"
)

// StripeRecord is the stored shape of a Stripe registration.
type StripeRecord struct {
	Customer StripeCustomer `json:"customer"`
	// BillingDate is the day of month the customer registered on.
	BillingDate int `json:"billingDate"`
}

type StripeCustomer struct {
	ID            string               `json:"id"`
	Email         string               `json:"email"`
	Subscriptions []StripeSubscription `json:"subscriptions"`
	Sources       []StripeSource       `json:"sources"`
}

type StripeSubscription struct {
	ID     string `json:"id"`
	PlanID string `json:"planId"`
	Status string `json:"status"`
}

type StripeSource struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	LastFour string `json:"lastFour"`
}

func (StripeRecord) Provider() Provider { return Stripe }
func (StripeRecord) sealed()            {}

type stripeAdapter struct {
	gw     gateway.StripeGateway
	planID string
	now    func() time.Time
	bound  *StripeRecord
}

func (r *Registry) newStripe(bound StoredData) (Adapter, error) {
	a := &stripeAdapter{gw: r.stripe, planID: r.stripePlanID, now: r.now}
	if bound.Empty() {
		return a, nil
	}
	rec, err := a.ParseData(bound)
	if err != nil {
		return nil, err
	}
	sr := rec.(StripeRecord)
	a.bound = &sr
	return a, nil
}

func (a *stripeAdapter) Provider() Provider { return Stripe }

// Register creates a Stripe customer, subscribes it to the configured plan and
// re-reads the customer so the record matches Stripe's view.
func (a *stripeAdapter) Register(ctx context.Context, req RegistrationRequest) (Record, error) {
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	cust, err := a.gw.CreateCustomer(ctx, req.Email, req.Token)
	if err != nil {
		return nil, classifyStripe("create customer", err)
	}
	subscription, err := a.gw.CreateSubscription(ctx, cust.ID, a.planID)
	if err != nil {
		cause := classifyStripe("create subscription", err)
		if _, delErr := a.gw.DeleteCustomer(context.WithoutCancel(ctx), cust.ID); delErr != nil {
			slog.ErrorContext(ctx, "stripe customer left without subscription",
				"module", "adapter", "operation", "register", "outcome", "partial",
				"customer_id", cust.ID, "err", delErr)
			return nil, fmt.Errorf("%w: stripe customer %s left without subscription: %w", errkind.PartialFailure, cust.ID, cause)
		}
		return nil, cause
	}

	rec := StripeRecord{Customer: toStripeCustomer(cust), BillingDate: a.now().Day()}
	refreshed, err := a.gw.GetCustomer(ctx, cust.ID)
	if err == nil {
		rec.Customer = toStripeCustomer(refreshed)
	} else {
		slog.WarnContext(ctx, "stripe customer re-fetch failed, using create responses",
			"module", "adapter", "operation", "register", "outcome", "degraded",
			"customer_id", cust.ID, "err", err)
	}
	rec.Customer.Subscriptions = withSubscription(rec.Customer.Subscriptions, toStripeSubscription(subscription))
	return rec, nil
}

// withSubscription adds s unless a subscription with the same id is already listed.
func withSubscription(subs []StripeSubscription, s StripeSubscription) []StripeSubscription {
	for i := range subs {
		if subs[i].ID == s.ID {
			return subs
		}
	}
	return append(subs, s)
}

func (a *stripeAdapter) Validate() (bool, error) {
	if a.bound == nil {
		return false, ErrUnbound
	}
	subs := a.bound.Customer.Subscriptions
	switch {
	case len(subs) == 0:
		return false, nil
	case len(subs) > 1:
		return false, fmt.Errorf("%w: customer %s has %d", ErrAmbiguousSubscription, a.bound.Customer.ID, len(subs))
	}
	if subs[0].PlanID != a.planID {
		return false, fmt.Errorf("%w: %q", ErrWrongPlan, subs[0].PlanID)
	}
	if subs[0].Status == string(stripe.SubscriptionStatusCanceled) {
		return false, nil
	}
	return true, nil
}

// Delete removes the Stripe customer. Deleted customers stay retrievable on
// Stripe's side but accept no further operations.
func (a *stripeAdapter) Delete(ctx context.Context) (Confirmation, error) {
	if a.bound == nil {
		return Confirmation{}, ErrUnbound
	}
	id := a.bound.Customer.ID
	confirmation, err := a.gw.DeleteCustomer(ctx, id)
	if err != nil {
		return Confirmation{}, classifyStripe("delete customer", err)
	}
	if !confirmation.Deleted {
		return Confirmation{}, fmt.Errorf("%w: customer %s was not deleted", ErrRemoteInternal, id)
	}
	return Confirmation{Provider: Stripe, RemoteID: id, Message: "customer deleted"}, nil
}

// Cancel cancels the customer's subscription.
func (a *stripeAdapter) Cancel(ctx context.Context) (Confirmation, error) {
	if a.bound == nil {
		return Confirmation{}, ErrUnbound
	}
	subs := a.bound.Customer.Subscriptions
	if len(subs) == 0 {
		return Confirmation{}, fmt.Errorf("%w: customer %s has no subscription", ErrNotFound, a.bound.Customer.ID)
	}
	cancelled, err := a.gw.CancelSubscription(ctx, subs[0].ID)
	if err != nil {
		return Confirmation{}, classifyStripe("cancel subscription", err)
	}
	if cancelled.Status != stripe.SubscriptionStatusCanceled {
		return Confirmation{}, fmt.Errorf("%w: subscription %s is %q after cancel", ErrRemoteInternal, subs[0].ID, cancelled.Status)
	}
	return Confirmation{Provider: Stripe, RemoteID: subs[0].ID, Message: "subscription canceled"}, nil
}

// AddPaymentMethod attaches a card token, then re-reads the customer so the
// source list and default method reflect Stripe's view.
func (a *stripeAdapter) AddPaymentMethod(ctx context.Context, token string) (Record, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	if token == "" {
		return nil, ErrMissingToken
	}
	id := a.bound.Customer.ID
	if _, err := a.gw.CreateSource(ctx, id, token); err != nil {
		return nil, classifyStripe("create source", err)
	}
	cust, err := a.gw.GetCustomer(ctx, id)
	if err != nil {
		return nil, classifyStripe("retrieve customer", err)
	}
	rec := StripeRecord{Customer: toStripeCustomer(cust), BillingDate: a.bound.BillingDate}
	a.bound = &rec
	return rec, nil
}

func (a *stripeAdapter) SerializeData(rec Record) (StoredData, error) {
	sr, ok := rec.(StripeRecord)
	if !ok {
		return nil, wrongRecord(Stripe, rec)
	}
	return wrap(sr)
}

func (a *stripeAdapter) ParseData(data StoredData) (Record, error) {
	var sr StripeRecord
	if err := unwrap(data, &sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (a *stripeAdapter) DefaultPaymentMethod() (*MethodSummary, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	if len(a.bound.Customer.Sources) == 0 {
		return nil, nil
	}
	m := toMethodSummary(a.bound.Customer.Sources[0])
	return &m, nil
}

func (a *stripeAdapter) BillingDate() (int, error) {
	if a.bound == nil {
		return 0, ErrUnbound
	}
	return a.bound.BillingDate, nil
}

func (a *stripeAdapter) PaymentMethods() ([]MethodSummary, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	out := make([]MethodSummary, 0, len(a.bound.Customer.Sources))
	for _, src := range a.bound.Customer.Sources {
		out = append(out, toMethodSummary(src))
	}
	return out, nil
}

func toMethodSummary(src StripeSource) MethodSummary {
	return MethodSummary{ID: src.ID, Merchant: src.Brand, LastFour: src.LastFour}
}

func toStripeCustomer(c stripe.Customer) StripeCustomer {
	out := StripeCustomer{
		ID:            c.ID,
		Email:         c.Email,
		Subscriptions: []StripeSubscription{},
		Sources:       []StripeSource{},
	}
	if c.Subscriptions != nil {
		for _, s := range c.Subscriptions.Data {
			if s != nil {
				out.Subscriptions = append(out.Subscriptions, toStripeSubscription(*s))
			}
		}
	}
	if c.Sources != nil {
		for _, src := range c.Sources.Data {
			if src == nil {
				continue
			}
			s := StripeSource{ID: src.ID}
			if src.Card != nil {
				s.Brand = string(src.Card.Brand)
				s.LastFour = src.Card.Last4
			}
			out.Sources = append(out.Sources, s)
		}
	}
	return out
}

func toStripeSubscription(s stripe.Subscription) StripeSubscription {
	out := StripeSubscription{ID: s.ID, Status: string(s.Status)}
	if s.Plan != nil {
		out.PlanID = s.Plan.ID
	}
	return out
}

// classifyStripe turns an SDK error into the adapter taxonomy. The gateway's
// own HTTP status decides not-found versus internal.
func classifyStripe(op string, err error) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		switch {
		case se.HTTPStatusCode == http.StatusNotFound:
			return fmt.Errorf("%w: %s: %s", ErrNotFound, op, se.Msg)
		case se.HTTPStatusCode == http.StatusBadRequest,
			se.HTTPStatusCode == http.StatusPaymentRequired,
			se.Type == stripe.ErrorTypeCard:
			return fmt.Errorf("%w: %s: %s", ErrRemoteRejected, op, se.Msg)
		}
		return fmt.Errorf("%w: %s: %s", ErrRemoteInternal, op, se.Msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrRemoteInternal, op, err)
}
