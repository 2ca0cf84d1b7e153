package stripegw

import (
    "context"

    stripe "github.com/stripe/stripe-go"
    "github.com/stripe/stripe-go/card"
    "github.com/stripe/stripe-go/customer"
    "github.com/stripe/stripe-go/sub"

    gw "github.com/tbeaudouin05/payment-processors/api/services/processor/gateway"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// client is the Stripe SDK-backed implementation of the gateway.
type client struct{}

// New returns a StripeGateway backed by the official Stripe SDK.
func New() gw.StripeGateway { return client{} }

func params(ctx context.Context) stripe.Params { return stripe.Params{Context: ctx} }

func (client) CreateCustomer(ctx context.Context, email, token string) (stripe.Customer, error) {
    p := &stripe.CustomerParams{Params: params(ctx), Email: stripe.String(email)}
    if token != "" {
        if err := p.SetSource(token); err != nil {
            return stripe.Customer{}, err
        }
    }
    custPtr, err := customer.New(p)
    if err != nil {
        return stripe.Customer{}, err
    }
    return derefCustomer(custPtr), nil
}

func (client) GetCustomer(ctx context.Context, id string) (stripe.Customer, error) {
    custPtr, err := customer.Get(id, &stripe.CustomerParams{Params: params(ctx)})
    if err != nil {
        return stripe.Customer{}, err
    }
    return derefCustomer(custPtr), nil
}

func (client) DeleteCustomer(ctx context.Context, id string) (stripe.Customer, error) {
    custPtr, err := customer.Del(id, &stripe.CustomerParams{Params: params(ctx)})
    if err != nil {
        return stripe.Customer{}, err
    }
    return derefCustomer(custPtr), nil
}

func (client) CreateSubscription(ctx context.Context, customerID, planID string) (stripe.Subscription, error) {
    subPtr, err := sub.New(&stripe.SubscriptionParams{
        Params:   params(ctx),
        Customer: stripe.String(customerID),
        Items:    []*stripe.SubscriptionItemsParams{{Plan: stripe.String(planID)}},
    })
    if err != nil {
        return stripe.Subscription{}, err
    }
    if subPtr == nil {
        return stripe.Subscription{}, nil
    }
    return *subPtr, nil
}

func (client) CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error) {
    subPtr, err := sub.Cancel(id, &stripe.SubscriptionCancelParams{Params: params(ctx)})
    if err != nil {
        return stripe.Subscription{}, err
    }
    if subPtr == nil {
        return stripe.Subscription{}, nil
    }
    return *subPtr, nil
}

func (client) CreateSource(ctx context.Context, customerID, token string) (stripe.Card, error) {
    cardPtr, err := card.New(&stripe.CardParams{
        Params:   params(ctx),
        Customer: stripe.String(customerID),
        Token:    stripe.String(token),
    })
    if err != nil {
        return stripe.Card{}, err
    }
    if cardPtr == nil {
        return stripe.Card{}, nil
    }
    return *cardPtr, nil
}

func derefCustomer(c *stripe.Customer) stripe.Customer {
    if c == nil {
        return stripe.Customer{}
    }
    return *c
}
