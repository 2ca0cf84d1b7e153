package gateway

import (
    "context"

    stripe "github.com/stripe/stripe-go"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=gateway

// StripeGateway abstracts the Stripe SDK operations the stripe adapter needs.
// Methods return values (not pointers) to keep pointer types out of public interfaces.
// Errors are returned untouched; the adapter reclassifies them.
type StripeGateway interface {
    CreateCustomer(ctx context.Context, email, token string) (stripe.Customer, error)
    GetCustomer(ctx context.Context, id string) (stripe.Customer, error)
    DeleteCustomer(ctx context.Context, id string) (stripe.Customer, error)
    CreateSubscription(ctx context.Context, customerID, planID string) (stripe.Subscription, error)
    CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error)
    CreateSource(ctx context.Context, customerID, token string) (stripe.Card, error)
}
