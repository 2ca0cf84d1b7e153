package adapter

import "context"

// RegistrationRequest carries what a provider needs to create a billable entity.
// Token is optional; not every provider takes one at registration.
type RegistrationRequest struct {
	Email string
	Token string
}

// MethodSummary describes one payment source on a registered entity.
type MethodSummary struct {
	ID       string `json:"id"`
	Merchant string `json:"merchant"`
	LastFour string `json:"lastFour"`
}

// Confirmation acknowledges a remote delete or cancel.
type Confirmation struct {
	Provider Provider `json:"provider"`
	RemoteID string   `json:"remoteId"`
	Message  string   `json:"message"`
}

// Record is the provider-native representation of a registered billing entity.
// Only the record types declared in this package implement it.
type Record interface {
	Provider() Provider
	sealed()
}

// Adapter implements the provider-specific operations behind one contract.
// An adapter is built per operation by a Registry and optionally bound to
// the slot data it acts on. Variants that do not support a capability
// return ErrNotImplemented.
type Adapter interface {
	Provider() Provider

	// Register creates the remote billable entity. It needs no bound data.
	Register(ctx context.Context, req RegistrationRequest) (Record, error)
	// Validate reports whether the bound data holds exactly one subscription to the
	// expected plan. Zero subscriptions is (false, nil).
	Validate() (bool, error)
	Delete(ctx context.Context) (Confirmation, error)
	Cancel(ctx context.Context) (Confirmation, error)
	// AddPaymentMethod attaches a source and returns the refreshed record. The caller persists it.
	AddPaymentMethod(ctx context.Context, token string) (Record, error)

	SerializeData(rec Record) (StoredData, error)
	ParseData(data StoredData) (Record, error)

	DefaultPaymentMethod() (*MethodSummary, error)
	BillingDate() (int, error)
	PaymentMethods() ([]MethodSummary, error)
}
