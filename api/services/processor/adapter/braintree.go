package adapter

import "context"

// BraintreeRecord is the stored shape reserved for Braintree registrations.
type BraintreeRecord struct {
	CustomerID  string `json:"customerId"`
	BillingDate int    `json:"billingDate"`
}

func (BraintreeRecord) Provider() Provider { return Braintree }
func (BraintreeRecord) sealed()            {}

// braintreeAdapter only knows its storage shape; every remote capability is unimplemented.
type braintreeAdapter struct {
	bound *BraintreeRecord
}

func newBraintree(bound StoredData) (Adapter, error) {
	a := &braintreeAdapter{}
	if bound.Empty() {
		return a, nil
	}
	rec, err := a.ParseData(bound)
	if err != nil {
		return nil, err
	}
	br := rec.(BraintreeRecord)
	a.bound = &br
	return a, nil
}

func (a *braintreeAdapter) Provider() Provider { return Braintree }

func (a *braintreeAdapter) Register(context.Context, RegistrationRequest) (Record, error) {
	return nil, notImplemented(Braintree, "register")
}

func (a *braintreeAdapter) Validate() (bool, error) {
	return false, notImplemented(Braintree, "validate")
}

func (a *braintreeAdapter) Delete(context.Context) (Confirmation, error) {
	return Confirmation{}, notImplemented(Braintree, "delete")
}

func (a *braintreeAdapter) Cancel(context.Context) (Confirmation, error) {
	return Confirmation{}, notImplemented(Braintree, "cancel")
}

func (a *braintreeAdapter) AddPaymentMethod(context.Context, string) (Record, error) {
	return nil, notImplemented(Braintree, "add payment method")
}

func (a *braintreeAdapter) SerializeData(rec Record) (StoredData, error) {
	br, ok := rec.(BraintreeRecord)
	if !ok {
		return nil, wrongRecord(Braintree, rec)
	}
	return wrap(br)
}

func (a *braintreeAdapter) ParseData(data StoredData) (Record, error) {
	var br BraintreeRecord
	if err := unwrap(data, &br); err != nil {
		return nil, err
	}
	return br, nil
}

func (a *braintreeAdapter) DefaultPaymentMethod() (*MethodSummary, error) {
	return nil, notImplemented(Braintree, "default payment method")
}

func (a *braintreeAdapter) BillingDate() (int, error) {
	return 0, notImplemented(Braintree, "billing date")
}

func (a *braintreeAdapter) PaymentMethods() ([]MethodSummary, error) {
	return nil, notImplemented(Braintree, "payment methods")
}
