package adapter

import (
	"context"
	"time"
)

// HerokuRecord is the stored shape of a Heroku add-on (free tier) registration.
// Heroku bills through its own marketplace, so nothing remote is created here.
type HerokuRecord struct {
	Email       string `json:"email"`
	BillingDate int    `json:"billingDate"`
}

func (HerokuRecord) Provider() Provider { return Heroku }
func (HerokuRecord) sealed()            {}

type herokuAdapter struct {
	now   func() time.Time
	bound *HerokuRecord
}

func (r *Registry) newHeroku(bound StoredData) (Adapter, error) {
	a := &herokuAdapter{now: r.now}
	if bound.Empty() {
		return a, nil
	}
	rec, err := a.ParseData(bound)
	if err != nil {
		return nil, err
	}
	hr := rec.(HerokuRecord)
	a.bound = &hr
	return a, nil
}

func (a *herokuAdapter) Provider() Provider { return Heroku }

func (a *herokuAdapter) Register(_ context.Context, req RegistrationRequest) (Record, error) {
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	return HerokuRecord{Email: req.Email, BillingDate: a.now().Day()}, nil
}

// Validate accepts any bound record: add-on plans are verified by Heroku.
func (a *herokuAdapter) Validate() (bool, error) {
	if a.bound == nil {
		return false, ErrUnbound
	}
	return true, nil
}

func (a *herokuAdapter) Delete(_ context.Context) (Confirmation, error) {
	if a.bound == nil {
		return Confirmation{}, ErrUnbound
	}
	return Confirmation{Provider: Heroku, Message: "heroku registration removed"}, nil
}

func (a *herokuAdapter) Cancel(context.Context) (Confirmation, error) {
	return Confirmation{}, notImplemented(Heroku, "cancel")
}

func (a *herokuAdapter) AddPaymentMethod(context.Context, string) (Record, error) {
	return nil, notImplemented(Heroku, "add payment method")
}

func (a *herokuAdapter) SerializeData(rec Record) (StoredData, error) {
	hr, ok := rec.(HerokuRecord)
	if !ok {
		return nil, wrongRecord(Heroku, rec)
	}
	return wrap(hr)
}

func (a *herokuAdapter) ParseData(data StoredData) (Record, error) {
	var hr HerokuRecord
	if err := unwrap(data, &hr); err != nil {
		return nil, err
	}
	return hr, nil
}

func (a *herokuAdapter) DefaultPaymentMethod() (*MethodSummary, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	return nil, nil
}

func (a *herokuAdapter) BillingDate() (int, error) {
	if a.bound == nil {
		return 0, ErrUnbound
	}
	return a.bound.BillingDate, nil
}

func (a *herokuAdapter) PaymentMethods() ([]MethodSummary, error) {
	if a.bound == nil {
		return nil, ErrUnbound
	}
	return []MethodSummary{}, nil
}
