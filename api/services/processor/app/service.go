package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/lock"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/reconcile"
)

// Service defines the business operations over an owner's payment processors.
// Every name argument is a provider name or aggregate.DefaultSelector.
type Service interface {
	CreateProcessor(ctx context.Context, req CreateRequest) (ProcessorView, error)
	// GetProcessor also accepts AllSelector.
	GetProcessor(ctx context.Context, owner, name string) (ProcessorView, error)
	SetDefaultProcessor(ctx context.Context, owner, name string) (ProcessorView, error)
	DeleteProcessor(ctx context.Context, owner, name string) (ProcessorView, error)
	AddPaymentMethod(ctx context.Context, owner, name, token string) (ProcessorView, error)
	CancelSubscription(ctx context.Context, owner, name string) (adapter.Confirmation, error)
	GetBillingDate(ctx context.Context, owner, name string) (int, error)
	GetPaymentMethods(ctx context.Context, owner, name string) ([]adapter.MethodSummary, error)
	GetDefaultPaymentMethod(ctx context.Context, owner, name string) (*adapter.MethodSummary, error)
}

// Dependencies wires the service. Locker, Publisher and Now have in-process defaults.
type Dependencies struct {
	Registry  *adapter.Registry
	Store     db.Store
	Users     db.Users
	Locker    lock.Locker
	Publisher reconcile.Publisher
	// PruneEmpty deletes the aggregate once its last processor is deleted.
	PruneEmpty bool
	Now        func() time.Time
}

type serviceImpl struct {
	reg        *adapter.Registry
	store      db.Store
	users      db.Users
	locker     lock.Locker
	pub        reconcile.Publisher
	pruneEmpty bool
	now        func() time.Time
}

func NewService(deps Dependencies) Service {
	s := &serviceImpl{
		reg:        deps.Registry,
		store:      deps.Store,
		users:      deps.Users,
		locker:     deps.Locker,
		pub:        deps.Publisher,
		pruneEmpty: deps.PruneEmpty,
		now:        deps.Now,
	}
	if s.locker == nil {
		s.locker = lock.NewLocal()
	}
	if s.pub == nil {
		s.pub = reconcile.NewLogPublisher(nil)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *serviceImpl) CreateProcessor(ctx context.Context, req CreateRequest) (_ ProcessorView, err error) {
	defer func() { logFailure(ctx, "create_processor", req.Owner, req.Provider, err) }()
	if req.Owner == "" {
		return ProcessorView{}, ErrMissingOwner
	}
	email, err := s.users.Email(ctx, req.Owner)
	if err != nil {
		return ProcessorView{}, err
	}
	if email == "" {
		return ProcessorView{}, fmt.Errorf("%w: %s", ErrMissingEmail, req.Owner)
	}
	p, err := adapter.ParseProvider(req.Provider)
	if err != nil {
		return ProcessorView{}, err
	}
	current, err := s.load(ctx, req.Owner)
	if err != nil {
		return ProcessorView{}, err
	}
	// Checked again under the lock; this pass keeps duplicates away from the gateway.
	if current.Has(p) {
		return ProcessorView{}, fmt.Errorf("%w: %s for %s", aggregate.ErrProviderAlreadyExists, p, req.Owner)
	}

	unbound, err := s.reg.Bind(p, nil)
	if err != nil {
		return ProcessorView{}, err
	}
	rec, err := unbound.Register(ctx, adapter.RegistrationRequest{Email: email, Token: req.Token})
	if errors.Is(err, errkind.PartialFailure) {
		return ProcessorView{}, s.partialFailure(ctx, req.Owner, p, "create_processor", "", err)
	}
	if err != nil {
		return ProcessorView{}, err
	}
	data, err := unbound.SerializeData(rec)
	if err != nil {
		return ProcessorView{}, s.compensateRegister(ctx, req.Owner, p, nil, err)
	}

	saved, err := s.mutate(ctx, req.Owner, func(agg aggregate.Aggregate) (aggregate.Aggregate, error) {
		return aggregate.Gate(s.reg, agg, p, data, func(next *aggregate.Aggregate) error {
			return next.Register(p, data)
		})
	})
	if err != nil {
		return ProcessorView{}, s.compensateRegister(ctx, req.Owner, p, data, err)
	}
	slog.InfoContext(ctx, "processor registered", "module", "processor", "operation", "create_processor",
		"outcome", "success", "owner", req.Owner, "provider", p, "default", saved.Default)
	return s.view(saved, saved.Registered())
}

func (s *serviceImpl) GetProcessor(ctx context.Context, owner, name string) (_ ProcessorView, err error) {
	defer func() { logFailure(ctx, "get_processor", owner, name, err) }()
	agg, err := s.read(ctx, owner)
	if err != nil {
		return ProcessorView{}, err
	}
	if name == AllSelector {
		return s.view(agg, agg.Registered())
	}
	p, err := agg.Resolve(name)
	if err != nil {
		return ProcessorView{}, err
	}
	return s.view(agg, []adapter.Provider{p})
}

func (s *serviceImpl) SetDefaultProcessor(ctx context.Context, owner, name string) (_ ProcessorView, err error) {
	defer func() { logFailure(ctx, "set_default_processor", owner, name, err) }()
	if owner == "" {
		return ProcessorView{}, ErrMissingOwner
	}
	saved, err := s.mutate(ctx, owner, func(agg aggregate.Aggregate) (aggregate.Aggregate, error) {
		next := agg.Clone()
		if err := next.SetDefault(name); err != nil {
			return aggregate.Aggregate{}, err
		}
		return next, nil
	})
	if err != nil {
		return ProcessorView{}, err
	}
	return s.view(saved, saved.Registered())
}

// DeleteProcessor removes the remote entity first. A remote failure leaves the
// slot in place; a local failure after the remote delete is a partial failure.
func (s *serviceImpl) DeleteProcessor(ctx context.Context, owner, name string) (_ ProcessorView, err error) {
	defer func() { logFailure(ctx, "delete_processor", owner, name, err) }()
	agg, err := s.read(ctx, owner)
	if err != nil {
		return ProcessorView{}, err
	}
	a, err := agg.Adapter(s.reg, name)
	if err != nil {
		return ProcessorView{}, err
	}
	p := a.Provider()
	conf, err := a.Delete(ctx)
	if err != nil {
		return ProcessorView{}, err
	}

	saved, err := s.mutate(ctx, owner, func(cur aggregate.Aggregate) (aggregate.Aggregate, error) {
		next := cur.Clone()
		if next.Has(p) {
			if err := next.Remove(p); err != nil {
				return aggregate.Aggregate{}, err
			}
		}
		return next, nil
	})
	if err != nil {
		return ProcessorView{}, s.partialFailure(ctx, owner, p, "delete_processor", conf.RemoteID, err)
	}

	if s.pruneEmpty && saved.IsEmpty() {
		if err := s.store.Delete(ctx, owner, saved.Revision); err != nil {
			slog.WarnContext(ctx, "prune empty aggregate failed", "module", "processor", "operation", "prune",
				"outcome", "failure", "owner", owner, "err", err)
		}
	}
	return s.view(saved, saved.Registered())
}

func (s *serviceImpl) AddPaymentMethod(ctx context.Context, owner, name, token string) (_ ProcessorView, err error) {
	defer func() { logFailure(ctx, "add_payment_method", owner, name, err) }()
	agg, err := s.read(ctx, owner)
	if err != nil {
		return ProcessorView{}, err
	}
	a, err := agg.Adapter(s.reg, name)
	if err != nil {
		return ProcessorView{}, err
	}
	p := a.Provider()
	rec, err := a.AddPaymentMethod(ctx, token)
	if err != nil {
		return ProcessorView{}, err
	}
	data, err := a.SerializeData(rec)
	if err != nil {
		return ProcessorView{}, s.partialFailure(ctx, owner, p, "add_payment_method", "", err)
	}

	saved, err := s.mutate(ctx, owner, func(cur aggregate.Aggregate) (aggregate.Aggregate, error) {
		return aggregate.Gate(s.reg, cur, p, data, func(next *aggregate.Aggregate) error {
			return next.Replace(p, data)
		})
	})
	if err != nil {
		return ProcessorView{}, s.partialFailure(ctx, owner, p, "add_payment_method", "", err)
	}
	return s.view(saved, saved.Registered())
}

// CancelSubscription cancels remotely and leaves the slot as stored, so a
// repeated cancel is answered by the provider.
func (s *serviceImpl) CancelSubscription(ctx context.Context, owner, name string) (conf adapter.Confirmation, err error) {
	defer func() { logFailure(ctx, "cancel_subscription", owner, name, err) }()
	a, err := s.bound(ctx, owner, name)
	if err != nil {
		return adapter.Confirmation{}, err
	}
	return a.Cancel(ctx)
}

func (s *serviceImpl) GetBillingDate(ctx context.Context, owner, name string) (day int, err error) {
	defer func() { logFailure(ctx, "get_billing_date", owner, name, err) }()
	a, err := s.bound(ctx, owner, name)
	if err != nil {
		return 0, err
	}
	return a.BillingDate()
}

func (s *serviceImpl) GetPaymentMethods(ctx context.Context, owner, name string) (methods []adapter.MethodSummary, err error) {
	defer func() { logFailure(ctx, "get_payment_methods", owner, name, err) }()
	a, err := s.bound(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return a.PaymentMethods()
}

func (s *serviceImpl) GetDefaultPaymentMethod(ctx context.Context, owner, name string) (method *adapter.MethodSummary, err error) {
	defer func() { logFailure(ctx, "get_default_payment_method", owner, name, err) }()
	a, err := s.bound(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return a.DefaultPaymentMethod()
}

// load returns the stored aggregate, or a fresh unsaved one for a new owner.
func (s *serviceImpl) load(ctx context.Context, owner string) (aggregate.Aggregate, error) {
	agg, err := s.store.Get(ctx, owner)
	if errors.Is(err, db.ErrAggregateNotFound) {
		return aggregate.New(owner, s.now()), nil
	}
	return agg, err
}

func (s *serviceImpl) read(ctx context.Context, owner string) (aggregate.Aggregate, error) {
	if owner == "" {
		return aggregate.Aggregate{}, ErrMissingOwner
	}
	return s.load(ctx, owner)
}

func (s *serviceImpl) bound(ctx context.Context, owner, name string) (adapter.Adapter, error) {
	agg, err := s.read(ctx, owner)
	if err != nil {
		return nil, err
	}
	return agg.Adapter(s.reg, name)
}

// mutate runs fn over the freshest stored aggregate while holding the owner
// lock, then saves the result. Remote calls never happen inside fn.
func (s *serviceImpl) mutate(ctx context.Context, owner string, fn func(aggregate.Aggregate) (aggregate.Aggregate, error)) (aggregate.Aggregate, error) {
	release, err := s.locker.Lock(ctx, owner)
	if err != nil {
		return aggregate.Aggregate{}, err
	}
	defer release()

	cur, err := s.load(ctx, owner)
	if err != nil {
		return aggregate.Aggregate{}, err
	}
	next, err := fn(cur)
	if err != nil {
		return aggregate.Aggregate{}, err
	}
	return s.store.Save(ctx, next)
}

// compensateRegister removes a freshly registered remote entity after its local
// commit failed. cause is returned as is when the rollback succeeds.
func (s *serviceImpl) compensateRegister(ctx context.Context, owner string, p adapter.Provider, data adapter.StoredData, cause error) error {
	if data.Empty() {
		return s.partialFailure(ctx, owner, p, "create_processor", "", cause)
	}
	a, err := s.reg.Bind(p, data)
	if err == nil {
		_, err = a.Delete(context.WithoutCancel(ctx))
	}
	if err != nil {
		return s.partialFailure(ctx, owner, p, "create_processor", "", fmt.Errorf("%w (rollback: %v)", cause, err))
	}
	slog.InfoContext(ctx, "remote registration rolled back", "module", "processor", "operation", "create_processor",
		"outcome", "compensated", "owner", owner, "provider", p, "cause", cause)
	return cause
}

func (s *serviceImpl) partialFailure(ctx context.Context, owner string, p adapter.Provider, op, remoteID string, cause error) error {
	rec := reconcile.NewRecord(owner, string(p), op, remoteID, cause)
	if err := s.pub.Publish(context.WithoutCancel(ctx), rec); err != nil {
		slog.ErrorContext(ctx, "reconciliation publish failed", "module", "processor", "operation", op,
			"outcome", "failure", "owner", owner, "reconciliation_id", rec.ID, "err", err)
	}
	if errors.Is(cause, errkind.PartialFailure) {
		return cause
	}
	return fmt.Errorf("%w: %s %s for %s (reconciliation %s): %w", errkind.PartialFailure, op, p, owner, rec.ID, cause)
}

// view builds the boundary representation for the given providers. Derived
// fields a variant does not implement are left empty.
func (s *serviceImpl) view(agg aggregate.Aggregate, providers []adapter.Provider) (ProcessorView, error) {
	v := ProcessorView{
		Owner:            agg.Owner,
		DefaultProcessor: string(agg.Default),
		CreatedAt:        agg.CreatedAt,
		Processors:       make([]ProcessorSummary, 0, len(providers)),
	}
	for _, p := range providers {
		a, err := s.reg.Bind(p, agg.Slots[p])
		if err != nil {
			return ProcessorView{}, err
		}
		sum := ProcessorSummary{Name: string(p), IsDefault: agg.Default == p}
		if day, err := a.BillingDate(); err == nil {
			sum.BillingDate = day
		} else if !errors.Is(err, errkind.NotImplemented) {
			return ProcessorView{}, err
		}
		if m, err := a.DefaultPaymentMethod(); err == nil {
			sum.DefaultPaymentMethod = m
		} else if !errors.Is(err, errkind.NotImplemented) {
			return ProcessorView{}, err
		}
		v.Processors = append(v.Processors, sum)
	}
	return v, nil
}

// logFailure reports operator-relevant failures at Error; caller mistakes stay at Debug.
func logFailure(ctx context.Context, op, owner, name string, err error) {
	if err == nil {
		return
	}
	attrs := []any{"module", "processor", "operation", op, "outcome", "failure", "owner", owner, "processor", name, "err", err}
	if errors.Is(err, errkind.PartialFailure) || errors.Is(err, adapter.ErrRemoteInternal) || errors.Is(err, errkind.Persistence) {
		slog.ErrorContext(ctx, "processor operation failed", attrs...)
		return
	}
	slog.DebugContext(ctx, "processor operation rejected", attrs...)
}
