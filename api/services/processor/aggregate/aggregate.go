// Package aggregate holds the per-owner payment processor record: at most one
// stored slot per provider plus a single default pointer into the populated slots.
package aggregate

import (
	"fmt"
	"time"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
)

// DefaultSelector resolves to whichever provider is the owner's default.
const DefaultSelector = "default"

type Aggregate struct {
	Owner string
	Slots map[adapter.Provider]adapter.StoredData
	// Default is empty when no default processor is set.
	Default   adapter.Provider
	CreatedAt time.Time
	// Revision is bumped by the store on every save; zero means never saved.
	Revision int64
}

func New(owner string, now time.Time) Aggregate {
	return Aggregate{
		Owner:     owner,
		Slots:     make(map[adapter.Provider]adapter.StoredData),
		CreatedAt: now.UTC(),
	}
}

// Clone returns a copy sharing no mutable state with a.
func (a Aggregate) Clone() Aggregate {
	out := a
	out.Slots = make(map[adapter.Provider]adapter.StoredData, len(a.Slots))
	for p, data := range a.Slots {
		out.Slots[p] = data.Clone()
	}
	return out
}

// Has reports whether p's slot is populated.
func (a Aggregate) Has(p adapter.Provider) bool {
	return !a.Slots[p].Empty()
}

// Registered lists the populated providers in the registry's stable order.
func (a Aggregate) Registered() []adapter.Provider {
	var out []adapter.Provider
	for _, p := range adapter.Providers() {
		if a.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

func (a Aggregate) IsEmpty() bool { return len(a.Registered()) == 0 }

// Register fills p's slot. The first registered provider becomes the default
// when none is set.
func (a *Aggregate) Register(p adapter.Provider, data adapter.StoredData) error {
	if a.Has(p) {
		return fmt.Errorf("%w: %s", ErrProviderAlreadyExists, p)
	}
	if data.Empty() {
		return fmt.Errorf("%w: empty data for %s", adapter.ErrCorruptData, p)
	}
	if a.Slots == nil {
		a.Slots = make(map[adapter.Provider]adapter.StoredData)
	}
	a.Slots[p] = data.Clone()
	if a.Default == "" {
		a.Default = p
	}
	return nil
}

// Replace swaps the data of an already populated slot.
func (a *Aggregate) Replace(p adapter.Provider, data adapter.StoredData) error {
	if !a.Has(p) {
		return fmt.Errorf("%w: %s", ErrProcessorNotRegistered, p)
	}
	if data.Empty() {
		return fmt.Errorf("%w: empty data for %s", adapter.ErrCorruptData, p)
	}
	a.Slots[p] = data.Clone()
	return nil
}

// Remove clears p's slot. Removing the default leaves the aggregate without one;
// callers pick a new default explicitly.
func (a *Aggregate) Remove(p adapter.Provider) error {
	if !a.Has(p) {
		return fmt.Errorf("%w: %s", ErrProcessorNotRegistered, p)
	}
	delete(a.Slots, p)
	if a.Default == p {
		a.Default = ""
	}
	return nil
}

// SetDefault points the default at a populated slot. Nothing changes on failure.
func (a *Aggregate) SetDefault(name string) error {
	p, err := adapter.ParseProvider(name)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidProcessorName, name)
	}
	if !a.Has(p) {
		return fmt.Errorf("%w: %s", ErrProcessorNotRegistered, p)
	}
	a.Default = p
	return nil
}

// Resolve maps a processor name, or DefaultSelector, to a populated provider slot.
func (a Aggregate) Resolve(name string) (adapter.Provider, error) {
	if name == DefaultSelector {
		if a.Default == "" {
			return "", ErrNoDefaultProcessor
		}
		if !a.Has(a.Default) {
			return "", fmt.Errorf("%w: %s", ErrBrokenDefault, a.Default)
		}
		return a.Default, nil
	}
	p, err := adapter.ParseProvider(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidProcessorName, name)
	}
	if !a.Has(p) {
		return "", fmt.Errorf("%w: %s is not registered", ErrInvalidProcessorName, p)
	}
	return p, nil
}

// Adapter resolves name and binds a fresh adapter to that slot's data.
func (a Aggregate) Adapter(reg *adapter.Registry, name string) (adapter.Adapter, error) {
	p, err := a.Resolve(name)
	if err != nil {
		return nil, err
	}
	return reg.Bind(p, a.Slots[p])
}

// Check verifies the default pointer invariant on a loaded aggregate.
func (a Aggregate) Check() error {
	if a.Default == "" {
		return nil
	}
	if _, err := adapter.ParseProvider(string(a.Default)); err != nil {
		return fmt.Errorf("%w: %v", ErrBrokenDefault, err)
	}
	if !a.Has(a.Default) {
		return fmt.Errorf("%w: %s", ErrBrokenDefault, a.Default)
	}
	return nil
}
