// Package db persists processor aggregates and reads user emails.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

var (
	// ErrAggregateNotFound means the owner has never registered a processor.
	ErrAggregateNotFound = errors.New("processor aggregate not found")

	// ErrRevisionConflict means another writer saved the aggregate first.
	ErrRevisionConflict = fmt.Errorf("%w: processor aggregate was modified concurrently", errkind.Persistence)

	// ErrUserNotFound is a validation failure: an unknown owner has no email.
	ErrUserNotFound = fmt.Errorf("%w: user not found", errkind.Validation)
)

// Store loads and saves whole aggregates. Saves are compare-and-swap on Revision:
// a Revision of zero inserts, anything else must match the stored revision.
type Store interface {
	Get(ctx context.Context, owner string) (aggregate.Aggregate, error)
	// Save returns the aggregate as persisted, with its new revision.
	Save(ctx context.Context, agg aggregate.Aggregate) (aggregate.Aggregate, error)
	Delete(ctx context.Context, owner string, revision int64) error
}

// Users is the read side of the user directory.
type Users interface {
	Email(ctx context.Context, id string) (string, error)
}
