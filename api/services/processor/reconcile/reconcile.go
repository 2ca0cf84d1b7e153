// Package reconcile reports remote or local state that could not be brought
// back in line after a partially failed operation.
package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Record struct {
	ID         string    `json:"id"`
	Owner      string    `json:"owner"`
	Provider   string    `json:"provider"`
	Operation  string    `json:"operation"`
	RemoteID   string    `json:"remoteId,omitempty"`
	Cause      string    `json:"cause"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewRecord stamps a record with a fresh id and the current time.
func NewRecord(owner, provider, operation, remoteID string, cause error) Record {
	r := Record{
		ID:         uuid.NewString(),
		Owner:      owner,
		Provider:   provider,
		Operation:  operation,
		RemoteID:   remoteID,
		OccurredAt: time.Now().UTC(),
	}
	if cause != nil {
		r.Cause = cause.Error()
	}
	return r
}

type Publisher interface {
	Publish(ctx context.Context, rec Record) error
}

// LogPublisher writes records to the process log when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, rec Record) error {
	p.logger.ErrorContext(ctx, "reconciliation required",
		"module", "reconcile",
		"operation", rec.Operation,
		"outcome", "pending",
		"reconciliation_id", rec.ID,
		"owner", rec.Owner,
		"provider", rec.Provider,
		"remote_id", rec.RemoteID,
		"cause", rec.Cause,
	)
	return nil
}
