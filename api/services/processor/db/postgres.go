package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/errkind"
)

const uniqueViolation = "23505"

const selectAggregate = `
SELECT owner, stripe_data, braintree_data, heroku_data, default_processor, created_at, revision
FROM processor_aggregates
WHERE owner = $1`

const insertAggregate = `
INSERT INTO processor_aggregates (owner, stripe_data, braintree_data, heroku_data, default_processor, created_at, revision)
VALUES ($1, $2::jsonb, $3::jsonb, $4::jsonb, $5, $6, 1)`

const updateAggregate = `
UPDATE processor_aggregates
SET stripe_data = $2::jsonb, braintree_data = $3::jsonb, heroku_data = $4::jsonb,
    default_processor = $5, revision = revision + 1
WHERE owner = $1 AND revision = $6`

const deleteAggregate = `DELETE FROM processor_aggregates WHERE owner = $1 AND revision = $2`

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, owner string) (aggregate.Aggregate, error) {
	var (
		stripeRaw, braintreeRaw, herokuRaw []byte
		def                                sql.NullString
		agg                                aggregate.Aggregate
	)
	err := s.db.QueryRowContext(ctx, selectAggregate, owner).
		Scan(&agg.Owner, &stripeRaw, &braintreeRaw, &herokuRaw, &def, &agg.CreatedAt, &agg.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return aggregate.Aggregate{}, ErrAggregateNotFound
	}
	if err != nil {
		return aggregate.Aggregate{}, fmt.Errorf("%w: get aggregate %s: %v", errkind.Persistence, owner, err)
	}

	agg.Slots = make(map[adapter.Provider]adapter.StoredData)
	for p, raw := range map[adapter.Provider][]byte{
		adapter.Stripe:    stripeRaw,
		adapter.Braintree: braintreeRaw,
		adapter.Heroku:    herokuRaw,
	} {
		data, err := decodeSlot(raw)
		if err != nil {
			return aggregate.Aggregate{}, fmt.Errorf("owner %s slot %s: %w", owner, p, err)
		}
		if !data.Empty() {
			agg.Slots[p] = data
		}
	}
	agg.Default = adapter.Provider(def.String)
	agg.CreatedAt = agg.CreatedAt.UTC()
	if err := agg.Check(); err != nil {
		return aggregate.Aggregate{}, fmt.Errorf("owner %s: %w", owner, err)
	}
	return agg, nil
}

func (s *PostgresStore) Save(ctx context.Context, agg aggregate.Aggregate) (aggregate.Aggregate, error) {
	if err := agg.Check(); err != nil {
		return aggregate.Aggregate{}, err
	}
	args, err := slotArgs(agg)
	if err != nil {
		return aggregate.Aggregate{}, err
	}

	if agg.Revision == 0 {
		_, err := s.db.ExecContext(ctx, insertAggregate, append(args, agg.CreatedAt.UTC())...)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return aggregate.Aggregate{}, fmt.Errorf("%w: owner %s already stored", ErrRevisionConflict, agg.Owner)
		}
		if err != nil {
			return aggregate.Aggregate{}, fmt.Errorf("%w: insert aggregate %s: %v", errkind.Persistence, agg.Owner, err)
		}
	} else {
		res, err := s.db.ExecContext(ctx, updateAggregate, append(args, agg.Revision)...)
		if err != nil {
			return aggregate.Aggregate{}, fmt.Errorf("%w: update aggregate %s: %v", errkind.Persistence, agg.Owner, err)
		}
		if err := expectOneRow(res, agg.Owner); err != nil {
			return aggregate.Aggregate{}, err
		}
	}

	out := agg.Clone()
	out.Revision++
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, owner string, revision int64) error {
	res, err := s.db.ExecContext(ctx, deleteAggregate, owner, revision)
	if err != nil {
		return fmt.Errorf("%w: delete aggregate %s: %v", errkind.Persistence, owner, err)
	}
	return expectOneRow(res, owner)
}

func slotArgs(agg aggregate.Aggregate) ([]any, error) {
	args := []any{agg.Owner}
	for _, p := range adapter.Providers() {
		v, err := encodeSlot(agg.Slots[p])
		if err != nil {
			return nil, fmt.Errorf("owner %s slot %s: %w", agg.Owner, p, err)
		}
		args = append(args, v)
	}
	var def sql.NullString
	if agg.Default != "" {
		def = sql.NullString{String: string(agg.Default), Valid: true}
	}
	return append(args, def), nil
}

func expectOneRow(res sql.Result, owner string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for %s: %v", errkind.Persistence, owner, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: owner %s", ErrRevisionConflict, owner)
	}
	return nil
}

type PostgresUsers struct {
	db *sql.DB
}

func NewPostgresUsers(db *sql.DB) *PostgresUsers {
	return &PostgresUsers{db: db}
}

// Email returns the user's stored email, which may be empty.
func (u *PostgresUsers) Email(ctx context.Context, id string) (string, error) {
	var email sql.NullString
	err := u.db.QueryRowContext(ctx, `SELECT email FROM users WHERE id = $1`, id).Scan(&email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("%w: get user %s: %v", errkind.Persistence, id, err)
	}
	return email.String, nil
}
