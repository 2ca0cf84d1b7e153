package db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
)

func herokuAggregate(owner string) aggregate.Aggregate {
	agg := aggregate.New(owner, time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))
	_ = agg.Register(adapter.Heroku, adapter.StoredData{json.RawMessage(`{"email":"u@domain.tld","billingDate":17}`)})
	return agg
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "u1")
	require.ErrorIs(t, err, ErrAggregateNotFound)

	saved, err := s.Save(ctx, herokuAggregate("u1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Revision)

	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	require.NoError(t, got.Remove(adapter.Heroku))
	saved, err = s.Save(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Revision)

	require.NoError(t, s.Delete(ctx, "u1", 2))
	_, err = s.Get(ctx, "u1")
	require.ErrorIs(t, err, ErrAggregateNotFound)
}

func TestMemoryStore_RevisionConflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Save(ctx, herokuAggregate("u1"))
	require.NoError(t, err)

	_, err = s.Save(ctx, herokuAggregate("u1"))
	require.ErrorIs(t, err, ErrRevisionConflict)

	stale, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	fresh, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	_, err = s.Save(ctx, fresh)
	require.NoError(t, err)
	_, err = s.Save(ctx, stale)
	require.ErrorIs(t, err, ErrRevisionConflict)

	require.ErrorIs(t, s.Delete(ctx, "u1", 1), ErrRevisionConflict)
}

func TestMemoryStore_IsolatesCallers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	agg := herokuAggregate("u1")
	_, err := s.Save(ctx, agg)
	require.NoError(t, err)

	_ = agg.Remove(adapter.Heroku)
	got, err := s.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, got.Has(adapter.Heroku))
}

func TestMemoryStore_RejectsBrokenDefault(t *testing.T) {
	agg := aggregate.New("u1", time.Now())
	agg.Default = adapter.Stripe
	_, err := NewMemoryStore().Save(context.Background(), agg)
	require.ErrorIs(t, err, aggregate.ErrBrokenDefault)
}

func TestMemoryUsers(t *testing.T) {
	u := NewMemoryUsers(map[string]string{"u1": "user@domain.tld"})
	email, err := u.Email(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "user@domain.tld", email)

	_, err = u.Email(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrUserNotFound)

	u.Put("u2", "")
	email, err = u.Email(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, email)
}
