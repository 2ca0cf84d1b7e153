package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/tbeaudouin05/payment-processors/api/services/processor/aggregate"
)

// MemoryStore keeps aggregates in process with the same revision rules as PostgresStore.
type MemoryStore struct {
	mu   sync.Mutex
	aggs map[string]aggregate.Aggregate
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{aggs: make(map[string]aggregate.Aggregate)}
}

func (s *MemoryStore) Get(_ context.Context, owner string) (aggregate.Aggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg, ok := s.aggs[owner]
	if !ok {
		return aggregate.Aggregate{}, ErrAggregateNotFound
	}
	return agg.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, agg aggregate.Aggregate) (aggregate.Aggregate, error) {
	if err := agg.Check(); err != nil {
		return aggregate.Aggregate{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.aggs[agg.Owner]
	switch {
	case agg.Revision == 0 && ok:
		return aggregate.Aggregate{}, fmt.Errorf("%w: owner %s already stored", ErrRevisionConflict, agg.Owner)
	case agg.Revision != 0 && (!ok || cur.Revision != agg.Revision):
		return aggregate.Aggregate{}, fmt.Errorf("%w: owner %s", ErrRevisionConflict, agg.Owner)
	}
	out := agg.Clone()
	out.Revision++
	s.aggs[agg.Owner] = out.Clone()
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, owner string, revision int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.aggs[owner]
	if !ok || cur.Revision != revision {
		return fmt.Errorf("%w: owner %s", ErrRevisionConflict, owner)
	}
	delete(s.aggs, owner)
	return nil
}

// MemoryUsers is a fixed user directory for local runs and tests.
type MemoryUsers struct {
	mu     sync.RWMutex
	emails map[string]string
}

func NewMemoryUsers(emails map[string]string) *MemoryUsers {
	m := &MemoryUsers{emails: make(map[string]string, len(emails))}
	for id, email := range emails {
		m.emails[id] = email
	}
	return m
}

func (m *MemoryUsers) Put(id, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails[id] = email
}

func (m *MemoryUsers) Email(_ context.Context, id string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	email, ok := m.emails[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return email, nil
}
