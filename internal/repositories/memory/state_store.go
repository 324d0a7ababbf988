// Package memory holds the in-memory State Store that owns the ledger state.
package memory

import (
	"context"
	"sync"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StateStore keeps the current snapshot behind a RWMutex.
// Writers are serialized; readers always receive deep copies.
type StateStore struct {
	mu        sync.RWMutex
	state     domain.Snapshot
	version   uint64
	listeners []func()
	lmu       sync.Mutex
	tracer    trace.Tracer
}

var _ portsrepo.StateStore = (*StateStore)(nil)

// NewStateStore creates a store holding initial.
func NewStateStore(initial domain.Snapshot) *StateStore {
	initial.Normalize()
	return &StateStore{
		state:  initial.Clone(),
		tracer: otel.Tracer("github.com/sangwaemm/The-Partners-App/internal/repositories/memory"),
	}
}

// Snapshot returns a deep copy of the current state.
func (s *StateStore) Snapshot(ctx context.Context) domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Version increases by one with every committed change.
func (s *StateStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Update applies fn to a working copy and commits it if fn succeeds.
func (s *StateStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	_, span := s.tracer.Start(ctx, "StateStore.Update")
	defer span.End()

	version, err := s.commit(fn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update rejected")
		return err
	}

	span.SetAttributes(attribute.Int64("state.version", int64(version)))
	s.notify()
	return nil
}

// commit runs fn under the write lock. The lock is released even if fn panics.
func (s *StateStore) commit(fn func(*domain.Snapshot) error) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	working := s.state.Clone()
	if err := fn(&working); err != nil {
		return 0, err
	}
	working.Normalize()
	s.state = working
	s.version++
	return s.version, nil
}

// Replace swaps in a whole new state.
func (s *StateStore) Replace(ctx context.Context, snapshot domain.Snapshot) {
	snapshot.Normalize()
	s.mu.Lock()
	s.state = snapshot.Clone()
	s.version++
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers fn to run after each committed change. fn must not block.
func (s *StateStore) Subscribe(fn func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *StateStore) notify() {
	s.lmu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.lmu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
