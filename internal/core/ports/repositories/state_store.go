package repositories

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// StateReader gives read access to the current ledger state.
type StateReader interface {
	// Snapshot returns a deep copy of the current state. Callers may keep or modify it freely.
	Snapshot(ctx context.Context) domain.Snapshot
}

// StateWriter applies mutations to the ledger state.
type StateWriter interface {
	// Update runs fn against a working copy of the state and commits it only when fn returns nil.
	// Writers are serialized; a failed fn leaves the state untouched.
	Update(ctx context.Context, fn func(s *domain.Snapshot) error) error

	// Replace swaps the whole state, e.g. after loading or importing a snapshot.
	Replace(ctx context.Context, s domain.Snapshot)
}

// StateStore is the single owner of the in-memory ledger state.
type StateStore interface {
	StateReader
	StateWriter

	// Subscribe registers fn to be called after every committed change.
	Subscribe(fn func())
}
