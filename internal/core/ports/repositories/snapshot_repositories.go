package repositories

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// SnapshotReader loads the last persisted snapshot.
type SnapshotReader interface {
	// Load returns the stored snapshot, or an empty snapshot when nothing has been saved yet.
	Load(ctx context.Context) (domain.Snapshot, error)
}

// SnapshotWriter persists a snapshot, replacing the previous one.
type SnapshotWriter interface {
	Save(ctx context.Context, s domain.Snapshot) error
}

// SnapshotRepositoryFacade combines loading and saving snapshots.
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotWriter
}
