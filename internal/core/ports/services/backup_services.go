package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// BackupSvcFacade handles snapshot export/import and explicit backups.
type BackupSvcFacade interface {
	// ExportSnapshot returns the full current state as a document.
	ExportSnapshot(ctx context.Context) (*domain.Snapshot, error)

	// ImportSnapshot replaces the collections present in req and keeps the rest.
	ImportSnapshot(ctx context.Context, req dto.ImportSnapshotRequest) (*domain.Snapshot, error)

	// SaveBackup writes the current state to the snapshot repository right away.
	SaveBackup(ctx context.Context) error

	// LoadBackup reads the persisted copy without touching the in-memory state.
	LoadBackup(ctx context.Context) (*domain.Snapshot, error)
}
