package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

type backupService struct {
	BaseService
	snapshots portsrepo.SnapshotRepositoryFacade
}

// NewBackupService creates a new backup service. snapshots may be nil when
// no durable store is configured; explicit backup calls then fail with ErrPersistence.
func NewBackupService(store portsrepo.StateStore, snapshots portsrepo.SnapshotRepositoryFacade, options ...ServiceOption) portssvc.BackupSvcFacade {
	return &backupService{BaseService: newBaseService(store, options...), snapshots: snapshots}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

func (s *backupService) ExportSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := s.Store.Snapshot(ctx)
	return &snap, nil
}

func (s *backupService) ImportSnapshot(ctx context.Context, req dto.ImportSnapshotRequest) (*domain.Snapshot, error) {
	ctx, span := s.StartSpan(ctx, "BackupService.ImportSnapshot")
	defer span.End()

	if req.Settings != nil && req.Settings.SharePrice.Sign() < 0 {
		return nil, fmt.Errorf("%w: share price cannot be negative", apperrors.ErrValidation)
	}

	note := s.NewNotification("Database restored from backup file", domain.NotificationSuccess)
	var restored domain.Snapshot
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		if req.Members != nil {
			snap.Members = *req.Members
		}
		if req.Contributions != nil {
			snap.Contributions = *req.Contributions
		}
		if req.Loans != nil {
			snap.Loans = *req.Loans
		}
		if req.Investments != nil {
			snap.Investments = *req.Investments
		}
		if req.Activities != nil {
			snap.Activities = *req.Activities
		}
		if req.Settings != nil {
			snap.Settings = *req.Settings
		}
		if req.Notifications != nil {
			snap.Notifications = *req.Notifications
		}
		// Detach from the caller's slices before they land in the store.
		*snap = snap.Clone()
		snap.Normalize()
		if err := validateSnapshot(snap); err != nil {
			return err
		}
		PrependNotification(snap, note)
		restored = snap.Clone()
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to import snapshot")
		return nil, fmt.Errorf("failed to import snapshot: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Snapshot imported",
		slog.Int("members", len(restored.Members)),
		slog.Int("loans", len(restored.Loans)),
		slog.Int("contributions", len(restored.Contributions)))
	return &restored, nil
}

func (s *backupService) SaveBackup(ctx context.Context) error {
	if s.snapshots == nil {
		return fmt.Errorf("%w: no snapshot store configured", apperrors.ErrPersistence)
	}
	if err := s.snapshots.Save(ctx, s.Store.Snapshot(ctx)); err != nil {
		s.LogError(ctx, err, "Failed to save backup")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	s.LogInfo(ctx, "Backup saved")
	return nil
}

func (s *backupService) LoadBackup(ctx context.Context) (*domain.Snapshot, error) {
	if s.snapshots == nil {
		return nil, fmt.Errorf("%w: no snapshot store configured", apperrors.ErrPersistence)
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load backup")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return &snap, nil
}
