package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// contributionService implements the ContributionSvcFacade interface
type contributionService struct {
	BaseService
}

// NewContributionService creates a new contribution service with the provided options
func NewContributionService(store portsrepo.StateStore, options ...ServiceOption) portssvc.ContributionSvcFacade {
	return &contributionService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.ContributionSvcFacade = (*contributionService)(nil)

func (s *contributionService) ListContributions(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error) {
	snap := s.Store.Snapshot(ctx)
	if actor.Role.IsManager() {
		return snap.Contributions, nil
	}
	own := make([]domain.Contribution, 0)
	for _, c := range snap.Contributions {
		if c.MemberID == actor.MemberID {
			own = append(own, c)
		}
	}
	return own, nil
}

func (s *contributionService) RecordContribution(ctx context.Context, req dto.RecordContributionRequest) (*domain.Contribution, error) {
	ctx, span := s.StartSpan(ctx, "ContributionService.RecordContribution")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	contribution := domain.Contribution{
		ID:       uuid.NewString(),
		MemberID: req.MemberID,
		Amount:   domain.DefaultContributionAmount,
		DatePaid: s.orToday(req.DatePaid),
		Status:   req.Status,
	}
	if req.Amount != nil {
		contribution.Amount = *req.Amount
	}
	if err := requirePositive("amount", contribution.Amount); err != nil {
		return nil, err
	}
	if contribution.Status == "" {
		contribution.Status = domain.ContributionPaid
	}
	if !contribution.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown contribution status %q", apperrors.ErrValidation, contribution.Status)
	}
	contribution.PeriodStart = req.PeriodStart
	if contribution.PeriodStart.IsZero() {
		contribution.PeriodStart = contribution.DatePaid
	}
	contribution.PeriodEnd = domain.ContributionPeriodEnd(contribution.PeriodStart)

	var note domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		m, err := requireMember(snap, contribution.MemberID)
		if err != nil {
			return err
		}
		snap.Contributions = append(snap.Contributions, contribution)
		note = s.NewNotification("Contribution recorded for: "+m.FullName, domain.NotificationSuccess)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record contribution", slog.String("member_id", req.MemberID))
		return nil, fmt.Errorf("failed to record contribution: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Contribution recorded",
		slog.String("contribution_id", contribution.ID),
		slog.String("member_id", contribution.MemberID),
		slog.String("amount", contribution.Amount.String()))
	return &contribution, nil
}

func (s *contributionService) DeleteContribution(ctx context.Context, contributionID string) error {
	ctx, span := s.StartSpan(ctx, "ContributionService.DeleteContribution")
	defer span.End()

	note := s.NewNotification("Contribution record deleted", domain.NotificationWarning)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Contributions, func(c domain.Contribution) bool { return c.ID == contributionID })
		if idx < 0 {
			return fmt.Errorf("%w: contribution %s", apperrors.ErrNotFound, contributionID)
		}
		snap.Contributions = slices.Delete(snap.Contributions, idx, idx+1)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete contribution", slog.String("contribution_id", contributionID))
		return fmt.Errorf("failed to delete contribution: %w", err)
	}
	s.Publish(ctx, note)
	return nil
}
