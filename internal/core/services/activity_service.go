package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

type activityService struct {
	BaseService
}

// NewActivityService creates a new activity service with the provided options
func NewActivityService(store portsrepo.StateStore, options ...ServiceOption) portssvc.ActivitySvcFacade {
	return &activityService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	return s.Store.Snapshot(ctx).Activities, nil
}

func (s *activityService) RecordActivity(ctx context.Context, req dto.RecordActivityRequest) (*domain.Activity, error) {
	ctx, span := s.StartSpan(ctx, "ActivityService.RecordActivity")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	if !req.ActivityType.Valid() {
		return nil, fmt.Errorf("%w: unknown activity type %q", apperrors.ErrValidation, req.ActivityType)
	}
	if err := requireNonNegative("amountSpent", req.AmountSpent); err != nil {
		return nil, err
	}
	if err := requireNonNegative("amountEarned", req.AmountEarned); err != nil {
		return nil, err
	}

	activity := domain.Activity{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		AmountSpent:  req.AmountSpent,
		AmountEarned: req.AmountEarned,
		Date:         s.orToday(req.Date),
		Category:     req.Category,
		ActivityType: req.ActivityType,
		ActorID:      req.ActorID,
		ActorName:    strings.TrimSpace(req.ActorName),
	}

	var note domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		if activity.ActorID != "" {
			m, err := requireMember(snap, activity.ActorID)
			if err != nil {
				return err
			}
			if activity.ActorName == "" {
				activity.ActorName = m.FullName
			}
		}
		snap.Activities = append(snap.Activities, activity)
		note = s.NewNotification("New activity recorded: "+activity.Title, domain.NotificationInfo)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record activity", slog.String("title", activity.Title))
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Activity recorded", slog.String("activity_id", activity.ID))
	return &activity, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, activityID string) error {
	note := s.NewNotification("Activity record deleted", domain.NotificationWarning)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Activities, func(a domain.Activity) bool { return a.ID == activityID })
		if idx < 0 {
			return fmt.Errorf("%w: activity %s", apperrors.ErrNotFound, activityID)
		}
		snap.Activities = slices.Delete(snap.Activities, idx, idx+1)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete activity", slog.String("activity_id", activityID))
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	s.Publish(ctx, note)
	return nil
}
