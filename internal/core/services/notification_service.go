package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
)

type notificationService struct {
	BaseService
}

// NewNotificationService creates a new notification service with the provided options
func NewNotificationService(store portsrepo.StateStore, options ...ServiceOption) portssvc.NotificationSvcFacade {
	return &notificationService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListNotifications(ctx context.Context, actor domain.Actor) ([]domain.Notification, error) {
	all := s.Store.Snapshot(ctx).Notifications
	visible := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(actor.Role) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

func (s *notificationService) MarkNotificationAsRead(ctx context.Context, notificationID string) error {
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Notifications, func(n domain.Notification) bool { return n.ID == notificationID })
		if idx < 0 {
			return fmt.Errorf("%w: notification %s", apperrors.ErrNotFound, notificationID)
		}
		snap.Notifications[idx].Read = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (s *notificationService) ClearNotifications(ctx context.Context) error {
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Notifications = []domain.Notification{}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to clear notifications")
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	s.LogInfo(ctx, "Notifications cleared")
	return nil
}
