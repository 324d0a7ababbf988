package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// NotificationSvcFacade exposes the notification log.
type NotificationSvcFacade interface {
	// ListNotifications returns notifications visible to actor, newest first.
	ListNotifications(ctx context.Context, actor domain.Actor) ([]domain.Notification, error)
	MarkNotificationAsRead(ctx context.Context, notificationID string) error
	ClearNotifications(ctx context.Context) error
}
