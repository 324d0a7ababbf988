package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// ActivitySvcFacade defines operations on ad-hoc activities.
type ActivitySvcFacade interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	RecordActivity(ctx context.Context, req dto.RecordActivityRequest) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, activityID string) error
}
