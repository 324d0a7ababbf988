package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// ContributionReaderSvc defines read operations for contributions.
type ContributionReaderSvc interface {
	// ListContributions returns contributions visible to actor; MEMBER actors see only their own.
	ListContributions(ctx context.Context, actor domain.Actor) ([]domain.Contribution, error)
}

// ContributionWriterSvc defines the contribution commands.
type ContributionWriterSvc interface {
	RecordContribution(ctx context.Context, req dto.RecordContributionRequest) (*domain.Contribution, error)
	DeleteContribution(ctx context.Context, contributionID string) error
}

// ContributionSvcFacade combines all contribution-related service interfaces.
type ContributionSvcFacade interface {
	ContributionReaderSvc
	ContributionWriterSvc
}
