package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

type settingsService struct {
	BaseService
}

// NewSettingsService creates a new settings service with the provided options
func NewSettingsService(store portsrepo.StateStore, options ...ServiceOption) portssvc.SettingsSvcFacade {
	return &settingsService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings := s.Store.Snapshot(ctx).Settings
	return &settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := requireNonNegative("loanInterestRate", req.LoanInterestRate); err != nil {
		return nil, err
	}
	if err := requirePositive("sharePrice", req.SharePrice); err != nil {
		return nil, err
	}
	settings := domain.Settings{LoanInterestRate: req.LoanInterestRate, SharePrice: req.SharePrice}

	note := s.NewNotification("System settings updated", domain.NotificationInfo)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Settings = settings
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Settings updated",
		slog.String("loan_interest_rate", settings.LoanInterestRate.String()),
		slog.String("share_price", settings.SharePrice.String()))
	return &settings, nil
}
