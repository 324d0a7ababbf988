package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// SettingsSvcFacade reads and replaces ledger settings.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings affects loans issued afterwards only.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
