package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// ReportingService defines the derived financial views.
type ReportingService interface {
	// ComputeDashboardTotals derives the cooperative-wide headline figures.
	ComputeDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error)

	// ListAvailableQuarters returns the trailing quarters a report can be generated for.
	ListAvailableQuarters(ctx context.Context) ([]domain.Quarter, error)

	// GenerateQuarterlyReport builds the statement for a "Q{n} {year}" label.
	GenerateQuarterlyReport(ctx context.Context, quarterLabel string) (*domain.QuarterlyReport, error)

	// ExportRows flattens contributions and loans for tabular export.
	ExportRows(ctx context.Context) ([]domain.ExportRow, error)

	// GenerateInsight asks the insight generator for commentary. It never fails;
	// an unavailable generator yields an explanatory message instead.
	GenerateInsight(ctx context.Context) *dto.InsightResponse
}
