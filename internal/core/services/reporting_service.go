package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/core/reporting"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"go.opentelemetry.io/otel/attribute"
)

// Messages returned in place of AI commentary when it cannot be produced.
const (
	InsightUnavailableMessage = "AI insights unavailable. Configure GEMINI_API_KEY to enable them."
	InsightErrorMessage       = "Error generating AI report. Please check your API key."
	InsightEmptyMessage       = "Unable to generate report."
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	insights portssvc.InsightGenerator
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithInsightGenerator sets the generator used by GenerateInsight.
func WithInsightGenerator(g portssvc.InsightGenerator) ReportingServiceOption {
	return func(s *reportingService) {
		s.insights = g
	}
}

// WithReportingBase applies shared service options to the reporting service.
func WithReportingBase(options ...ServiceOption) ReportingServiceOption {
	return func(s *reportingService) {
		for _, option := range options {
			option(&s.BaseService)
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(store portsrepo.StateStore, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{BaseService: newBaseService(store)}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) ComputeDashboardTotals(ctx context.Context) (*domain.DashboardTotals, error) {
	totals := ledger.ComputeDashboardTotals(s.Store.Snapshot(ctx))
	return &totals, nil
}

func (s *reportingService) ListAvailableQuarters(ctx context.Context) ([]domain.Quarter, error) {
	return reporting.ListAvailableQuarters(s.Now()), nil
}

func (s *reportingService) GenerateQuarterlyReport(ctx context.Context, quarterLabel string) (*domain.QuarterlyReport, error) {
	ctx, span := s.StartSpan(ctx, "ReportingService.GenerateQuarterlyReport")
	defer span.End()
	span.SetAttributes(attribute.String("report.quarter", quarterLabel))

	q, err := reporting.ParseQuarterLabel(quarterLabel)
	if err != nil {
		s.LogDebug(ctx, "Rejected quarter label", slog.String("quarter", quarterLabel))
		return nil, err
	}
	report := reporting.GenerateQuarterlyReport(s.Store.Snapshot(ctx), q)
	s.LogInfo(ctx, "Quarterly report generated",
		slog.String("quarter", q.Label),
		slog.String("total_association", report.TotalAssociation.String()))
	return &report, nil
}

func (s *reportingService) ExportRows(ctx context.Context) ([]domain.ExportRow, error) {
	return ledger.ExportRows(s.Store.Snapshot(ctx)), nil
}

func (s *reportingService) GenerateInsight(ctx context.Context) *dto.InsightResponse {
	ctx, span := s.StartSpan(ctx, "ReportingService.GenerateInsight")
	defer span.End()

	summary := ledger.BuildFinancialSummary(s.Store.Snapshot(ctx))
	resp := &dto.InsightResponse{Summary: summary}

	if s.insights == nil {
		resp.Commentary = InsightUnavailableMessage
		return resp
	}

	text, err := s.insights.Generate(ctx, summary)
	if err != nil {
		span.RecordError(err)
		s.LogError(ctx, err, "Insight generation failed")
		resp.Commentary = InsightErrorMessage
		return resp
	}
	if strings.TrimSpace(text) == "" {
		resp.Commentary = InsightEmptyMessage
		return resp
	}

	resp.Commentary = text
	resp.Available = true
	return resp
}
