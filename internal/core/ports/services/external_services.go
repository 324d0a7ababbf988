package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// InsightGenerator turns a financial summary into free-text commentary.
// Failures are advisory; callers must degrade gracefully.
type InsightGenerator interface {
	Generate(ctx context.Context, summary domain.FinancialSummary) (string, error)
}

// NotificationPublisher fans committed notifications out to other systems.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, n domain.Notification) error
}
