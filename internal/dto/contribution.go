package dto

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordContributionRequest defines a contribution payment.
// The period end is always derived from PeriodStart and cannot be supplied.
type RecordContributionRequest struct {
	MemberID    string                    `json:"memberId" binding:"required"`
	Amount      *decimal.Decimal          `json:"amount"` // defaults to 8000
	PeriodStart domain.Date               `json:"periodStart"`
	DatePaid    domain.Date               `json:"datePaid"` // defaults to today
	Status      domain.ContributionStatus `json:"status" binding:"omitempty,oneof=paid pending overdue"`
}

// ListContributionsResponse wraps the contribution list.
type ListContributionsResponse struct {
	Contributions []domain.Contribution `json:"contributions"`
}
