package dto

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines a new investment. Capital is fixed once created.
type CreateInvestmentRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Description  string          `json:"description"`
	TotalCapital decimal.Decimal `json:"totalCapital"`
	DateCreated  domain.Date     `json:"dateCreated"` // defaults to today
}

// UpdateInvestmentRequest changes descriptive fields only.
// Capital and the expense/profit accumulators are never patched directly.
type UpdateInvestmentRequest struct {
	Name        *string      `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string      `json:"description"`
	DateCreated *domain.Date `json:"dateCreated"`
}

// InvestmentEntryRequest books an expense or a profit against an investment.
type InvestmentEntryRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required,max=200"`
	Date        domain.Date     `json:"date"` // defaults to today
}

// ListInvestmentsResponse wraps the investment list with the aggregate figures.
type ListInvestmentsResponse struct {
	Investments []domain.Investment     `json:"investments"`
	Totals      domain.InvestmentTotals `json:"totals"`
}
