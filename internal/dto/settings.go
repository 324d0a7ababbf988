package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest replaces the ledger settings.
type UpdateSettingsRequest struct {
	LoanInterestRate decimal.Decimal `json:"loanInterestRate"` // percent
	SharePrice       decimal.Decimal `json:"sharePrice"`
}
