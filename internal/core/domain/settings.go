package domain

import "github.com/shopspring/decimal"

// Settings is process-wide configuration of the ledger.
type Settings struct {
	LoanInterestRate decimal.Decimal `json:"loanInterestRate"` // percent, applied to new loans only
	SharePrice       decimal.Decimal `json:"sharePrice"`
}

// DefaultSettings returns the settings a fresh cooperative starts with.
func DefaultSettings() Settings {
	return Settings{
		LoanInterestRate: decimal.NewFromInt(10),
		SharePrice:       decimal.NewFromInt(100000),
	}
}

// LoanRateFraction converts the percentage rate to the fraction stored on loans.
func (s Settings) LoanRateFraction() decimal.Decimal {
	return s.LoanInterestRate.Div(decimal.NewFromInt(100))
}

// IsZero reports whether no setting has been provided at all.
func (s Settings) IsZero() bool {
	return s.LoanInterestRate.IsZero() && s.SharePrice.IsZero()
}
