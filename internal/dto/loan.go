package dto

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IssueLoanRequest defines a new loan. Pricing is derived from the current settings.
type IssueLoanRequest struct {
	BorrowerType  domain.BorrowerType `json:"borrowerType" binding:"required,oneof=MEMBER EXTERNAL"`
	MemberID      string              `json:"memberId" binding:"required_if=BorrowerType MEMBER"`
	BorrowerName  string              `json:"borrowerName" binding:"required_if=BorrowerType EXTERNAL,max=120"`
	BorrowerPhone string              `json:"borrowerPhone" binding:"omitempty,max=32"`
	Principal     decimal.Decimal     `json:"principal"`
	DateIssued    domain.Date         `json:"dateIssued"` // defaults to today
	DueDate       domain.Date         `json:"dueDate"`
}

// RecordLoanPaymentRequest splits a repayment into principal and interest.
type RecordLoanPaymentRequest struct {
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	MonthsSettled    *int            `json:"monthsSettled" binding:"omitempty,min=0"`
}

// ListLoansResponse wraps the loan list.
type ListLoansResponse struct {
	Loans []domain.Loan `json:"loans"`
}
