package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// LoanReaderSvc defines read operations for loans. MEMBER actors only see their own loans.
type LoanReaderSvc interface {
	GetLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error)

	// LoanAccrual returns the advisory interest position of a loan at ref.
	LoanAccrual(ctx context.Context, actor domain.Actor, loanID string, ref domain.Date) (*domain.LoanAccrual, error)
}

// LoanWriterSvc defines the loan commands.
type LoanWriterSvc interface {
	// IssueLoan prices a new loan with the current settings and freezes its pricing.
	IssueLoan(ctx context.Context, req dto.IssueLoanRequest) (*domain.Loan, error)

	// RecordLoanPayment applies a split repayment to a loan.
	RecordLoanPayment(ctx context.Context, loanID string, req dto.RecordLoanPaymentRequest) (*domain.Loan, error)

	DeleteLoan(ctx context.Context, loanID string) error
}

// LoanSvcFacade combines all loan-related service interfaces.
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
}
