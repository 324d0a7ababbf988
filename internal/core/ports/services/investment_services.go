package services

import (
	"context"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
)

// InvestmentReaderSvc defines read operations for investments.
type InvestmentReaderSvc interface {
	GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
}

// InvestmentWriterSvc defines the investment commands.
type InvestmentWriterSvc interface {
	CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, investmentID string) error

	// RecordInvestmentExpense appends to the expense history and increments TotalExpenses.
	RecordInvestmentExpense(ctx context.Context, investmentID string, req dto.InvestmentEntryRequest) (*domain.Investment, error)

	// RecordInvestmentProfit appends to the profit history and increments TotalProfits.
	RecordInvestmentProfit(ctx context.Context, investmentID string, req dto.InvestmentEntryRequest) (*domain.Investment, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces.
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
