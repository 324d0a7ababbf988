package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/shopspring/decimal"
)

// investmentService implements the InvestmentSvcFacade interface
type investmentService struct {
	BaseService
}

// NewInvestmentService creates a new investment service with the provided options
func NewInvestmentService(store portsrepo.StateStore, options ...ServiceOption) portssvc.InvestmentSvcFacade {
	return &investmentService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	snap := s.Store.Snapshot(ctx)
	idx := slices.IndexFunc(snap.Investments, func(i domain.Investment) bool { return i.ID == investmentID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
	}
	inv := snap.Investments[idx]
	return &inv, nil
}

func (s *investmentService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	return s.Store.Snapshot(ctx).Investments, nil
}

func (s *investmentService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	ctx, span := s.StartSpan(ctx, "InvestmentService.CreateInvestment")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	if err := requirePositive("totalCapital", req.TotalCapital); err != nil {
		return nil, err
	}
	created := s.orToday(req.DateCreated)
	inv := domain.Investment{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		TotalCapital:   req.TotalCapital,
		TotalExpenses:  decimal.Zero,
		TotalProfits:   decimal.Zero,
		DateCreated:    created,
		LastUpdated:    s.Today(),
		ExpenseHistory: []domain.InvestmentEntry{},
		ProfitHistory:  []domain.InvestmentEntry{},
	}

	note := s.NewNotification("New investment created: "+inv.Name, domain.NotificationSuccess)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		snap.Investments = append(snap.Investments, inv)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create investment", slog.String("name", inv.Name))
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Investment created", slog.String("investment_id", inv.ID))
	return &inv, nil
}

func (s *investmentService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, investmentID, "Failed to update investment", func(inv *domain.Investment) (string, error) {
		if req.Name != nil {
			inv.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			inv.Description = *req.Description
		}
		if req.DateCreated != nil && !req.DateCreated.IsZero() {
			inv.DateCreated = *req.DateCreated
		}
		if inv.Name == "" {
			return "", fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		return "Investment updated: " + inv.Name, nil
	})
}

func (s *investmentService) DeleteInvestment(ctx context.Context, investmentID string) error {
	note := s.NewNotification("Investment record deleted", domain.NotificationWarning)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Investments, func(i domain.Investment) bool { return i.ID == investmentID })
		if idx < 0 {
			return fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
		}
		snap.Investments = slices.Delete(snap.Investments, idx, idx+1)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete investment", slog.String("investment_id", investmentID))
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	s.Publish(ctx, note)
	return nil
}

func (s *investmentService) RecordInvestmentExpense(ctx context.Context, investmentID string, req dto.InvestmentEntryRequest) (*domain.Investment, error) {
	entry, err := s.entryFrom(req)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, investmentID, "Failed to record investment expense", func(inv *domain.Investment) (string, error) {
		inv.ExpenseHistory = append(inv.ExpenseHistory, entry)
		inv.TotalExpenses = inv.TotalExpenses.Add(entry.Amount)
		return "Expense recorded for investment: " + inv.Name, nil
	})
}

func (s *investmentService) RecordInvestmentProfit(ctx context.Context, investmentID string, req dto.InvestmentEntryRequest) (*domain.Investment, error) {
	entry, err := s.entryFrom(req)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, investmentID, "Failed to record investment profit", func(inv *domain.Investment) (string, error) {
		inv.ProfitHistory = append(inv.ProfitHistory, entry)
		inv.TotalProfits = inv.TotalProfits.Add(entry.Amount)
		return "Profit recorded for investment: " + inv.Name, nil
	})
}

func (s *investmentService) entryFrom(req dto.InvestmentEntryRequest) (domain.InvestmentEntry, error) {
	if err := s.ValidateRequest(req); err != nil {
		return domain.InvestmentEntry{}, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return domain.InvestmentEntry{}, err
	}
	return domain.InvestmentEntry{
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Date:        s.orToday(req.Date),
	}, nil
}

// mutate applies change to one investment inside a single store update.
// change returns the notification message to emit.
func (s *investmentService) mutate(ctx context.Context, investmentID, failMsg string, change func(inv *domain.Investment) (string, error)) (*domain.Investment, error) {
	ctx, span := s.StartSpan(ctx, "InvestmentService.mutate")
	defer span.End()

	var updated domain.Investment
	var note domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Investments, func(i domain.Investment) bool { return i.ID == investmentID })
		if idx < 0 {
			return fmt.Errorf("%w: investment %s", apperrors.ErrNotFound, investmentID)
		}
		inv := snap.Investments[idx]
		msg, err := change(&inv)
		if err != nil {
			return err
		}
		inv.LastUpdated = s.Today()
		snap.Investments[idx] = inv
		updated = inv
		note = s.NewNotification(msg, domain.NotificationInfo)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, failMsg, slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("%s: %w", strings.ToLower(failMsg), err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, note.Message, slog.String("investment_id", investmentID))
	return &updated, nil
}
