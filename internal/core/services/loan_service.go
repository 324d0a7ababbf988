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
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	portsrepo "github.com/sangwaemm/The-Partners-App/internal/core/ports/repositories"
	portssvc "github.com/sangwaemm/The-Partners-App/internal/core/ports/services"
	"github.com/sangwaemm/The-Partners-App/internal/dto"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// loanService implements the LoanSvcFacade interface
type loanService struct {
	BaseService
}

// NewLoanService creates a new loan service with the provided options
func NewLoanService(store portsrepo.StateStore, options ...ServiceOption) portssvc.LoanSvcFacade {
	return &loanService{BaseService: newBaseService(store, options...)}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) GetLoan(ctx context.Context, actor domain.Actor, loanID string) (*domain.Loan, error) {
	snap := s.Store.Snapshot(ctx)
	idx := slices.IndexFunc(snap.Loans, func(l domain.Loan) bool { return l.ID == loanID })
	// Loans of other members are reported as missing rather than forbidden.
	if idx < 0 || !canSeeLoan(actor, snap.Loans[idx]) {
		return nil, fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
	}
	loan := snap.Loans[idx]
	return &loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, actor domain.Actor) ([]domain.Loan, error) {
	snap := s.Store.Snapshot(ctx)
	if actor.Role.IsManager() {
		return snap.Loans, nil
	}
	visible := make([]domain.Loan, 0)
	for _, l := range snap.Loans {
		if canSeeLoan(actor, l) {
			visible = append(visible, l)
		}
	}
	return visible, nil
}

func (s *loanService) LoanAccrual(ctx context.Context, actor domain.Actor, loanID string, ref domain.Date) (*domain.LoanAccrual, error) {
	loan, err := s.GetLoan(ctx, actor, loanID)
	if err != nil {
		return nil, err
	}
	accrual := ledger.Accrual(*loan, s.orToday(ref))
	return &accrual, nil
}

func (s *loanService) IssueLoan(ctx context.Context, req dto.IssueLoanRequest) (*domain.Loan, error) {
	ctx, span := s.StartSpan(ctx, "LoanService.IssueLoan")
	defer span.End()

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	if !req.BorrowerType.Valid() {
		return nil, fmt.Errorf("%w: unknown borrower type %q", apperrors.ErrValidation, req.BorrowerType)
	}
	if err := requirePositive("principal", req.Principal); err != nil {
		return nil, err
	}
	issued := s.orToday(req.DateIssued)
	if req.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", apperrors.ErrValidation)
	}
	if req.DueDate.Before(issued) {
		return nil, fmt.Errorf("%w: due date %s is before issue date %s", apperrors.ErrValidation, req.DueDate, issued)
	}

	var loan domain.Loan
	var note domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		loan = domain.Loan{
			ID:                uuid.NewString(),
			BorrowerType:      req.BorrowerType,
			BorrowerPhone:     strings.TrimSpace(req.BorrowerPhone),
			Principal:         req.Principal,
			InterestRate:      snap.Settings.LoanRateFraction(),
			AmountPaid:        decimal.Zero,
			InterestPaid:      decimal.Zero,
			DateIssued:        issued,
			DueDate:           req.DueDate,
			Status:            domain.LoanActive,
			MonthsPaidHistory: []domain.MonthsPaidEntry{},
		}
		if req.BorrowerType == domain.BorrowerMember {
			m, err := requireMember(snap, req.MemberID)
			if err != nil {
				return err
			}
			loan.MemberID = m.ID
			loan.BorrowerName = m.FullName
			if loan.BorrowerPhone == "" {
				loan.BorrowerPhone = m.Phone
			}
		} else {
			loan.BorrowerName = strings.TrimSpace(req.BorrowerName)
		}
		loan.TotalInterest, loan.TotalDue = ledger.PriceLoan(loan.Principal, loan.InterestRate)
		loan.RemainingAmount = loan.TotalDue

		snap.Loans = append(snap.Loans, loan)
		note = s.NewNotification("New loan issued to: "+loan.BorrowerName, domain.NotificationSuccess)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to issue loan", slog.String("borrower_type", string(req.BorrowerType)))
		return nil, fmt.Errorf("failed to issue loan: %w", err)
	}
	span.SetAttributes(attribute.String("loan.id", loan.ID))
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Loan issued", slog.String("loan_id", loan.ID), slog.String("total_due", loan.TotalDue.String()))
	return &loan, nil
}

func (s *loanService) RecordLoanPayment(ctx context.Context, loanID string, req dto.RecordLoanPaymentRequest) (*domain.Loan, error) {
	ctx, span := s.StartSpan(ctx, "LoanService.RecordLoanPayment")
	defer span.End()
	span.SetAttributes(attribute.String("loan.id", loanID))

	if err := s.ValidateRequest(req); err != nil {
		return nil, err
	}
	payment := ledger.Payment{Principal: req.PrincipalPortion, Interest: req.InterestPortion}
	if req.MonthsSettled != nil {
		payment.MonthsSettled = *req.MonthsSettled
	}

	var updated domain.Loan
	var notes []domain.Notification
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Loans, func(l domain.Loan) bool { return l.ID == loanID })
		if idx < 0 {
			return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
		}
		next, monthsAppended, err := ledger.ApplyPayment(snap.Loans[idx], payment, s.Now().UTC())
		if err != nil {
			return err
		}
		snap.Loans[idx] = next
		updated = next
		if monthsAppended {
			note := s.NewNotification(
				fmt.Sprintf("Payment recorded for loan %s: %d month(s) interest paid", loanID, payment.MonthsSettled),
				domain.NotificationInfo)
			PrependNotification(snap, note)
			notes = append(notes, note)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record loan payment", slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to record loan payment: %w", err)
	}
	s.Publish(ctx, notes...)
	s.LogInfo(ctx, "Loan payment recorded",
		slog.String("loan_id", loanID),
		slog.String("remaining", updated.RemainingAmount.String()),
		slog.String("status", string(updated.Status)))
	return &updated, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, loanID string) error {
	ctx, span := s.StartSpan(ctx, "LoanService.DeleteLoan")
	defer span.End()

	note := s.NewNotification("Loan record deleted", domain.NotificationWarning)
	err := s.Store.Update(ctx, func(snap *domain.Snapshot) error {
		idx := slices.IndexFunc(snap.Loans, func(l domain.Loan) bool { return l.ID == loanID })
		if idx < 0 {
			return fmt.Errorf("%w: loan %s", apperrors.ErrNotFound, loanID)
		}
		snap.Loans = slices.Delete(snap.Loans, idx, idx+1)
		PrependNotification(snap, note)
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete loan", slog.String("loan_id", loanID))
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	s.Publish(ctx, note)
	s.LogInfo(ctx, "Loan deleted", slog.String("loan_id", loanID))
	return nil
}

func canSeeLoan(actor domain.Actor, l domain.Loan) bool {
	if actor.Role.IsManager() {
		return true
	}
	return l.BorrowerType == domain.BorrowerMember && l.MemberID == actor.MemberID
}
