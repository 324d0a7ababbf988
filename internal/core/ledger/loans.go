package ledger

import (
	"fmt"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceLoan fills the frozen pricing fields of a new loan from its principal and rate fraction.
func PriceLoan(principal, rate decimal.Decimal) (totalInterest, totalDue decimal.Decimal) {
	totalInterest = principal.Mul(rate)
	return totalInterest, principal.Add(totalInterest)
}

// RemainingAfter returns totalDue - amountPaid clamped at zero.
func RemainingAfter(totalDue, amountPaid decimal.Decimal) decimal.Decimal {
	remaining := totalDue.Sub(amountPaid)
	if remaining.Sign() < 0 {
		return decimal.Zero
	}
	return remaining
}

// StatusFor returns PAID once remaining is within domain.PaidTolerance of zero.
func StatusFor(remaining decimal.Decimal) domain.LoanStatus {
	if remaining.LessThanOrEqual(domain.PaidTolerance) {
		return domain.LoanPaid
	}
	return domain.LoanActive
}

// Payment is a split repayment applied to a loan.
type Payment struct {
	Principal     decimal.Decimal
	Interest      decimal.Decimal
	MonthsSettled int
}

// ApplyPayment returns the loan after receiving p. The input loan is not modified.
// monthsAppended reports whether a monthsPaidHistory entry was written.
func ApplyPayment(loan domain.Loan, p Payment, now time.Time) (updated domain.Loan, monthsAppended bool, err error) {
	total := p.Principal.Add(p.Interest)
	if total.Sign() <= 0 {
		return loan, false, fmt.Errorf("%w: payment total must be positive, got %s", apperrors.ErrArithmetic, total.String())
	}
	if p.MonthsSettled < 0 {
		return loan, false, fmt.Errorf("%w: months settled cannot be negative", apperrors.ErrValidation)
	}

	updated = loan
	updated.MonthsPaidHistory = append(make([]domain.MonthsPaidEntry, 0, len(loan.MonthsPaidHistory)+1), loan.MonthsPaidHistory...)
	updated.AmountPaid = loan.AmountPaid.Add(total)
	updated.InterestPaid = loan.InterestPaid.Add(p.Interest)
	updated.RemainingAmount = RemainingAfter(loan.TotalDue, updated.AmountPaid)
	updated.Status = StatusFor(updated.RemainingAmount)

	if p.MonthsSettled > 0 {
		updated.MonthsPaidHistory = append(updated.MonthsPaidHistory, domain.MonthsPaidEntry{
			Months: p.MonthsSettled,
			Date:   now,
		})
		monthsAppended = true
	}
	return updated, monthsAppended, nil
}

// MonthsElapsed counts whole calendar months from issued to ref.
// A month only counts once its day-of-month has been reached. Never negative.
func MonthsElapsed(issued, ref domain.Date) int {
	months := (ref.Year()-issued.Year())*12 + int(ref.Month()) - int(issued.Month())
	if ref.Day() < issued.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// MonthlyInterestDue is the flat, non-compounding monthly charge of a loan.
func MonthlyInterestDue(loan domain.Loan) decimal.Decimal {
	return loan.Principal.Mul(loan.InterestRate)
}

// Accrual computes the advisory interest position of a loan at ref.
// It is a suggestion for the payer and is never enforced by ApplyPayment.
func Accrual(loan domain.Loan, ref domain.Date) domain.LoanAccrual {
	elapsed := MonthsElapsed(loan.DateIssued, ref)
	paid := loan.MonthsPaid()
	outstanding := elapsed - paid
	if outstanding < 0 {
		outstanding = 0
	}
	monthly := MonthlyInterestDue(loan)
	return domain.LoanAccrual{
		LoanID:             loan.ID,
		MonthsElapsed:      elapsed,
		MonthsPaid:         paid,
		MonthsOutstanding:  outstanding,
		MonthlyInterestDue: monthly,
		SuggestedInterest:  monthly.Mul(decimal.NewFromInt(int64(outstanding))),
	}
}
