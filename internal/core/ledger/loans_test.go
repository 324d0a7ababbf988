package ledger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newLoan(principal int64, rate string) domain.Loan {
	p := dec(principal)
	r := decimal.RequireFromString(rate)
	interest, due := ledger.PriceLoan(p, r)
	return domain.Loan{
		ID:                "loan-1",
		BorrowerType:      domain.BorrowerExternal,
		BorrowerName:      "Kigali Traders",
		Principal:         p,
		InterestRate:      r,
		TotalInterest:     interest,
		TotalDue:          due,
		AmountPaid:        decimal.Zero,
		InterestPaid:      decimal.Zero,
		RemainingAmount:   due,
		Status:            domain.LoanActive,
		DateIssued:        domain.NewDate(2024, time.January, 15),
		MonthsPaidHistory: []domain.MonthsPaidEntry{},
	}
}

func TestApplyPayment_TwoInstalmentsSettleLoan(t *testing.T) {
	loan := newLoan(100000, "0.10")
	assert.Equal(t, "10000", loan.TotalInterest.String())
	assert.Equal(t, "110000", loan.TotalDue.String())

	now := time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)
	first, appended, err := ledger.ApplyPayment(loan, ledger.Payment{Principal: dec(50000), Interest: dec(5000)}, now)
	require.NoError(t, err)
	assert.False(t, appended)
	assert.Equal(t, "55000", first.AmountPaid.String())
	assert.Equal(t, "5000", first.InterestPaid.String())
	assert.Equal(t, "55000", first.RemainingAmount.String())
	assert.Equal(t, domain.LoanActive, first.Status)

	second, _, err := ledger.ApplyPayment(first, ledger.Payment{Principal: dec(50000), Interest: dec(5000)}, now)
	require.NoError(t, err)
	assert.Equal(t, "110000", second.AmountPaid.String())
	assert.True(t, second.RemainingAmount.IsZero())
	assert.Equal(t, domain.LoanPaid, second.Status)

	// input loans are untouched
	assert.True(t, loan.AmountPaid.IsZero())
	assert.Equal(t, "55000", first.AmountPaid.String())
}

func TestApplyPayment_RejectsNonPositiveTotal(t *testing.T) {
	loan := newLoan(100000, "0.10")

	for _, p := range []ledger.Payment{
		{Principal: dec(0), Interest: dec(0)},
		{Principal: dec(-10), Interest: dec(5)},
	} {
		_, _, err := ledger.ApplyPayment(loan, p, time.Now())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrArithmetic))
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	}
}

func TestApplyPayment_NegativePortionAllowedWhenTotalPositive(t *testing.T) {
	loan := newLoan(100000, "0.10")

	updated, _, err := ledger.ApplyPayment(loan, ledger.Payment{Principal: dec(1000), Interest: dec(-200)}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "800", updated.AmountPaid.String())
	assert.Equal(t, "-200", updated.InterestPaid.String())
}

func TestApplyPayment_RecordsMonthsSettled(t *testing.T) {
	loan := newLoan(200000, "0.05")
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	updated, appended, err := ledger.ApplyPayment(loan, ledger.Payment{Interest: dec(20000), MonthsSettled: 2}, now)

	require.NoError(t, err)
	assert.True(t, appended)
	require.Len(t, updated.MonthsPaidHistory, 1)
	assert.Equal(t, 2, updated.MonthsPaidHistory[0].Months)
	assert.Equal(t, now, updated.MonthsPaidHistory[0].Date)
	assert.Empty(t, loan.MonthsPaidHistory)
}

func TestApplyPayment_WithinToleranceIsPaid(t *testing.T) {
	loan := newLoan(100000, "0.10")

	updated, _, err := ledger.ApplyPayment(loan, ledger.Payment{Principal: decimal.RequireFromString("109999.6")}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "0.4", updated.RemainingAmount.String())
	assert.Equal(t, domain.LoanPaid, updated.Status)
}

func TestApplyPayment_OverpaymentClampsRemaining(t *testing.T) {
	loan := newLoan(100000, "0.10")

	updated, _, err := ledger.ApplyPayment(loan, ledger.Payment{Principal: dec(120000)}, time.Now())

	require.NoError(t, err)
	assert.True(t, updated.RemainingAmount.IsZero())
	assert.Equal(t, domain.LoanPaid, updated.Status)
}

func TestApplyPayment_PayoffAndConservation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		principal := rapid.Int64Range(1_000, 5_000_000).Draw(t, "principal")
		ratePct := rapid.Int64Range(0, 30).Draw(t, "ratePct")
		loan := newLoan(principal, decimal.NewFromInt(ratePct).Div(decimal.NewFromInt(100)).String())
		tolerance := domain.PaidTolerance

		for i := 0; loan.AmountPaid.LessThan(loan.TotalDue); i++ {
			remaining := loan.TotalDue.Sub(loan.AmountPaid)
			maxPay := remaining.IntPart()
			if maxPay < 1 {
				maxPay = 1
			}
			amount := rapid.Int64Range(1, maxPay).Draw(t, "amount")
			interestShare := rapid.Int64Range(0, amount).Draw(t, "interest")

			var err error
			loan, _, err = ledger.ApplyPayment(loan, ledger.Payment{
				Principal: dec(amount - interestShare),
				Interest:  dec(interestShare),
			}, time.Now())
			if err != nil {
				t.Fatalf("payment %d rejected: %v", i, err)
			}
			if loan.RemainingAmount.Sign() < 0 {
				t.Fatalf("remaining went negative: %s", loan.RemainingAmount)
			}
			if loan.AmountPaid.LessThanOrEqual(loan.TotalDue) {
				gap := loan.AmountPaid.Add(loan.RemainingAmount).Sub(loan.TotalDue).Abs()
				if gap.GreaterThan(tolerance) {
					t.Fatalf("conservation broken: paid %s + remaining %s != due %s", loan.AmountPaid, loan.RemainingAmount, loan.TotalDue)
				}
			}
		}

		if !loan.RemainingAmount.IsZero() || loan.Status != domain.LoanPaid {
			t.Fatalf("fully paid loan not settled: remaining %s status %s", loan.RemainingAmount, loan.Status)
		}

		extra, _, err := ledger.ApplyPayment(loan, ledger.Payment{Principal: dec(1000)}, time.Now())
		if err != nil {
			t.Fatalf("extra payment rejected: %v", err)
		}
		if !extra.RemainingAmount.IsZero() || extra.Status != domain.LoanPaid {
			t.Fatalf("extra payment changed settled loan: remaining %s", extra.RemainingAmount)
		}
	})
}

func TestMonthsElapsed(t *testing.T) {
	issued := domain.NewDate(2024, time.January, 15)
	tests := []struct {
		name string
		ref  domain.Date
		want int
	}{
		{name: "same day", ref: issued, want: 0},
		{name: "day before first anniversary", ref: domain.NewDate(2024, time.February, 14), want: 0},
		{name: "first anniversary", ref: domain.NewDate(2024, time.February, 15), want: 1},
		{name: "across year end", ref: domain.NewDate(2025, time.January, 20), want: 12},
		{name: "reference before issue", ref: domain.NewDate(2023, time.December, 1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.MonthsElapsed(issued, tt.ref))
		})
	}
}

func TestAccrual(t *testing.T) {
	loan := newLoan(100000, "0.10")
	loan.MonthsPaidHistory = []domain.MonthsPaidEntry{{Months: 1}}

	acc := ledger.Accrual(loan, domain.NewDate(2024, time.April, 20))

	assert.Equal(t, 3, acc.MonthsElapsed)
	assert.Equal(t, 1, acc.MonthsPaid)
	assert.Equal(t, 2, acc.MonthsOutstanding)
	assert.Equal(t, "10000", acc.MonthlyInterestDue.String())
	assert.Equal(t, "20000", acc.SuggestedInterest.String())
}
