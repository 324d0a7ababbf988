package services

import (
	"errors"
	"fmt"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// validateSnapshot checks a restored document against the invariants the
// commands maintain. Member references are not resolved: backups may carry
// records of members that no longer exist.
func validateSnapshot(snap *domain.Snapshot) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{apperrors.ErrValidation}, args...)...))
	}
	nonNegative := func(field string, v decimal.Decimal) {
		if v.Sign() < 0 {
			fail("%s cannot be negative", field)
		}
	}

	for i, m := range snap.Members {
		if !m.Role.Valid() {
			fail("members[%d].role %q is unknown", i, m.Role)
		}
		if !m.Status.Valid() {
			fail("members[%d].status %q is unknown", i, m.Status)
		}
		nonNegative(fmt.Sprintf("members[%d].historicalContribution", i), m.HistoricalContribution)
		nonNegative(fmt.Sprintf("members[%d].historicalProfit", i), m.HistoricalProfit)
	}

	for i, c := range snap.Contributions {
		if !c.Status.Valid() {
			fail("contributions[%d].status %q is unknown", i, c.Status)
		}
		nonNegative(fmt.Sprintf("contributions[%d].amount", i), c.Amount)
	}

	for i, l := range snap.Loans {
		if !l.BorrowerType.Valid() {
			fail("loans[%d].borrowerType %q is unknown", i, l.BorrowerType)
		}
		if !l.Status.Valid() {
			fail("loans[%d].status %q is unknown", i, l.Status)
		}
		// interestPaid is left out: a payment may carry a negative interest portion.
		nonNegative(fmt.Sprintf("loans[%d].principal", i), l.Principal)
		nonNegative(fmt.Sprintf("loans[%d].interestRate", i), l.InterestRate)
		nonNegative(fmt.Sprintf("loans[%d].totalInterest", i), l.TotalInterest)
		nonNegative(fmt.Sprintf("loans[%d].totalDue", i), l.TotalDue)
		nonNegative(fmt.Sprintf("loans[%d].amountPaid", i), l.AmountPaid)
		nonNegative(fmt.Sprintf("loans[%d].remainingAmount", i), l.RemainingAmount)
		expected := ledger.RemainingAfter(l.TotalDue, l.AmountPaid)
		if l.RemainingAmount.Sub(expected).Abs().GreaterThan(domain.PaidTolerance) {
			fail("loans[%d].remainingAmount %s does not match totalDue - amountPaid (%s)", i, l.RemainingAmount, expected)
		}
	}

	for i, inv := range snap.Investments {
		nonNegative(fmt.Sprintf("investments[%d].totalCapital", i), inv.TotalCapital)
		if sum := sumEntries(inv.ExpenseHistory); !inv.TotalExpenses.Equal(sum) {
			fail("investments[%d].totalExpenses %s does not match expense history %s", i, inv.TotalExpenses, sum)
		}
		if sum := sumEntries(inv.ProfitHistory); !inv.TotalProfits.Equal(sum) {
			fail("investments[%d].totalProfits %s does not match profit history %s", i, inv.TotalProfits, sum)
		}
		for j, e := range inv.ExpenseHistory {
			nonNegative(fmt.Sprintf("investments[%d].expenseHistory[%d].amount", i, j), e.Amount)
		}
		for j, e := range inv.ProfitHistory {
			nonNegative(fmt.Sprintf("investments[%d].profitHistory[%d].amount", i, j), e.Amount)
		}
	}

	for i, a := range snap.Activities {
		if !a.ActivityType.Valid() {
			fail("activities[%d].activityType %q is unknown", i, a.ActivityType)
		}
		nonNegative(fmt.Sprintf("activities[%d].amountSpent", i), a.AmountSpent)
		nonNegative(fmt.Sprintf("activities[%d].amountEarned", i), a.AmountEarned)
	}

	for i, n := range snap.Notifications {
		if !n.Type.Valid() {
			fail("notifications[%d].type %q is unknown", i, n.Type)
		}
		if n.TargetRole != "" && !n.TargetRole.Valid() {
			fail("notifications[%d].targetRole %q is unknown", i, n.TargetRole)
		}
	}

	nonNegative("settings.loanInterestRate", snap.Settings.LoanInterestRate)
	if snap.Settings.SharePrice.Sign() <= 0 {
		fail("settings.sharePrice must be positive")
	}

	return errors.Join(errs...)
}

func sumEntries(entries []domain.InvestmentEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
