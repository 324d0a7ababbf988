package ledger

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeDashboardTotals derives the cooperative-wide headline figures.
// Historical member profit is excluded from TotalProfitPaid: it was paid out before the system existed.
func ComputeDashboardTotals(s domain.Snapshot) domain.DashboardTotals {
	t := domain.DashboardTotals{
		TotalSharesValue:     decimal.Zero,
		TotalContributions:   decimal.Zero,
		TotalLoanIssued:      decimal.Zero,
		TotalPrincipalPaid:   decimal.Zero,
		TotalLoanOutstanding: decimal.Zero,
		TotalProfitPaid:      decimal.Zero,
	}

	for _, m := range s.Members {
		t.TotalSharesValue = t.TotalSharesValue.Add(ShareValue(m, s.Contributions, s.Settings))
		t.TotalContributions = t.TotalContributions.Add(m.HistoricalContribution)
		if m.Status == domain.MemberActive {
			t.ActiveMembers++
		}
	}
	for _, c := range s.Contributions {
		t.TotalContributions = t.TotalContributions.Add(c.Amount)
	}
	for _, l := range s.Loans {
		t.TotalLoanIssued = t.TotalLoanIssued.Add(l.Principal)
		t.TotalPrincipalPaid = t.TotalPrincipalPaid.Add(l.AmountPaid.Sub(l.InterestPaid))
		t.TotalLoanOutstanding = t.TotalLoanOutstanding.Add(l.RemainingAmount)
		t.TotalProfitPaid = t.TotalProfitPaid.Add(l.InterestPaid)
		if l.Status == domain.LoanActive {
			t.ActiveLoans++
		}
	}
	for _, a := range s.Activities {
		t.TotalProfitPaid = t.TotalProfitPaid.Add(a.AmountEarned)
	}
	t.Investments = ComputeInvestmentTotals(s.Investments)
	return t
}

// NetResult is profits minus expenses of one investment.
func NetResult(inv domain.Investment) decimal.Decimal {
	return inv.TotalProfits.Sub(inv.TotalExpenses)
}

// ComputeInvestmentTotals aggregates all investments. ROI is a percentage of capital, zero without capital.
func ComputeInvestmentTotals(investments []domain.Investment) domain.InvestmentTotals {
	t := domain.InvestmentTotals{
		TotalCapital:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalProfits:  decimal.Zero,
	}
	for _, inv := range investments {
		t.TotalCapital = t.TotalCapital.Add(inv.TotalCapital)
		t.TotalExpenses = t.TotalExpenses.Add(inv.TotalExpenses)
		t.TotalProfits = t.TotalProfits.Add(inv.TotalProfits)
	}
	t.NetResult = t.TotalProfits.Sub(t.TotalExpenses)
	t.ROI = decimal.Zero
	if t.TotalCapital.Sign() > 0 {
		t.ROI = t.NetResult.Div(t.TotalCapital).Mul(hundred).Round(2)
	}
	return t
}

// SumEntries adds up the amounts of investment history entries.
func SumEntries(entries []domain.InvestmentEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// BuildFinancialSummary prepares the figures handed to the insight generator.
func BuildFinancialSummary(s domain.Snapshot) domain.FinancialSummary {
	totals := ComputeDashboardTotals(s)
	summary := domain.FinancialSummary{
		ActiveMembers:      totals.ActiveMembers,
		TotalContributions: totals.TotalContributions,
		TotalLoans:         totals.TotalLoanIssued,
		OutstandingLoans:   totals.TotalLoanOutstanding,
		ProjectExpenses:    decimal.Zero,
		ProjectEarnings:    decimal.Zero,
	}
	for _, a := range s.Activities {
		summary.ProjectExpenses = summary.ProjectExpenses.Add(a.AmountSpent)
		summary.ProjectEarnings = summary.ProjectEarnings.Add(a.AmountEarned)
	}
	return summary
}
