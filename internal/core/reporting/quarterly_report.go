package reporting

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateQuarterlyReport computes the statement for q from the full history in s.
// Unpaid loans and total association assets are point-in-time figures, not period scoped.
func GenerateQuarterlyReport(s domain.Snapshot, q domain.Quarter) domain.QuarterlyReport {
	start, end := q.StartDate, q.EndDate
	r := domain.QuarterlyReport{
		Quarter:   q.Label,
		StartDate: start,
		EndDate:   end,
	}

	r.UnpaidLoans = decimal.Zero
	r.LoansGivenInPeriod = decimal.Zero
	r.ProfitFromLoans = decimal.Zero
	for _, l := range s.Loans {
		r.UnpaidLoans = r.UnpaidLoans.Add(l.RemainingAmount)
		if l.DateIssued.Within(start, end) {
			r.LoansGivenInPeriod = r.LoansGivenInPeriod.Add(l.Principal)
		}
		// interest months are re-priced with the loan's stored rate
		monthly := l.Principal.Mul(l.InterestRate)
		for _, e := range l.MonthsPaidHistory {
			if domain.DateOf(e.Date).Within(start, end) {
				r.ProfitFromLoans = r.ProfitFromLoans.Add(monthly.Mul(decimal.NewFromInt(int64(e.Months))))
			}
		}
	}
	r.TotalLoansEndOfPeriod = r.UnpaidLoans
	r.LoansPaidInPeriod = r.ProfitFromLoans

	r.ProfitFromInvestments = decimal.Zero
	r.InvestmentExpenses = decimal.Zero
	r.InvestmentsDoneInPeriod = decimal.Zero
	investmentHoldings := decimal.Zero
	for _, inv := range s.Investments {
		r.ProfitFromInvestments = r.ProfitFromInvestments.Add(sumInPeriod(inv.ProfitHistory, start, end))
		r.InvestmentExpenses = r.InvestmentExpenses.Add(sumInPeriod(inv.ExpenseHistory, start, end))
		if inv.DateCreated.Within(start, end) {
			r.InvestmentsDoneInPeriod = r.InvestmentsDoneInPeriod.Add(inv.TotalCapital)
		}
		investmentHoldings = investmentHoldings.Add(inv.TotalCapital.Sub(inv.TotalExpenses).Add(inv.TotalProfits))
	}

	r.ActivitiesExpenses = decimal.Zero
	for _, a := range s.Activities {
		if a.Date.Within(start, end) {
			r.ActivitiesExpenses = r.ActivitiesExpenses.Add(a.AmountSpent)
		}
	}

	r.ContributionsPaidInPeriod = contributionsPaidBetween(s.Contributions, start, end)
	prev := Previous(q)
	r.PreviousAccountBalance = contributionsPaidBetween(s.Contributions, prev.StartDate, prev.EndDate)

	r.TotalProfitsInPeriod = r.ProfitFromLoans.Add(r.ProfitFromInvestments)
	r.TotalExpensesInPeriod = r.ActivitiesExpenses.Add(r.InvestmentExpenses)

	r.CurrentAccountBalance = r.PreviousAccountBalance.
		Add(r.ContributionsPaidInPeriod).
		Add(r.TotalProfitsInPeriod).
		Sub(r.TotalExpensesInPeriod).
		Sub(r.InvestmentsDoneInPeriod).
		Add(r.LoansPaidInPeriod)

	r.TotalAssociation = r.CurrentAccountBalance.Add(investmentHoldings).Add(r.UnpaidLoans)
	return r
}

func contributionsPaidBetween(contributions []domain.Contribution, start, end domain.Date) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contributions {
		if c.DatePaid.Within(start, end) {
			total = total.Add(c.Amount)
		}
	}
	return total
}

func sumInPeriod(entries []domain.InvestmentEntry, start, end domain.Date) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Date.Within(start, end) {
			total = total.Add(e.Amount)
		}
	}
	return total
}
