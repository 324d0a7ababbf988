package memory

import (
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DemoSnapshot returns a small, internally consistent data set for local development.
func DemoSnapshot() domain.Snapshot {
	d := decimal.NewFromInt
	s := domain.NewSnapshot()
	s.Members = []domain.Member{
		{ID: "1", FullName: "Admin User", Email: "admin@coop.rw", Phone: "0780000000", Role: domain.RoleAdmin, JoinedDate: domain.NewDate(2023, time.January, 1), Status: domain.MemberActive, HistoricalContribution: d(0), HistoricalProfit: d(0)},
		{ID: "2", FullName: "John President", Email: "pres@coop.rw", Phone: "0780000001", Role: domain.RolePresident, JoinedDate: domain.NewDate(2023, time.January, 2), Status: domain.MemberActive, HistoricalContribution: d(500000), HistoricalProfit: d(25000)},
		{ID: "3", FullName: "Jane Secretary", Email: "sec@coop.rw", Phone: "0780000002", Role: domain.RoleSecretary, JoinedDate: domain.NewDate(2023, time.January, 5), Status: domain.MemberActive, HistoricalContribution: d(200000), HistoricalProfit: d(10000)},
		{ID: "4", FullName: "Alice Member", Email: "alice@coop.rw", Phone: "0780000003", Role: domain.RoleMember, JoinedDate: domain.NewDate(2023, time.February, 1), Status: domain.MemberActive, HistoricalContribution: d(0), HistoricalProfit: d(0)},
		{ID: "5", FullName: "Bob Member", Email: "bob@coop.rw", Phone: "0780000004", Role: domain.RoleMember, JoinedDate: domain.NewDate(2023, time.February, 15), Status: domain.MemberActive, HistoricalContribution: d(1000000), HistoricalProfit: d(50000)},
	}

	oct := domain.NewDate(2023, time.October, 1)
	s.Contributions = []domain.Contribution{
		{ID: "c1", MemberID: "4", Amount: d(8000), PeriodStart: oct, PeriodEnd: domain.ContributionPeriodEnd(oct), DatePaid: domain.NewDate(2023, time.October, 5), Status: domain.ContributionPaid},
		{ID: "c2", MemberID: "5", Amount: d(8000), PeriodStart: oct, PeriodEnd: domain.ContributionPeriodEnd(oct), DatePaid: domain.NewDate(2023, time.October, 2), Status: domain.ContributionPaid},
	}

	s.Loans = []domain.Loan{{
		ID: "l1", BorrowerType: domain.BorrowerMember, MemberID: "4", BorrowerName: "Alice Member",
		Principal: d(100000), InterestRate: decimal.RequireFromString("0.1"), TotalInterest: d(10000), TotalDue: d(110000),
		AmountPaid: d(50000), InterestPaid: d(5000), RemainingAmount: d(60000),
		DateIssued: domain.NewDate(2023, time.September, 1), DueDate: domain.NewDate(2023, time.December, 1),
		Status:            domain.LoanActive,
		MonthsPaidHistory: []domain.MonthsPaidEntry{{Months: 1, Date: time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC)}},
	}}

	s.Investments = []domain.Investment{
		{
			ID: "inv1", Name: "Real Estate - Kigali", Description: "Commercial property in Kigali CBD",
			TotalCapital: d(5000000), TotalExpenses: d(500000), TotalProfits: d(1200000),
			DateCreated: domain.NewDate(2023, time.June, 1), LastUpdated: domain.NewDate(2024, time.December, 5),
			ExpenseHistory: []domain.InvestmentEntry{
				{Amount: d(250000), Description: "Maintenance and repairs", Date: domain.NewDate(2023, time.September, 15)},
				{Amount: d(250000), Description: "Staff wages and utilities", Date: domain.NewDate(2024, time.June, 1)},
			},
			ProfitHistory: []domain.InvestmentEntry{
				{Amount: d(600000), Description: "Q1 2024 rental income", Date: domain.NewDate(2024, time.March, 31)},
				{Amount: d(600000), Description: "Q2 2024 rental income", Date: domain.NewDate(2024, time.June, 30)},
			},
		},
		{
			ID: "inv2", Name: "Microfinance Business", Description: "Small loans and savings cooperative",
			TotalCapital: d(2000000), TotalExpenses: d(200000), TotalProfits: d(450000),
			DateCreated: domain.NewDate(2023, time.August, 1), LastUpdated: domain.NewDate(2024, time.December, 5),
			ExpenseHistory: []domain.InvestmentEntry{
				{Amount: d(200000), Description: "Administrative costs", Date: domain.NewDate(2024, time.September, 1)},
			},
			ProfitHistory: []domain.InvestmentEntry{
				{Amount: d(450000), Description: "Interest and fees collected", Date: domain.NewDate(2024, time.November, 30)},
			},
		},
	}
	s.Normalize()
	return s
}
