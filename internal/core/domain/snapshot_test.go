package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() domain.Snapshot {
	s := domain.NewSnapshot()
	s.Members = append(s.Members, domain.Member{
		ID: "m1", FullName: "Alice Member", Email: "alice@coop.rw", Role: domain.RoleMember,
		JoinedDate: domain.NewDate(2023, time.February, 1), Status: domain.MemberActive,
		HistoricalContribution: decimal.NewFromInt(500000), HistoricalProfit: decimal.NewFromInt(25000),
	})
	s.Loans = append(s.Loans, domain.Loan{
		ID: "l1", BorrowerType: domain.BorrowerMember, MemberID: "m1", BorrowerName: "Alice Member",
		Principal: decimal.NewFromInt(100000), InterestRate: decimal.RequireFromString("0.1"),
		TotalInterest: decimal.NewFromInt(10000), TotalDue: decimal.NewFromInt(110000),
		AmountPaid: decimal.NewFromInt(55000), InterestPaid: decimal.NewFromInt(5000),
		RemainingAmount: decimal.NewFromInt(55000), Status: domain.LoanActive,
		DateIssued: domain.NewDate(2023, time.September, 1), DueDate: domain.NewDate(2023, time.December, 1),
		MonthsPaidHistory: []domain.MonthsPaidEntry{{Months: 1, Date: time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC)}},
	})
	s.Investments = append(s.Investments, domain.Investment{
		ID: "i1", Name: "Kiosk", TotalCapital: decimal.NewFromInt(2000000),
		TotalExpenses: decimal.NewFromInt(200000), TotalProfits: decimal.NewFromInt(450000),
		DateCreated: domain.NewDate(2023, time.August, 1), LastUpdated: domain.NewDate(2024, time.December, 5),
		ExpenseHistory: []domain.InvestmentEntry{{Amount: decimal.NewFromInt(200000), Description: "Admin", Date: domain.NewDate(2024, time.September, 1)}},
		ProfitHistory:  []domain.InvestmentEntry{{Amount: decimal.NewFromInt(450000), Description: "Fees", Date: domain.NewDate(2024, time.November, 30)}},
	})
	return s
}

func TestSnapshot_CloneIsDeep(t *testing.T) {
	original := sampleSnapshot()
	clone := original.Clone()

	clone.Loans[0].MonthsPaidHistory = append(clone.Loans[0].MonthsPaidHistory, domain.MonthsPaidEntry{Months: 2})
	clone.Loans[0].MonthsPaidHistory[0].Months = 9
	clone.Investments[0].ExpenseHistory[0].Description = "changed"
	clone.Members[0].FullName = "changed"

	assert.Len(t, original.Loans[0].MonthsPaidHistory, 1)
	assert.Equal(t, 1, original.Loans[0].MonthsPaidHistory[0].Months)
	assert.Equal(t, "Admin", original.Investments[0].ExpenseHistory[0].Description)
	assert.Equal(t, "Alice Member", original.Members[0].FullName)
}

func TestSnapshot_NormalizeFillsDefaults(t *testing.T) {
	var s domain.Snapshot
	require.NoError(t, json.Unmarshal([]byte(`{"loans":[{"id":"l1"}],"investments":[{"id":"i1"}]}`), &s))

	s.Normalize()

	assert.NotNil(t, s.Members)
	assert.NotNil(t, s.Notifications)
	assert.NotNil(t, s.Loans[0].MonthsPaidHistory)
	assert.NotNil(t, s.Investments[0].ExpenseHistory)
	assert.NotNil(t, s.Investments[0].ProfitHistory)
	assert.Equal(t, "10", s.Settings.LoanInterestRate.String())
	assert.Equal(t, "100000", s.Settings.SharePrice.String())
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	original := sampleSnapshot()

	first, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded domain.Snapshot
	require.NoError(t, json.Unmarshal(first, &decoded))
	decoded.Normalize()

	second, err := json.Marshal(decoded)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, original.Loans[0].MonthsPaidHistory, decoded.Loans[0].MonthsPaidHistory)
	assert.Equal(t, original.Members[0].JoinedDate, decoded.Members[0].JoinedDate)
	assert.True(t, original.Loans[0].InterestRate.Equal(decoded.Loans[0].InterestRate))
}
