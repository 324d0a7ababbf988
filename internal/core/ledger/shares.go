// Package ledger holds the pure derivation rules of the cooperative ledger:
// shares, loan state transitions, accrual and aggregate totals.
// Every function works on values and never mutates its inputs.
package ledger

import (
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SharePolicyDivisor is the amount of funds that makes one share.
// It is fixed by policy and independent of Settings.SharePrice.
var SharePolicyDivisor = decimal.NewFromInt(100000)

// ContributionsOf sums the amounts of contributions recorded for memberID.
func ContributionsOf(memberID string, contributions []domain.Contribution) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contributions {
		if c.MemberID == memberID {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// TotalFunds is historical contribution + historical profit + recorded contributions.
func TotalFunds(m domain.Member, contributions []domain.Contribution) decimal.Decimal {
	return m.HistoricalContribution.Add(m.HistoricalProfit).Add(ContributionsOf(m.ID, contributions))
}

// SharesFor converts an amount of funds into whole shares. Negative funds give zero shares.
func SharesFor(funds decimal.Decimal) int64 {
	if funds.Sign() <= 0 {
		return 0
	}
	return funds.Div(SharePolicyDivisor).Floor().IntPart()
}

// ShareCount is floor(TotalFunds / SharePolicyDivisor).
func ShareCount(m domain.Member, contributions []domain.Contribution) int64 {
	return SharesFor(TotalFunds(m, contributions))
}

// ShareValue prices the member's shares at the configured share price.
func ShareValue(m domain.Member, contributions []domain.Contribution, settings domain.Settings) decimal.Decimal {
	return decimal.NewFromInt(ShareCount(m, contributions)).Mul(settings.SharePrice)
}

// MemberShares returns the share table for every member, in member order.
func MemberShares(s domain.Snapshot) []domain.MemberShareSummary {
	rows := make([]domain.MemberShareSummary, 0, len(s.Members))
	for _, m := range s.Members {
		funds := TotalFunds(m, s.Contributions)
		count := SharesFor(funds)
		rows = append(rows, domain.MemberShareSummary{
			MemberID:   m.ID,
			FullName:   m.FullName,
			Status:     m.Status,
			TotalFunds: funds,
			ShareCount: count,
			ShareValue: decimal.NewFromInt(count).Mul(s.Settings.SharePrice),
		})
	}
	return rows
}
