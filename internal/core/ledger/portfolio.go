package ledger

import (
	"fmt"
	"sort"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeMemberPortfolio derives the personal financial view of one member.
func ComputeMemberPortfolio(s domain.Snapshot, memberID string) (domain.MemberPortfolio, error) {
	m, ok := domain.FindMember(s.Members, memberID)
	if !ok {
		return domain.MemberPortfolio{}, fmt.Errorf("member %s: %w", memberID, apperrors.ErrNotFound)
	}

	p := domain.MemberPortfolio{
		Member:          m,
		Contributions:   []domain.Contribution{},
		Loans:           []domain.Loan{},
		LoanOutstanding: decimal.Zero,
	}
	for _, c := range s.Contributions {
		if c.MemberID == memberID {
			p.Contributions = append(p.Contributions, c)
		}
	}
	for _, l := range s.Loans {
		if l.BorrowerType == domain.BorrowerMember && l.MemberID == memberID {
			p.Loans = append(p.Loans, l)
			p.LoanOutstanding = p.LoanOutstanding.Add(l.RemainingAmount)
		}
	}
	sort.SliceStable(p.Contributions, func(i, j int) bool {
		return p.Contributions[i].DatePaid.After(p.Contributions[j].DatePaid)
	})
	sort.SliceStable(p.Loans, func(i, j int) bool {
		return p.Loans[i].DateIssued.After(p.Loans[j].DateIssued)
	})

	p.MyTotalContrib = m.HistoricalContribution.Add(ContributionsOf(memberID, s.Contributions))
	p.MyTotalFunds = p.MyTotalContrib.Add(m.HistoricalProfit)
	p.MyShares = SharesFor(p.MyTotalFunds)
	p.MyShareValue = decimal.NewFromInt(p.MyShares).Mul(s.Settings.SharePrice)
	return p, nil
}
