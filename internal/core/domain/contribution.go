package domain

import "github.com/shopspring/decimal"

// ContributionPeriodDays is the fixed length of a contribution window.
const ContributionPeriodDays = 28

// DefaultContributionAmount is used when a contribution is recorded without an amount.
var DefaultContributionAmount = decimal.NewFromInt(8000)

// ContributionStatus is the payment state of a contribution.
type ContributionStatus string

const (
	ContributionPaid    ContributionStatus = "paid"
	ContributionPending ContributionStatus = "pending"
	ContributionOverdue ContributionStatus = "overdue"
)

func (s ContributionStatus) Valid() bool {
	switch s {
	case ContributionPaid, ContributionPending, ContributionOverdue:
		return true
	}
	return false
}

// Contribution is a periodic payment made by a member.
type Contribution struct {
	ID          string             `json:"id"`
	MemberID    string             `json:"memberId"`
	Amount      decimal.Decimal    `json:"amount"`
	PeriodStart Date               `json:"periodStart"`
	PeriodEnd   Date               `json:"periodEnd"`
	DatePaid    Date               `json:"datePaid"`
	Status      ContributionStatus `json:"status"`
}

// ContributionPeriodEnd derives the end of the window starting at start.
func ContributionPeriodEnd(start Date) Date {
	return start.AddDays(ContributionPeriodDays)
}
