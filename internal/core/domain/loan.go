package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BorrowerType distinguishes member loans from loans to outside parties.
type BorrowerType string

const (
	BorrowerMember   BorrowerType = "MEMBER"
	BorrowerExternal BorrowerType = "EXTERNAL"
)

func (b BorrowerType) Valid() bool {
	return b == BorrowerMember || b == BorrowerExternal
}

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanPending  LoanStatus = "PENDING"
	LoanActive   LoanStatus = "ACTIVE"
	LoanPaid     LoanStatus = "PAID"
	LoanRejected LoanStatus = "REJECTED"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanActive, LoanPaid, LoanRejected:
		return true
	}
	return false
}

// PaidTolerance is the remaining balance at or below which a loan counts as settled.
var PaidTolerance = decimal.NewFromFloat(0.5)

// MonthsPaidEntry records a number of interest months settled by one payment.
type MonthsPaidEntry struct {
	Months int       `json:"months"`
	Date   time.Time `json:"date"`
}

// Loan is money lent by the cooperative. Pricing fields are frozen at issuance.
type Loan struct {
	ID                string            `json:"id"`
	BorrowerType      BorrowerType      `json:"borrowerType"`
	MemberID          string            `json:"memberId,omitempty"`
	BorrowerName      string            `json:"borrowerName"`
	BorrowerPhone     string            `json:"borrowerPhone,omitempty"`
	Principal         decimal.Decimal   `json:"principal"`
	InterestRate      decimal.Decimal   `json:"interestRate"` // fraction, 0.10 = 10%
	TotalInterest     decimal.Decimal   `json:"totalInterest"`
	TotalDue          decimal.Decimal   `json:"totalDue"`
	AmountPaid        decimal.Decimal   `json:"amountPaid"`   // principal + interest
	InterestPaid      decimal.Decimal   `json:"interestPaid"` // interest only
	RemainingAmount   decimal.Decimal   `json:"remainingAmount"`
	DateIssued        Date              `json:"dateIssued"`
	DueDate           Date              `json:"dueDate"`
	Status            LoanStatus        `json:"status"`
	MonthsPaidHistory []MonthsPaidEntry `json:"monthsPaidHistory"`
}

// MonthsPaid sums the months recorded in the loan's history.
func (l Loan) MonthsPaid() int {
	total := 0
	for _, e := range l.MonthsPaidHistory {
		total += e.Months
	}
	return total
}
