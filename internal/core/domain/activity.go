package domain

import "github.com/shopspring/decimal"

// ActivityType classifies an ad-hoc ledger event.
type ActivityType string

const (
	ActivityContribution ActivityType = "CONTRIBUTION"
	ActivityGivenLoan    ActivityType = "GIVEN_LOAN"
	ActivityPayingLoan   ActivityType = "PAYING_LOAN"
	ActivityPayingProfit ActivityType = "PAYING_PROFIT"
	ActivityExpense      ActivityType = "EXPENSE"
	ActivityInvestment   ActivityType = "INVESTMENT"
	ActivityGeneral      ActivityType = "GENERAL"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityContribution, ActivityGivenLoan, ActivityPayingLoan, ActivityPayingProfit,
		ActivityExpense, ActivityInvestment, ActivityGeneral:
		return true
	}
	return false
}

// Activity is a generic income/expense event outside loans, investments and contributions.
type Activity struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	AmountSpent  decimal.Decimal `json:"amountSpent"`
	AmountEarned decimal.Decimal `json:"amountEarned"`
	Date         Date            `json:"date"`
	Category     string          `json:"category"`
	ActivityType ActivityType    `json:"activityType"`
	ActorID      string          `json:"actorId,omitempty"`
	ActorName    string          `json:"actorName,omitempty"`
}
