package domain

import "github.com/shopspring/decimal"

// InvestmentEntry is one expense or profit booked against an investment.
type InvestmentEntry struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        Date            `json:"date"`
}

// Investment is a side project funded with cooperative capital.
// TotalExpenses and TotalProfits always equal the sums of their histories.
type Investment struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	TotalCapital   decimal.Decimal   `json:"totalCapital"`
	TotalExpenses  decimal.Decimal   `json:"totalExpenses"`
	TotalProfits   decimal.Decimal   `json:"totalProfits"`
	DateCreated    Date              `json:"dateCreated"`
	LastUpdated    Date              `json:"lastUpdated"`
	ExpenseHistory []InvestmentEntry `json:"expenseHistory"`
	ProfitHistory  []InvestmentEntry `json:"profitHistory"`
}
