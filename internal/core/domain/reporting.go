package domain

import (
	"github.com/shopspring/decimal"
)

// Quarter is one calendar quarter, e.g. "Q1 2024" spanning Jan 1 to Mar 31.
type Quarter struct {
	Label     string `json:"label"`
	Year      int    `json:"year"`
	Number    int    `json:"number"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`
}

// QuarterlyReport is the financial statement for one quarter.
type QuarterlyReport struct {
	Quarter   string `json:"quarter"`
	StartDate Date   `json:"startDate"`
	EndDate   Date   `json:"endDate"`

	// point-in-time figures
	UnpaidLoans           decimal.Decimal `json:"unpaidLoans"`
	TotalLoansEndOfPeriod decimal.Decimal `json:"totalLoansEndOfPeriod"`

	LoansGivenInPeriod        decimal.Decimal `json:"loansGivenInPeriod"`
	LoansPaidInPeriod         decimal.Decimal `json:"loansPaidInPeriod"`
	ProfitFromLoans           decimal.Decimal `json:"profitFromLoans"`
	ProfitFromInvestments     decimal.Decimal `json:"profitFromInvestments"`
	ActivitiesExpenses        decimal.Decimal `json:"activitiesExpenses"`
	InvestmentExpenses        decimal.Decimal `json:"investmentExpenses"`
	InvestmentsDoneInPeriod   decimal.Decimal `json:"investmentsDoneInPeriod"`
	ContributionsPaidInPeriod decimal.Decimal `json:"contributionsPaidInPeriod"`
	TotalProfitsInPeriod      decimal.Decimal `json:"totalProfitsInPeriod"`
	TotalExpensesInPeriod     decimal.Decimal `json:"totalExpensesInPeriod"`

	PreviousAccountBalance decimal.Decimal `json:"previousAccountBalance"`
	CurrentAccountBalance  decimal.Decimal `json:"currentAccountBalance"`
	TotalAssociation       decimal.Decimal `json:"totalAssociation"`
}

// InvestmentTotals aggregates every investment.
type InvestmentTotals struct {
	TotalCapital  decimal.Decimal `json:"totalCapital"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalProfits  decimal.Decimal `json:"totalProfits"`
	NetResult     decimal.Decimal `json:"netResult"`
	ROI           decimal.Decimal `json:"roi"` // percent of capital
}

// DashboardTotals are the cooperative-wide headline figures.
type DashboardTotals struct {
	TotalSharesValue     decimal.Decimal  `json:"totalSharesValue"`
	TotalContributions   decimal.Decimal  `json:"totalContributions"`
	TotalLoanIssued      decimal.Decimal  `json:"totalLoanIssued"`
	TotalPrincipalPaid   decimal.Decimal  `json:"totalPrincipalPaid"`
	TotalLoanOutstanding decimal.Decimal  `json:"totalLoanOutstanding"`
	TotalProfitPaid      decimal.Decimal  `json:"totalProfitPaid"`
	ActiveMembers        int              `json:"activeMembers"`
	ActiveLoans          int              `json:"activeLoans"`
	Investments          InvestmentTotals `json:"investments"`
}

// MemberPortfolio is the financial view of a single member.
type MemberPortfolio struct {
	Member          Member          `json:"member"`
	MyTotalContrib  decimal.Decimal `json:"myTotalContrib"`
	MyTotalFunds    decimal.Decimal `json:"myTotalFunds"`
	MyShares        int64           `json:"myShares"`
	MyShareValue    decimal.Decimal `json:"myShareValue"`
	LoanOutstanding decimal.Decimal `json:"loanOutstanding"`
	Contributions   []Contribution  `json:"contributions"`
	Loans           []Loan          `json:"loans"`
}

// MemberShareSummary is one row of the members share table.
type MemberShareSummary struct {
	MemberID   string          `json:"memberId"`
	FullName   string          `json:"fullName"`
	Status     MemberStatus    `json:"status"`
	TotalFunds decimal.Decimal `json:"totalFunds"`
	ShareCount int64           `json:"shareCount"`
	ShareValue decimal.Decimal `json:"shareValue"`
}

// LoanAccrual is the advisory interest position of a loan at a reference date.
type LoanAccrual struct {
	LoanID             string          `json:"loanId"`
	MonthsElapsed      int             `json:"monthsElapsed"`
	MonthsPaid         int             `json:"monthsPaid"`
	MonthsOutstanding  int             `json:"monthsOutstanding"`
	MonthlyInterestDue decimal.Decimal `json:"monthlyInterestDue"`
	SuggestedInterest  decimal.Decimal `json:"suggestedInterest"`
}

// FinancialSummary is the input handed to the insight generator.
type FinancialSummary struct {
	ActiveMembers      int             `json:"activeMembers"`
	TotalContributions decimal.Decimal `json:"totalContributions"`
	TotalLoans         decimal.Decimal `json:"totalLoans"`
	OutstandingLoans   decimal.Decimal `json:"outstandingLoans"`
	ProjectExpenses    decimal.Decimal `json:"projectExpenses"`
	ProjectEarnings    decimal.Decimal `json:"projectEarnings"`
}

// ExportRow is one line of the flat ledger export (Type, Amount, Date, Status).
type ExportRow struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	Status string          `json:"status"`
}
