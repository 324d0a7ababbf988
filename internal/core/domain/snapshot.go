package domain

import "slices"

// Snapshot is the complete set of entity collections at a point in time.
// It is the persistence document and the export/import format.
type Snapshot struct {
	Members       []Member       `json:"members"`
	Contributions []Contribution `json:"contributions"`
	Loans         []Loan         `json:"loans"`
	Investments   []Investment   `json:"investments"`
	Activities    []Activity     `json:"activities"`
	Settings      Settings       `json:"settings"`
	Notifications []Notification `json:"notifications"`
}

// NewSnapshot returns an empty snapshot with default settings.
func NewSnapshot() Snapshot {
	s := Snapshot{Settings: DefaultSettings()}
	s.Normalize()
	return s
}

// Normalize replaces missing sequences with empty ones and fills default settings.
func (s *Snapshot) Normalize() {
	if s.Members == nil {
		s.Members = []Member{}
	}
	if s.Contributions == nil {
		s.Contributions = []Contribution{}
	}
	if s.Loans == nil {
		s.Loans = []Loan{}
	}
	if s.Investments == nil {
		s.Investments = []Investment{}
	}
	if s.Activities == nil {
		s.Activities = []Activity{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
	if s.Settings.IsZero() {
		s.Settings = DefaultSettings()
	}
	for i := range s.Loans {
		if s.Loans[i].MonthsPaidHistory == nil {
			s.Loans[i].MonthsPaidHistory = []MonthsPaidEntry{}
		}
	}
	for i := range s.Investments {
		if s.Investments[i].ExpenseHistory == nil {
			s.Investments[i].ExpenseHistory = []InvestmentEntry{}
		}
		if s.Investments[i].ProfitHistory == nil {
			s.Investments[i].ProfitHistory = []InvestmentEntry{}
		}
	}
}

// Clone returns a deep copy that shares no slices with s.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Members:       slices.Clone(s.Members),
		Contributions: slices.Clone(s.Contributions),
		Loans:         slices.Clone(s.Loans),
		Investments:   slices.Clone(s.Investments),
		Activities:    slices.Clone(s.Activities),
		Settings:      s.Settings,
		Notifications: slices.Clone(s.Notifications),
	}
	for i := range out.Loans {
		out.Loans[i].MonthsPaidHistory = slices.Clone(out.Loans[i].MonthsPaidHistory)
	}
	for i := range out.Investments {
		out.Investments[i].ExpenseHistory = slices.Clone(out.Investments[i].ExpenseHistory)
		out.Investments[i].ProfitHistory = slices.Clone(out.Investments[i].ProfitHistory)
	}
	return out
}

// IsEmpty reports whether the snapshot holds no entities.
func (s Snapshot) IsEmpty() bool {
	return len(s.Members) == 0 && len(s.Contributions) == 0 && len(s.Loans) == 0 &&
		len(s.Investments) == 0 && len(s.Activities) == 0 && len(s.Notifications) == 0
}
