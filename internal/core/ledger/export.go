package ledger

import "github.com/sangwaemm/The-Partners-App/internal/core/domain"

// ExportRows flattens contributions and loans into (Type, Amount, Date, Status) rows.
func ExportRows(s domain.Snapshot) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(s.Contributions)+len(s.Loans))
	for _, c := range s.Contributions {
		rows = append(rows, domain.ExportRow{
			Type:   "Contribution",
			Amount: c.Amount,
			Date:   c.DatePaid,
			Status: string(c.Status),
		})
	}
	for _, l := range s.Loans {
		rows = append(rows, domain.ExportRow{
			Type:   "Loan Issued",
			Amount: l.Principal,
			Date:   l.DateIssued,
			Status: string(l.Status),
		})
	}
	return rows
}
