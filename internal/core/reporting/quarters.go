// Package reporting partitions time into calendar quarters and builds the
// quarterly financial statement from a ledger snapshot.
package reporting

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

// TrailingQuarters is how many quarters ListAvailableQuarters returns.
const TrailingQuarters = 8

var quarterLabel = regexp.MustCompile(`^Q([1-4]) (\d{4})$`)

// QuarterOf returns the calendar quarter containing d.
func QuarterOf(d domain.Date) domain.Quarter {
	return NewQuarter(d.Year(), (int(d.Month())-1)/3+1)
}

// NewQuarter builds quarter n (1-4) of year.
func NewQuarter(year, n int) domain.Quarter {
	start := domain.NewDate(year, time.Month((n-1)*3+1), 1)
	return domain.Quarter{
		Label:     fmt.Sprintf("Q%d %d", n, year),
		Year:      year,
		Number:    n,
		StartDate: start,
		EndDate:   start.AddMonths(3).AddDays(-1),
	}
}

// Previous returns the quarter immediately before q.
func Previous(q domain.Quarter) domain.Quarter {
	if q.Number == 1 {
		return NewQuarter(q.Year-1, 4)
	}
	return NewQuarter(q.Year, q.Number-1)
}

// ListAvailableQuarters returns the current quarter and the seven before it, newest first.
func ListAvailableQuarters(now time.Time) []domain.Quarter {
	quarters := make([]domain.Quarter, 0, TrailingQuarters)
	q := QuarterOf(domain.DateOf(now))
	for i := 0; i < TrailingQuarters; i++ {
		quarters = append(quarters, q)
		q = Previous(q)
	}
	return quarters
}

// ParseQuarterLabel resolves a "Q{n} {year}" label to its bounds.
func ParseQuarterLabel(label string) (domain.Quarter, error) {
	m := quarterLabel.FindStringSubmatch(label)
	if m == nil {
		return domain.Quarter{}, fmt.Errorf("%w: quarter label %q must look like \"Q1 2024\"", apperrors.ErrValidation, label)
	}
	n, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	return NewQuarter(year, n), nil
}
