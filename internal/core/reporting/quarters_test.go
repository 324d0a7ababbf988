package reporting_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sangwaemm/The-Partners-App/internal/apperrors"
	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
	"github.com/sangwaemm/The-Partners-App/internal/core/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestListAvailableQuarters(t *testing.T) {
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	quarters := reporting.ListAvailableQuarters(now)

	require.Len(t, quarters, 8)
	assert.Equal(t, "Q2 2024", quarters[0].Label)
	assert.Equal(t, "2024-04-01", quarters[0].StartDate.String())
	assert.Equal(t, "2024-06-30", quarters[0].EndDate.String())
	assert.Equal(t, "Q1 2024", quarters[1].Label)
	assert.Equal(t, "Q4 2023", quarters[2].Label)
	assert.Equal(t, "2023-12-31", quarters[2].EndDate.String())
	assert.Equal(t, "Q3 2022", quarters[7].Label)
}

func TestListAvailableQuarters_Partition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		days := rapid.IntRange(0, 365*60).Draw(t, "daysSinceEpoch")
		now := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)

		quarters := reporting.ListAvailableQuarters(now)
		if len(quarters) != reporting.TrailingQuarters {
			t.Fatalf("got %d quarters", len(quarters))
		}
		if !domain.DateOf(now).Within(quarters[0].StartDate, quarters[0].EndDate) {
			t.Fatalf("current quarter %s does not contain %s", quarters[0].Label, now)
		}
		for i, q := range quarters {
			if q.StartDate.Day() != 1 || (int(q.StartDate.Month())-1)%3 != 0 {
				t.Fatalf("%s does not start on a quarter boundary: %s", q.Label, q.StartDate)
			}
			if q.EndDate.AddDays(1) != q.StartDate.AddMonths(3) {
				t.Fatalf("%s does not span exactly one quarter", q.Label)
			}
			if i > 0 && quarters[i-1].StartDate != q.EndDate.AddDays(1) {
				t.Fatalf("%s and %s are not contiguous", q.Label, quarters[i-1].Label)
			}
		}
	})
}

func TestParseQuarterLabel(t *testing.T) {
	q, err := reporting.ParseQuarterLabel("Q3 2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, q.Year)
	assert.Equal(t, 3, q.Number)
	assert.Equal(t, "2023-07-01", q.StartDate.String())
	assert.Equal(t, "2023-09-30", q.EndDate.String())

	for _, bad := range []string{"", "Q5 2023", "q1 2024", "Q1-2024", "Q1 24"} {
		_, err := reporting.ParseQuarterLabel(bad)
		assert.True(t, errors.Is(err, apperrors.ErrValidation), bad)
	}
}

func TestPrevious(t *testing.T) {
	assert.Equal(t, "Q4 2023", reporting.Previous(reporting.NewQuarter(2024, 1)).Label)
	assert.Equal(t, "Q2 2024", reporting.Previous(reporting.NewQuarter(2024, 3)).Label)
}
