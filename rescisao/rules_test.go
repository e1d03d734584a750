package rescisao

import (
	"testing"
	"time"

	"github.com/warp/rescisao-engine/statement"
)

func d(year int, month time.Month, day int) statement.Date {
	return statement.NewDate(year, month, day)
}

// =============================================================================
// NOTICE LENGTH
// =============================================================================

func TestStatutoryNoticeDays(t *testing.T) {
	tests := []struct {
		name  string
		start statement.Date
		end   statement.Date
		want  int
	}{
		{"under one year", d(2024, time.January, 1), d(2024, time.December, 30), 30},
		{"exactly four years", d(2020, time.January, 15), d(2024, time.January, 15), 42},
		{"ten years", d(2014, time.March, 1), d(2024, time.March, 1), 60},
		{"twenty years hits cap", d(2004, time.January, 1), d(2024, time.January, 2), 90},
		{"thirty years stays capped", d(1990, time.January, 1), d(2024, time.June, 30), 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statutoryNoticeDays(tt.start, tt.end); got != tt.want {
				t.Errorf("statutoryNoticeDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWorkedNoticeDays_InclusiveCount(t *testing.T) {
	// March 1 through March 30 is 30 days of worked notice, both ends counted.
	if got := workedNoticeDays(d(2024, time.March, 1), d(2024, time.March, 30)); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	// A single-day notice still counts as one day.
	if got := workedNoticeDays(d(2024, time.March, 1), d(2024, time.March, 1)); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

// =============================================================================
// VACATION ACCRUAL
// =============================================================================

func TestLastAnniversary(t *testing.T) {
	tests := []struct {
		name         string
		start        statement.Date
		projectedEnd statement.Date
		want         statement.Date
	}{
		{
			"anniversary already passed this year",
			d(2020, time.January, 15), d(2024, time.February, 26),
			d(2024, time.January, 15),
		},
		{
			"anniversary not yet reached, steps back",
			d(2020, time.June, 10), d(2024, time.February, 26),
			d(2023, time.June, 10),
		},
		{
			"termination on the anniversary itself",
			d(2020, time.February, 26), d(2024, time.February, 26),
			d(2024, time.February, 26),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastAnniversary(tt.start, tt.projectedEnd); !got.Equal(tt.want) {
				t.Errorf("lastAnniversary = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestProportionalMonths(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{0, 0},
		{14, 0},   // under the 15-day threshold
		{15, 1},   // threshold reached
		{30, 1},   // one full month
		{44, 1},   // remainder 14, no extra month
		{45, 2},   // remainder 15 grants the extra month
		{359, 12}, // 11 months + 29-day remainder
		{365, 12},
		{500, 12}, // capped at 12/12
		{-3, 0},
	}

	for _, tt := range tests {
		if got := proportionalMonths(tt.days); got != tt.want {
			t.Errorf("proportionalMonths(%d) = %d, want %d", tt.days, got, tt.want)
		}
	}
}

// =============================================================================
// 13TH SALARY ACCRUAL
// =============================================================================

func TestThirteenthMonths(t *testing.T) {
	tests := []struct {
		name         string
		start        statement.Date
		projectedEnd statement.Date
		want         int
	}{
		{
			// Jan 1 through Feb 26: both months cover 15+ days.
			"full january plus most of february",
			d(2020, time.January, 15), d(2024, time.February, 26), 2,
		},
		{
			// Hired June 20: June covers 11 days, December covers 10; neither counts.
			"partial months under 15 days dropped",
			d(2024, time.June, 20), d(2024, time.December, 10), 5,
		},
		{
			"full calendar year",
			d(2020, time.March, 1), d(2024, time.December, 31), 12,
		},
		{
			"termination in january before day 15",
			d(2020, time.March, 1), d(2024, time.January, 10), 0,
		},
		{
			"termination on january 15 counts the month",
			d(2020, time.March, 1), d(2024, time.January, 15), 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := thirteenthMonths(tt.start, tt.projectedEnd); got != tt.want {
				t.Errorf("thirteenthMonths = %d, want %d", got, tt.want)
			}
		})
	}
}
