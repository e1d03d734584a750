package statement_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/warp/rescisao-engine/statement"
)

func date(year int, month time.Month, day int) statement.Date {
	return statement.NewDate(year, month, day)
}

func TestParseDate(t *testing.T) {
	d, err := statement.ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 15 {
		t.Errorf("parsed wrong date: %s", d)
	}

	if _, err := statement.ParseDate("15/01/2024"); err == nil {
		t.Error("expected error for non-ISO format")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from statement.Date
		to   statement.Date
		want int
	}{
		{"same day", date(2024, time.March, 10), date(2024, time.March, 10), 0},
		{"one day", date(2024, time.March, 10), date(2024, time.March, 11), 1},
		{"across leap day", date(2024, time.February, 28), date(2024, time.March, 1), 2},
		{"four years with leap", date(2020, time.January, 15), date(2024, time.January, 15), 1461},
		{"reversed is negative", date(2024, time.March, 11), date(2024, time.March, 10), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statement.DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in   statement.Date
		want statement.Date
	}{
		{date(2024, time.February, 10), date(2024, time.February, 29)},
		{date(2023, time.February, 10), date(2023, time.February, 28)},
		{date(2024, time.December, 1), date(2024, time.December, 31)},
	}
	for _, tt := range tests {
		if got := statement.EndOfMonth(tt.in); !got.Equal(tt.want) {
			t.Errorf("EndOfMonth(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := date(2024, time.February, 26)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-02-26"` {
		t.Errorf("expected quoted ISO date, got %s", b)
	}

	var back statement.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed date: %s != %s", back, d)
	}
}

func TestDate_Max(t *testing.T) {
	a := date(2024, time.March, 10)
	b := date(2024, time.April, 2)
	if !a.Max(b).Equal(b) {
		t.Error("Max should pick the later date")
	}
	if !b.Max(a).Equal(b) {
		t.Error("Max should be symmetric")
	}
}
