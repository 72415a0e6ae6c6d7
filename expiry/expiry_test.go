package expiry

import (
	"regexp"
	"testing"
	"time"
)

func TestNextMonthFirst(t *testing.T) {
	testCases := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{"January rolls back to previous December", 2024, time.January, "2023-12-01"},
		{"June", 2024, time.June, "2024-07-01"},
		{"November", 2024, time.November, "2024-12-01"},
		{"February", 2024, time.February, "2024-03-01"},
		{"December", 2025, time.December, "2025-13-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NextMonthFirst(tc.year, tc.month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("NextMonthFirst(%d, %d) = %q, want %q", tc.year, tc.month, got, tc.want)
			}
		})
	}
}

func TestNextMonthFirstAllMonths(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-01$`)
	for month := time.January; month <= time.December; month++ {
		got, err := NextMonthFirst(2024, month)
		if err != nil {
			t.Fatalf("month %d: unexpected error: %v", month, err)
		}
		if !pattern.MatchString(got) {
			t.Errorf("month %d: %q does not match YYYY-MM-01", month, got)
		}

		// Pure function: same input, same output.
		again, _ := NextMonthFirst(2024, month)
		if again != got {
			t.Errorf("month %d: second call returned %q, first returned %q", month, again, got)
		}
	}
}

func TestNextMonthFirstRejectsOutOfRange(t *testing.T) {
	for _, month := range []time.Month{0, 13, -1} {
		if _, err := NextMonthFirst(2024, month); err == nil {
			t.Errorf("NextMonthFirst(2024, %d) expected an error, got nil", month)
		}
	}
}
