package budgety

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", NewDate(2025, time.July, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{" 2025-12-31 ", NewDate(2025, time.December, 31)},
		{"2025-07-01T10:30:00Z", NewDate(2025, time.July, 1)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "not-a-date", "2025/07/01", "1d"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateNormalization(t *testing.T) {
	// Out-of-range components roll over like time.Date.
	if got := NewDate(2025, time.January, 32); got != NewDate(2025, time.February, 1) {
		t.Errorf("NewDate(2025, 1, 32) = %s", got)
	}
	if got := NewDate(2025, time.March, 0); got != NewDate(2025, time.February, 28) {
		t.Errorf("NewDate(2025, 3, 0) = %s", got)
	}
}

func TestStartEndOfPeriod(t *testing.T) {
	d := MustParseDate("2025-07-16") // a Wednesday
	tests := []struct {
		period     Period
		start, end string
	}{
		{Weekly, "2025-07-14", "2025-07-20"},
		{Monthly, "2025-07-01", "2025-07-31"},
		{Yearly, "2025-01-01", "2025-12-31"},
	}
	for _, tc := range tests {
		if got := d.StartOf(tc.period); got != MustParseDate(tc.start) {
			t.Errorf("%s StartOf(%s) = %s, want %s", d, tc.period, got, tc.start)
		}
		if got := d.EndOf(tc.period); got != MustParseDate(tc.end) {
			t.Errorf("%s EndOf(%s) = %s, want %s", d, tc.period, got, tc.end)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParseDate("2025-07-01")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-07-01"` {
		t.Errorf("Marshal = %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParseDate("2025-07-01"), MustParseDate("2025-07-31"))
	for _, in := range []string{"2025-07-01", "2025-07-15", "2025-07-31"} {
		if !r.Contains(MustParseDate(in)) {
			t.Errorf("%s should be in %v", in, r)
		}
	}
	for _, out := range []string{"2025-06-30", "2025-08-01"} {
		if r.Contains(MustParseDate(out)) {
			t.Errorf("%s should not be in %v", out, r)
		}
	}

	// NewRange swaps inverted bounds.
	swapped := NewRange(MustParseDate("2025-07-31"), MustParseDate("2025-07-01"))
	if swapped != r {
		t.Errorf("NewRange did not swap: %v", swapped)
	}
}
