package template

import (
	"testing"
	"time"
)

func expandAt(t *testing.T, tmpl string, now time.Time) string {
	t.Helper()
	return New().Expand(tmpl, &Context{Now: now})
}

func TestDateTokens(t *testing.T) {
	now := time.Date(2025, time.April, 24, 15, 30, 45, 123*int(time.Millisecond), time.Local)

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"full stamp", "YYYY-MM-DD_HH-mm-ss", "2025-04-24_15-30-45"},
		{"short year", "YY", "25"},
		{"padded month", "MM", "04"},
		{"bare month", "M", "4"},
		{"padded day", "DD", "24"},
		{"day of year", "DDD", "114"},
		{"iso week", "WW", "17"},
		{"quarter", "Q", "2"},
		{"padded hour", "HH", "15"},
		{"milliseconds", "SSS", "123"},
		{"literal text survives", "note-YYYY.txt", "note-2025.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandAt(t, tt.template, now); got != tt.expected {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}

func TestDateTokensNoLeadingZero(t *testing.T) {
	now := time.Date(2025, time.April, 5, 9, 5, 7, 4*int(time.Millisecond), time.Local)

	tests := []struct {
		template string
		expected string
	}{
		{"M-D H:m:s", "4-5 9:5:7"},
		{"MM-DD HH:mm:ss", "04-05 09:05:07"},
		{"SSS", "004"},
	}

	for _, tt := range tests {
		if got := expandAt(t, tt.template, now); got != tt.expected {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
		}
	}
}

func TestDateNameTokens(t *testing.T) {
	// A Friday: the only weekday names free of letters that later date
	// sweeps would rewrite are Friday, Monday and Sunday.
	now := time.Date(2025, time.April, 25, 12, 0, 0, 0, time.Local)

	tests := []struct {
		template string
		expected string
	}{
		{"dddd", "Friday"},
		{"ddd", "Fri"},
		{"MMMM", "April"},
		{"MMM", "Apr"},
	}

	for _, tt := range tests {
		if got := expandAt(t, tt.template, now); got != tt.expected {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
		}
	}
}

func TestDateTokenGuards(t *testing.T) {
	now := time.Date(2025, time.April, 24, 15, 30, 45, 0, time.Local)

	// M before o, D before a, H before H, m before m, s before s must
	// not match on their own.
	tests := []struct {
		template string
		expected string
	}{
		{"Mo", "Mo"},
		{"Da", "Da"},
	}

	for _, tt := range tests {
		if got := expandAt(t, tt.template, now); got != tt.expected {
			t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
		}
	}
}

func TestDatePassLeavesBraceTokensAlone(t *testing.T) {
	// "daytime" and "slugify" contain date letters; the date sweeps must
	// not rewrite brace spans or the later passes would never see their
	// tokens.
	now := time.Date(2025, time.April, 24, 15, 30, 45, 0, time.Local)

	if got := expandAt(t, "{daytime:10}", now); got != "55845" {
		t.Errorf("Expand({daytime:10}) = %q, want 55845", got)
	}
	if got := expandAt(t, "{slugify:MD}", now); got != "md" {
		t.Errorf("Expand({slugify:MD}) = %q, want md", got)
	}
}

func TestISOWeekAcrossYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday and belongs to ISO week 1 of 2025.
	now := time.Date(2024, time.December, 30, 10, 0, 0, 0, time.Local)
	if got := expandAt(t, "WW", now); got != "01" {
		t.Errorf("Expand(WW) = %q, want 01", got)
	}
}
