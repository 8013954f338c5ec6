package template

import "testing"

func TestFuncSlugify(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Meeting Notes 2025", "meeting-notes-2025"},
		{"  spaced   out  ", "spaced-out"},
		{"Q&A Session", "q-and-a-session"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
		{"under_score kept", "under_score-kept"},
	}

	for _, tt := range tests {
		if got := funcSlugify(tt.in); got != tt.expected {
			t.Errorf("funcSlugify(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestFuncHash(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", "0"},
		{"a", "61"},
		// 'a'*31 + 'b' = 3105 = 0xc21
		{"ab", "c21"},
	}

	for _, tt := range tests {
		if got := funcHash(tt.in); got != tt.expected {
			t.Errorf("funcHash(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestFuncHashWrapsAndStaysPositive(t *testing.T) {
	// Long inputs overflow 32 bits; the result must still be a valid
	// non-negative base-16 number and stay stable.
	in := "a fairly long input string that overflows a 32-bit accumulator"
	first := funcHash(in)
	second := funcHash(in)
	if first != second {
		t.Fatalf("hash unstable: %q vs %q", first, second)
	}
	if len(first) == 0 || first[0] == '-' {
		t.Errorf("hash %q should be non-negative", first)
	}
}

func TestClipSlicing(t *testing.T) {
	const text = "one two three"

	if got := clipFirstWord(text); got != "one" {
		t.Errorf("clipFirstWord = %q, want one", got)
	}
	if got := clipFirstWord("   "); got != "" {
		t.Errorf("clipFirstWord on blanks = %q, want empty", got)
	}
	if got := clipPrefix(text, 6); got != "one tw" {
		t.Errorf("clipPrefix = %q, want %q", got, "one tw")
	}
	if got := clipWord(text, 3); got != "three" {
		t.Errorf("clipWord(3) = %q, want three", got)
	}
	if got := clipWord(text, 4); got != "" {
		t.Errorf("clipWord(4) = %q, want empty", got)
	}
}
