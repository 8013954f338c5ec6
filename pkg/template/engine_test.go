package template

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestRandomToken(t *testing.T) {
	engine := New()

	for _, n := range []int{0, 1, 8, 32} {
		result := engine.Expand("{random:"+strconv.Itoa(n)+"}", nil)
		if len(result) != n {
			t.Errorf("{random:%d} expanded to %d characters: %q", n, len(result), result)
		}
		for _, c := range result {
			isAlnum := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
			if !isAlnum {
				t.Errorf("{random:%d} produced %q outside the alphanumeric alphabet", n, c)
			}
		}
	}
}

func TestRandomTokenIndependentPerOccurrence(t *testing.T) {
	engine := New()

	result := engine.Expand("{random:16}-{random:16}", nil)
	parts := strings.Split(result, "-")
	if len(parts) != 2 {
		t.Fatalf("expected two parts, got %q", result)
	}
	if parts[0] == parts[1] {
		t.Errorf("two {random:16} occurrences produced the same value %q", parts[0])
	}
}

func TestTimestampTokens(t *testing.T) {
	now := time.Date(2025, time.April, 24, 15, 30, 45, 0, time.Local)
	engine := New()
	ctx := &Context{Now: now}

	t.Run("daytime base 10", func(t *testing.T) {
		// 15*3600 + 30*60 + 45 = 55845 seconds since midnight.
		if got := engine.Expand("{daytime:10}", ctx); got != "55845" {
			t.Errorf("got %q, want 55845", got)
		}
	})

	t.Run("daytime parses back in any base", func(t *testing.T) {
		for _, base := range []int{2, 8, 16, 36} {
			got := engine.Expand("{daytime:"+strconv.Itoa(base)+"}", ctx)
			v, err := strconv.ParseInt(got, base, 64)
			if err != nil {
				t.Fatalf("base %d: %q does not parse: %v", base, got, err)
			}
			if v != 55845 {
				t.Errorf("base %d: parsed %d, want 55845", base, v)
			}
		}
	})

	t.Run("unixtime round-trips", func(t *testing.T) {
		got := engine.Expand("{unixtime:36}", ctx)
		v, err := strconv.ParseInt(got, 36, 64)
		if err != nil {
			t.Fatalf("%q does not parse as base 36: %v", got, err)
		}
		if v != now.Unix() {
			t.Errorf("parsed %d, want %d", v, now.Unix())
		}
	})

	t.Run("out of range base stays verbatim", func(t *testing.T) {
		for _, tmpl := range []string{"{unixtime:1}", "{unixtime:37}", "{daytime:0}", "{daytime:99}"} {
			if got := engine.Expand(tmpl, ctx); got != tmpl {
				t.Errorf("Expand(%q) = %q, want the token verbatim", tmpl, got)
			}
		}
	})
}

func TestUUIDToken(t *testing.T) {
	result := New().Expand("{uuid}", nil)
	if !uuidV4Pattern.MatchString(result) {
		t.Errorf("{uuid} expanded to %q, not a canonical v4 UUID", result)
	}
}

func TestShortIDToken(t *testing.T) {
	result := New().Expand("{shortid}", nil)
	if len(result) != 8 {
		t.Fatalf("{shortid} expanded to %q, want 8 characters", result)
	}
	for _, c := range result {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')) {
			t.Errorf("{shortid} produced %q outside lowercase alphanumerics", c)
		}
	}
}

func TestHashToken(t *testing.T) {
	engine := New()

	t.Run("deterministic", func(t *testing.T) {
		first := engine.Expand("{hash:meeting notes}", nil)
		second := engine.Expand("{hash:meeting notes}", nil)
		if first != second {
			t.Errorf("hash not deterministic: %q vs %q", first, second)
		}
	})

	t.Run("known values", func(t *testing.T) {
		// 'a' is code unit 97 = 0x61; the empty string hashes to 0.
		if got := engine.Expand("{hash:a}", nil); got != "61" {
			t.Errorf("{hash:a} = %q, want 61", got)
		}
		if got := engine.Expand("{hash:}", nil); got != "0" {
			t.Errorf("{hash:} = %q, want 0", got)
		}
	})
}

func TestSystemTokens(t *testing.T) {
	engine := New()

	t.Run("fallback literals", func(t *testing.T) {
		if got := engine.Expand("{hostname}-{username}", nil); got != "device-user" {
			t.Errorf("got %q, want device-user", got)
		}
	})

	t.Run("identity override", func(t *testing.T) {
		ctx := &Context{Identity: Identity{Hostname: "workstation", Username: "casey"}}
		if got := engine.Expand("{hostname}-{username}", ctx); got != "workstation-casey" {
			t.Errorf("got %q, want workstation-casey", got)
		}
	})
}

func TestCaseTokens(t *testing.T) {
	engine := New()

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"uppercase", "{uppercase:abc}", "ABC"},
		{"lowercase", "{lowercase:ABC}", "abc"},
		{"slugify", "{slugify:Meeting Notes 2025}", "meeting-notes-2025"},
		{"slugify ampersand", "{slugify:Tom & Jerry}", "tom-and-jerry"},
		{"slugify strips punctuation", "{slugify:  Hello, World!  }", "hello-world"},
		{"slugify empty", "{slugify:}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Expand(tt.template, nil); got != tt.expected {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}
}

func TestClipTokens(t *testing.T) {
	engine := New()
	ctx := &Context{Clipboard: "alpha beta gamma"}

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"first word", "{clip}", "alpha"},
		{"prefix", "{clip:4}", "alph"},
		{"prefix beyond length", "{clip:100}", "alpha beta gamma"},
		{"second word", "{clipword:2}", "beta"},
		{"out of range word", "{clipword:5}", ""},
		{"zero index", "{clipword:0}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.Expand(tt.template, ctx); got != tt.expected {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.expected)
			}
		})
	}

	t.Run("empty clipboard", func(t *testing.T) {
		if got := engine.Expand("{clip}", nil); got != "" {
			t.Errorf("Expand({clip}) with no clipboard = %q, want empty", got)
		}
	})
}

func TestMalformedTokensStayVerbatim(t *testing.T) {
	engine := New()

	tests := []string{
		"{random:abc}",
		"{random:}",
		"{counter:}",
		"{clipword:x}",
		"{unknown}",
		"{uuid",
		"plain_title_no_token",
	}

	for _, tmpl := range tests {
		if got := engine.Expand(tmpl, nil); got != tmpl {
			t.Errorf("Expand(%q) = %q, want input unchanged", tmpl, got)
		}
	}
}

func TestExpandCombinedTemplate(t *testing.T) {
	now := time.Date(2025, time.April, 24, 15, 30, 45, 0, time.Local)
	engine := New()
	ctx := &Context{Now: now, Clipboard: "standup notes"}

	got := engine.Expand("YYYY-MM-DD {slugify:Weekly Sync} {counter} {clip}", ctx)
	if got != "2025-04-24 weekly-sync 1 standup" {
		t.Errorf("got %q", got)
	}
}
