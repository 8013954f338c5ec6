package template

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Base bounds for {unixtime:B} and {daytime:B}.
const (
	minBase = 2
	maxBase = 36
)

var (
	lowerCaser = cases.Lower(language.Und)
	upperCaser = cases.Upper(language.Und)
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// funcLower case-folds the parameter of {lowercase:text}.
func funcLower(s string) string {
	return lowerCaser.String(s)
}

// funcUpper case-folds the parameter of {uppercase:text}.
func funcUpper(s string) string {
	return upperCaser.String(s)
}

// funcSlugify turns text into a lowercase hyphen-separated slug:
// whitespace runs become single hyphens, "&" becomes "-and-", anything
// other than word characters and hyphens is stripped, hyphen runs are
// collapsed and leading/trailing hyphens trimmed.
func funcSlugify(s string) string {
	s = lowerCaser.String(s)
	s = strings.TrimSpace(s)
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// funcHash computes the deterministic hash behind {hash:text}: a 32-bit
// rolling polynomial over the UTF-16 code units (h = h*31 + unit),
// wrapped to 32 bits, absolute value, rendered in base 16.
func funcHash(text string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(text)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}

// validBase reports whether b is usable for timestamp rendering.
func validBase(b int) bool {
	return b >= minBase && b <= maxBase
}

// Clipboard slicing for the {clip} token family. The engine only defines
// how fetched text is cut up; fetching is the caller's concern.

// clipFirstWord returns the first whitespace-delimited word, or "".
func clipFirstWord(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// clipPrefix returns the first n characters of text.
func clipPrefix(text string, n int) string {
	runes := []rune(text)
	if n >= len(runes) {
		return text
	}
	return string(runes[:n])
}

// clipWord returns the nth whitespace-delimited word, 1-indexed.
// An out-of-range index yields an empty string.
func clipWord(text string, n int) string {
	words := strings.Fields(text)
	if n < 1 || n > len(words) {
		return ""
	}
	return words[n-1]
}
