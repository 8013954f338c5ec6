package template

import (
	"fmt"
	"strings"
	"time"
)

// clockReading captures every field the date tokens need from a single
// instant, so no pass observes a different time than another.
type clockReading struct {
	year        int
	month       int // 1-12
	day         int // 1-31
	yearDay     int // 1-366
	weekday     int // 0-6, Sunday first
	isoWeek     int // ISO-8601 week number
	hour        int // 0-23
	minute      int
	second      int
	millisecond int
}

func readClock(now time.Time) clockReading {
	_, week := now.ISOWeek()
	return clockReading{
		year:        now.Year(),
		month:       int(now.Month()),
		day:         now.Day(),
		yearDay:     now.YearDay(),
		weekday:     int(now.Weekday()),
		isoWeek:     week,
		hour:        now.Hour(),
		minute:      now.Minute(),
		second:      now.Second(),
		millisecond: now.Nanosecond() / int(time.Millisecond),
	}
}

// English name tables, Sunday first for weekday index 0.
var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// dateToken is one bare-letter token. barred lists characters that must
// not follow the token for it to match, which keeps a short token from
// matching inside a longer one or inside a brace token's name.
type dateToken struct {
	text   string
	barred string
	render func(c clockReading) string
}

// dateTokens is ordered longest-variant-first within each letter family.
// The order is part of the expansion contract.
var dateTokens = []dateToken{
	{"YYYY", "", func(c clockReading) string { return fmt.Sprintf("%04d", c.year) }},
	{"YY", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.year%100) }},
	{"MMMM", "", func(c clockReading) string { return monthNames[c.month-1] }},
	{"MMM", "", func(c clockReading) string { return monthNames[c.month-1][:3] }},
	{"MM", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.month) }},
	{"M", "oM", func(c clockReading) string { return fmt.Sprintf("%d", c.month) }},
	{"DDD", "", func(c clockReading) string { return fmt.Sprintf("%03d", c.yearDay) }},
	{"DD", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.day) }},
	{"D", "a", func(c clockReading) string { return fmt.Sprintf("%d", c.day) }},
	{"dddd", "", func(c clockReading) string { return dayNames[c.weekday] }},
	{"ddd", "", func(c clockReading) string { return dayNames[c.weekday][:3] }},
	{"WW", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.isoWeek) }},
	{"Q", "", func(c clockReading) string { return fmt.Sprintf("%d", (c.month-1)/3+1) }},
	{"HH", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.hour) }},
	{"H", "H", func(c clockReading) string { return fmt.Sprintf("%d", c.hour) }},
	{"mm", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.minute) }},
	{"m", "m", func(c clockReading) string { return fmt.Sprintf("%d", c.minute) }},
	{"ss", "", func(c clockReading) string { return fmt.Sprintf("%02d", c.second) }},
	{"s", "s", func(c clockReading) string { return fmt.Sprintf("%d", c.second) }},
	{"SSS", "", func(c clockReading) string { return fmt.Sprintf("%03d", c.millisecond) }},
}

// expandDates runs the date pass: one sweep per token, in table order.
// Sweeps are plain sequential rewrites, so text produced by an earlier
// token is visible to later ones. Brace spans are copied through
// untouched; the brace token families own that syntax.
func expandDates(s string, c clockReading) string {
	for _, tok := range dateTokens {
		s = replaceDateToken(s, tok, c)
	}
	return s
}

func replaceDateToken(s string, tok dateToken, c clockReading) string {
	if !strings.Contains(s, tok.text) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		// Copy a complete {...} span verbatim. An unmatched brace is
		// not a span and falls through to normal scanning.
		if s[i] == '{' {
			if end := strings.IndexByte(s[i:], '}'); end >= 0 {
				b.WriteString(s[i : i+end+1])
				i += end + 1
				continue
			}
		}
		if strings.HasPrefix(s[i:], tok.text) {
			next := i + len(tok.text)
			if tok.barred == "" || next >= len(s) || !strings.ContainsRune(tok.barred, rune(s[next])) {
				b.WriteString(tok.render(c))
				i = next
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
