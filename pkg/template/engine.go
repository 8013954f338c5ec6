package template

import (
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Engine expands templates by applying substitution passes in a fixed
// order, one token family per pass. All mutable state lives in the
// attached CounterStore; everything else is derived from the Context.
//
// The engine never fails: a token with a malformed parameter (non-numeric
// length, base outside 2..36, unmatched brace) stays verbatim in the
// output so the caller always gets an inspectable result.
type Engine struct {
	counters *CounterStore
}

// New creates an engine with a fresh counter store.
func New() *Engine {
	return &Engine{counters: NewCounterStore()}
}

// NewWithCounters creates an engine backed by an existing counter store,
// for callers that persist counter state between runs.
func NewWithCounters(store *CounterStore) *Engine {
	if store == nil {
		store = NewCounterStore()
	}
	return &Engine{counters: store}
}

// Counters returns the engine's counter store.
func (e *Engine) Counters() *CounterStore {
	return e.counters
}

// Compiled patterns for the brace token families. Only well-formed
// tokens match; anything else never enters a pass and stays literal.
var (
	randomPattern   = regexp.MustCompile(`\{random:(\d+)\}`)
	unixtimePattern = regexp.MustCompile(`\{unixtime:(\d+)\}`)
	daytimePattern  = regexp.MustCompile(`\{daytime:(\d+)\}`)
	uuidPattern     = regexp.MustCompile(`\{uuid\}`)
	shortidPattern  = regexp.MustCompile(`\{shortid\}`)
	hashPattern     = regexp.MustCompile(`\{hash:([^{}]*)\}`)
	counterPattern  = regexp.MustCompile(`\{counter(:([^{}]*))?\}`)
	hostnamePattern = regexp.MustCompile(`\{hostname\}`)
	usernamePattern = regexp.MustCompile(`\{username\}`)
	casePattern     = regexp.MustCompile(`\{(lowercase|uppercase|slugify):([^{}]*)\}`)
	clipPattern     = regexp.MustCompile(`\{clip\}`)
	clipNPattern    = regexp.MustCompile(`\{clip:(\d+)\}`)
	clipWordPattern = regexp.MustCompile(`\{clipword:(\d+)\}`)
)

// Expand applies every substitution pass to the template and returns the
// finished string. The pass order is part of the contract: date tokens
// first, then random, timestamps, identifiers, counters, system
// placeholders, text transforms and finally clipboard tokens. Each pass
// scans left to right and owns its trigger syntax, so a token consumed
// by an earlier pass is gone by the time a later pass runs.
//
// Counter tokens advance the store as a side effect; nothing else
// mutates state.
func (e *Engine) Expand(template string, ctx *Context) string {
	if ctx == nil {
		ctx = &Context{}
	}
	now := ctx.Now
	if now.IsZero() {
		now = time.Now()
	}
	clock := readClock(now)

	out := expandDates(template, clock)
	out = e.expandRandom(out, ctx)
	out = e.expandTimestamps(out, now.Unix(), clock)
	out = e.expandIdentifiers(out, ctx)
	out = e.expandCounters(out)
	out = e.expandSystem(out, ctx)
	out = e.expandCase(out)
	out = e.expandClip(out, ctx)
	return out
}

// expandRandom handles {random:N}, drawing fresh characters per
// occurrence.
func (e *Engine) expandRandom(s string, ctx *Context) string {
	return randomPattern.ReplaceAllStringFunc(s, func(match string) string {
		n, err := strconv.Atoi(randomPattern.FindStringSubmatch(match)[1])
		if err != nil {
			return match
		}
		return randomToken(ctx.Rand, n)
	})
}

// expandTimestamps handles {unixtime:B} and {daytime:B}. An out-of-range
// base leaves the token verbatim.
func (e *Engine) expandTimestamps(s string, unix int64, clock clockReading) string {
	s = unixtimePattern.ReplaceAllStringFunc(s, func(match string) string {
		base, err := strconv.Atoi(unixtimePattern.FindStringSubmatch(match)[1])
		if err != nil || !validBase(base) {
			return match
		}
		return strconv.FormatInt(unix, base)
	})

	daySeconds := int64(clock.hour*3600 + clock.minute*60 + clock.second)
	return daytimePattern.ReplaceAllStringFunc(s, func(match string) string {
		base, err := strconv.Atoi(daytimePattern.FindStringSubmatch(match)[1])
		if err != nil || !validBase(base) {
			return match
		}
		return strconv.FormatInt(daySeconds, base)
	})
}

// expandIdentifiers handles {uuid}, {shortid} and {hash:text}.
func (e *Engine) expandIdentifiers(s string, ctx *Context) string {
	s = uuidPattern.ReplaceAllStringFunc(s, func(string) string {
		if ctx.Rand != nil {
			return rngUUID(ctx.Rand)
		}
		return uuid.New().String()
	})
	s = shortidPattern.ReplaceAllStringFunc(s, func(string) string {
		return shortIDToken(ctx.Rand)
	})
	return hashPattern.ReplaceAllStringFunc(s, func(match string) string {
		return funcHash(hashPattern.FindStringSubmatch(match)[1])
	})
}

// expandCounters handles {counter}, {counter:name} and {counter:reset}.
// Occurrences are processed left to right and each advances its counter
// independently. A reset zeroes the named map, puts the global counter
// back to 1 and expands to nothing. "{counter:}" is malformed and stays
// verbatim.
func (e *Engine) expandCounters(s string) string {
	return counterPattern.ReplaceAllStringFunc(s, func(match string) string {
		m := counterPattern.FindStringSubmatch(match)
		if m[1] == "" {
			return strconv.FormatInt(e.counters.NextGlobal(), 10)
		}
		switch name := m[2]; name {
		case "":
			return match
		case "reset":
			e.counters.Reset()
			return ""
		default:
			return strconv.FormatInt(e.counters.Next(name), 10)
		}
	})
}

// expandSystem handles {hostname} and {username}.
func (e *Engine) expandSystem(s string, ctx *Context) string {
	s = hostnamePattern.ReplaceAllLiteralString(s, ctx.hostname())
	return usernamePattern.ReplaceAllLiteralString(s, ctx.username())
}

// expandCase handles {lowercase:text}, {uppercase:text} and
// {slugify:text}. Parameters are always literal text.
func (e *Engine) expandCase(s string) string {
	return casePattern.ReplaceAllStringFunc(s, func(match string) string {
		m := casePattern.FindStringSubmatch(match)
		switch m[1] {
		case "lowercase":
			return funcLower(m[2])
		case "uppercase":
			return funcUpper(m[2])
		default:
			return funcSlugify(m[2])
		}
	})
}

// expandClip handles {clip}, {clip:N} and {clipword:N} against the
// clipboard text fetched into the Context before expansion.
func (e *Engine) expandClip(s string, ctx *Context) string {
	s = clipPattern.ReplaceAllLiteralString(s, clipFirstWord(ctx.Clipboard))
	s = clipNPattern.ReplaceAllStringFunc(s, func(match string) string {
		n, err := strconv.Atoi(clipNPattern.FindStringSubmatch(match)[1])
		if err != nil {
			return match
		}
		return clipPrefix(ctx.Clipboard, n)
	})
	return clipWordPattern.ReplaceAllStringFunc(s, func(match string) string {
		n, err := strconv.Atoi(clipWordPattern.FindStringSubmatch(match)[1])
		if err != nil {
			return match
		}
		return clipWord(ctx.Clipboard, n)
	})
}
