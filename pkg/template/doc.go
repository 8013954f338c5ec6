// Package template expands note filename templates.
// It applies an ordered sequence of substitution passes over the input,
// each pass handling one token family. Expansion is total: malformed or
// unrecognized tokens are left verbatim in the output instead of failing,
// so an interactive preview always has something to show.
//
// # Date and Time Tokens
//
// Bare letter sequences substituted against a single clock reading:
//   - YYYY, YY - year (4-digit, 2-digit)
//   - MMMM, MMM - month name (full, 3-letter)
//   - MM, M - month number (zero-padded, bare)
//   - DDD - day of year (zero-padded to 3)
//   - DD, D - day of month (zero-padded, bare)
//   - dddd, ddd - weekday name (full, 3-letter)
//   - WW - ISO-8601 week number (zero-padded)
//   - Q - quarter
//   - HH, H - hour (zero-padded, bare)
//   - mm, m - minute (zero-padded, bare)
//   - ss, s - second (zero-padded, bare)
//   - SSS - millisecond (zero-padded to 3)
//
// Longer tokens are substituted before shorter ones, and the date pass
// never rewrites text inside {...} spans, so brace tokens below reach
// their own passes intact.
//
// # Brace Tokens
//
// Random and identifier values:
//   - {random:N} - N alphanumeric characters, fresh per occurrence
//   - {uuid} - version-4 UUID
//   - {shortid} - 8 lowercase alphanumeric characters
//   - {hash:text} - deterministic 32-bit rolling hash of text, base 16
//
// Timestamps (base B must be in 2..36, otherwise the token stays verbatim):
//   - {unixtime:B} - Unix seconds rendered in base B
//   - {daytime:B} - seconds since local midnight rendered in base B
//
// Counters (value first, then increment; state lives in a CounterStore):
//   - {counter} - global counter, starts at 1
//   - {counter:name} - independent named counter, starts at 1
//   - {counter:reset} - resets all counters, expands to nothing
//
// System placeholders:
//   - {hostname}, {username} - identity from the Context, or the
//     fallback literals "device" and "user"
//
// Text transforms (the parameter is always literal text, never a token):
//   - {lowercase:text}, {uppercase:text} - case folding
//   - {slugify:text} - lowercased, hyphen-separated slug
//
// Clipboard (text is fetched once, before expansion, into the Context):
//   - {clip} - first whitespace-delimited word
//   - {clip:N} - first N characters
//   - {clipword:N} - Nth word, 1-indexed; out of range yields ""
package template
