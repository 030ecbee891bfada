package timecodec

import "time"

// isoOutputLayout is the one canonical output form: seven fractional
// digits, always emitted.
const isoOutputLayout = "2006-01-02 15:04:05.0000000"

// isoLayout is one accepted input layout. timeOnly marks the bare
// time-of-day forms, whose parse result carries no date; those are rebased
// onto 0001-01-01 so a time-only value still lands on the driver's epoch
// date rather than Go's year-zero placeholder.
type isoLayout struct {
	layout   string
	timeOnly bool
}

// isoInputLayouts are tried in order until one matches the whole input.
// The order is fixed: bare time first, then date-only, then the combined
// forms with space and 'T' separators, then the compact digit runs. The
// seventeenth accepted form, compact date-time with a dotless fraction
// ("yyyyMMddTHHmmss" plus up to seven digits), cannot be spelled as a Go
// layout and is handled by parseCompactT below.
var isoInputLayouts = []isoLayout{
	{"T150405", true},
	{"T1504", true},
	{"15:04:05.9999999", true},
	{"15:04:05", true},
	{"15:04", true},
	{"06-01-02", false},
	{"2006-01-02", false},
	{"20060102", false},
	{"2006-01-02 15:04:05.9999999", false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02T15:04:05.9999999", false},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"20060102150405", false},
	{"200601021504", false},
}

// parseISO tries each accepted layout in order. A layout matches only if
// it consumes the whole input (time.Parse rejects trailing text), so there
// is no partial matching between the similar forms.
func parseISO(s string) (time.Time, error) {
	for _, l := range isoInputLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		if l.timeOnly {
			return time.Date(1, time.January, 1,
				t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC), nil
		}
		return t.UTC(), nil
	}
	if t, ok := parseCompactT(s); ok {
		return t, nil
	}
	return time.Time{}, &FormatError{Input: s}
}

// parseCompactT parses the compact combined form "yyyyMMddTHHmmss"
// followed by zero to seven fractional-second digits with no dot. The
// prefix goes through time.Parse so invalid calendar dates are rejected
// the same way the other layouts reject them; only the dotless fraction
// is parsed by hand.
func parseCompactT(s string) (time.Time, bool) {
	if len(s) < 15 || len(s) > 22 || s[8] != 'T' {
		return time.Time{}, false
	}

	t, err := time.Parse("20060102T150405", s[:15])
	if err != nil {
		return time.Time{}, false
	}

	// Fraction digits are ticks, most significant first: pad to seven and
	// scale to nanoseconds.
	var ticks int64
	frac := s[15:]
	for _, c := range []byte(frac) {
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
		ticks = ticks*10 + int64(c-'0')
	}
	for i := len(frac); i < 7; i++ {
		ticks *= 10
	}

	return t.Add(time.Duration(ticks * 100)).UTC(), true
}
