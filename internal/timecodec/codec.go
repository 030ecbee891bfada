// Package timecodec converts between in-memory date-time values and the
// four on-disk representations the driver supports: .NET-style ticks,
// ISO-8601 text, Julian day numbers and Unix epoch seconds. A Codec holds
// exactly one piece of state, the selected encoding, and is immutable
// after construction; the same Codec may be shared across goroutines.
//
// All parsing and formatting is locale-invariant: strconv for numbers,
// explicit layouts for dates, everything pinned to UTC.
package timecodec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateEncoding selects how date-time values are stored. The zero value is
// ISO8601, the driver default.
type DateEncoding int

const (
	// ISO8601 stores text; canonical output is
	// "yyyy-MM-dd HH:mm:ss.fffffff" (seven fractional digits), input may
	// be any of the seventeen accepted layouts.
	ISO8601 DateEncoding = iota
	// Ticks stores the integer count of 100-nanosecond intervals since
	// 0001-01-01T00:00:00 UTC.
	Ticks
	// JulianDay stores a floating-point day count; the fraction encodes
	// time of day.
	JulianDay
	// UnixEpoch stores integer whole seconds since
	// 1970-01-01T00:00:00 UTC.
	UnixEpoch
)

var encodingNames = [...]string{
	ISO8601:   "iso8601",
	Ticks:     "ticks",
	JulianDay: "julianday",
	UnixEpoch: "unixepoch",
}

// String returns the lower-case encoding name used in connection strings.
func (e DateEncoding) String() string {
	if e < ISO8601 || e > UnixEpoch {
		return "DateEncoding(" + strconv.Itoa(int(e)) + ")"
	}
	return encodingNames[e]
}

// ParseEncoding maps a connection-string fragment to a DateEncoding,
// case-insensitively. Unrecognized names fail with a FormatError.
func ParseEncoding(s string) (DateEncoding, error) {
	switch strings.ToLower(s) {
	case "iso8601":
		return ISO8601, nil
	case "ticks":
		return Ticks, nil
	case "julianday":
		return JulianDay, nil
	case "unixepoch":
		return UnixEpoch, nil
	}
	return ISO8601, &FormatError{Input: s}
}

// FormatError reports text that matches none of the accepted layouts for
// the active encoding. It carries the offending input and is surfaced to
// the caller as-is; this package never logs or retries.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timecodec: %q does not match any supported date/time format", e.Input)
}

const (
	ticksPerSecond = int64(10_000_000) // one tick is 100ns

	// Seconds from the tick epoch (0001-01-01T00:00:00 UTC) to the Unix
	// epoch. Conversions go through integer seconds rather than
	// time.Duration, which overflows at roughly 292 years.
	tickEpochToUnix = int64(62_135_596_800)
)

// Codec converts date-time values to and from the textual form stored in
// the database, using the encoding fixed at construction.
type Codec struct {
	enc DateEncoding
}

// New returns a Codec for the given encoding.
func New(enc DateEncoding) Codec {
	return Codec{enc: enc}
}

// Encoding returns the encoding the codec was constructed with.
func (c Codec) Encoding() DateEncoding {
	return c.enc
}

// Encode renders t in the codec's encoding. The value is converted to UTC
// before encoding; sub-resolution precision (below 100ns for Ticks, below
// one second for UnixEpoch) is truncated.
func (c Codec) Encode(t time.Time) string {
	t = t.UTC()
	switch c.enc {
	case Ticks:
		return strconv.FormatInt(ticksOf(t), 10)
	case JulianDay:
		return strconv.FormatFloat(ToJulianDay(t), 'f', -1, 64)
	case UnixEpoch:
		// Truncate toward zero on the tick-to-second division.
		return strconv.FormatInt((ticksOf(t)-tickEpochToUnix*ticksPerSecond)/ticksPerSecond, 10)
	default:
		return t.Format(isoOutputLayout)
	}
}

// Decode parses text produced by (or compatible with) the codec's
// encoding. Julian-day decoding reconstructs the calendar date only; the
// time of day carried by the fraction is intentionally dropped, so
// Decode(Encode(v)) under JulianDay yields midnight of v's date. Text that
// fits no accepted layout fails with a FormatError.
func (c Codec) Decode(s string) (time.Time, error) {
	switch c.enc {
	case Ticks:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, &FormatError{Input: s}
		}
		return timeOfTicks(n), nil
	case JulianDay:
		jd, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, &FormatError{Input: s}
		}
		return FromJulianDay(jd), nil
	case UnixEpoch:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, &FormatError{Input: s}
		}
		return time.Unix(n, 0).UTC(), nil
	default:
		return parseISO(s)
	}
}

// ticksOf counts 100ns intervals from 0001-01-01T00:00:00 UTC to t.
func ticksOf(t time.Time) int64 {
	secs := t.Unix() + tickEpochToUnix
	return secs*ticksPerSecond + int64(t.Nanosecond())/100
}

// timeOfTicks is the inverse of ticksOf.
func timeOfTicks(n int64) time.Time {
	secs := n / ticksPerSecond
	rem := n % ticksPerSecond
	return time.Unix(secs-tickEpochToUnix, rem*100).UTC()
}
