package timecodec

import (
	"math"
	"time"
)

// Julian day numbers give the driver a calendar-free day count to store
// date-times as a single REAL. The forward transform follows the classic
// astronomical algorithm, including the Gregorian reform branch: dates in
// years before 1582 use the Julian calendar and take no correction term.

// ToJulianDay converts t (taken as UTC) to a Julian day number. The whole
// part counts days; the fraction encodes the time of day, with the
// half-day offset placing day boundaries at noon as the astronomical
// convention requires.
func ToJulianDay(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()
	m := int(month)

	frac := float64(day) +
		(float64(t.Hour())+
			float64(t.Minute())/60+
			(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600)/24

	if m < 3 {
		year--
		m += 12
	}

	var b float64
	if year >= 1582 {
		a := year / 100
		b = float64(2 - a + a/4)
	}

	var c float64
	if year >= 0 {
		c = math.Floor(365.25 * float64(year))
	} else {
		c = math.Floor(365.25*float64(year) - 0.75)
	}

	d := math.Floor(30.6001 * float64(m+1))

	return b + c + d + 1720994.5 + frac
}

// FromJulianDay converts a Julian day number back to a calendar date. Only
// the date is reconstructed: the time of day the fraction may carry is
// dropped and the result is midnight UTC. The asymmetry with ToJulianDay
// is deliberate and long-standing driver behavior; callers that need the
// time of day use one of the other encodings.
func FromJulianDay(jd float64) time.Time {
	z := math.Floor(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)

	month := e - 1
	if e >= 13.5 {
		month = e - 13
	}

	year := c - 4715
	if month > 2.5 {
		year = c - 4716
	}

	return time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}
