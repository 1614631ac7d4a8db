package isoepoch

// EpochCalculator stage: converts a normalized date plus a
// normalized time-of-day into signed seconds (and an exact decimal
// fraction) since the Unix epoch, 1970-01-01T00:00:00Z.
//
// Day counting is closed-form throughout: leapCount below is the classic
// f(n) = floor(n/4) - floor(n/100) + floor(n/400) inclusion-exclusion count
// of leap years, and daysSinceEpoch converts the year to astronomical
// numbering and splits only at the 1970 boundary, so the same closed form
// works identically whether the target year is centuries before or after
// the epoch, including years before 1.

// leapCount returns floor(n/4) - floor(n/100) + floor(n/400): the number of
// leap years among astronomical years {1, ..., n} when n >= 1. It is
// extended to all integers n via floor division, so that for any a <= b,
// leapCount(b) - leapCount(a) counts the leap years in the astronomical
// range (a, b] — including when a, b, or both are zero or negative.
func leapCount(n int64) int64 {
	return floorDiv(n, 4) - floorDiv(n, 100) + floorDiv(n, 400)
}

// leapYearsInRange counts leap years in the astronomical range (a, b].
func leapYearsInRange(a, b int64) int64 {
	return leapCount(b) - leapCount(a)
}

// yearStartDaysSinceEpoch returns the signed number of days from
// 1970-01-01 to January 1st of astronomical year y.
func yearStartDaysSinceEpoch(y int64) int64 {
	if y >= 1970 {
		years := y - 1970
		return years*365 + leapYearsInRange(1969, y-1)
	}
	years := 1970 - y
	return -(years*365 + leapYearsInRange(y-1, 1969))
}

var monthStartOffset = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// daysSinceEpoch returns the signed number of days from the Unix epoch to
// the given proleptic-Gregorian date, in this package's no-year-0 year
// numbering.
func daysSinceEpoch(year, month, day int) int64 {
	offset := monthStartOffset[month-1]
	if month > 2 && isLeapYear(year) {
		offset++
	}
	return yearStartDaysSinceEpoch(toAstronomical(year)) + int64(offset) + int64(day-1)
}

// Result is a Unix timestamp expressed as exact seconds since the epoch,
// with an optional exact fractional part. It is never rounded through
// binary floating point: Seconds and Fraction come straight from the
// decimal pipeline that produced them.
type Result struct {
	// Seconds is the signed integer part. For instants before the epoch
	// this is negative; Fraction (when present) is always a non-negative
	// magnitude to be added toward positive infinity, matching how this
	// package resolves day rollover — i.e. -86399.25 is Seconds: -86400,
	// Fraction: "750000000".
	Seconds int64
	// Fraction holds up to 9 decimal digits, "" if the input carried no
	// fractional component at all.
	Fraction string
}

// HasFraction reports whether the input carried a fractional component (on
// its hour, minute or second, or on its zone offset), regardless of whether
// that fraction was numerically zero.
func (r Result) HasFraction() bool {
	return r.Fraction != ""
}

// String renders the result as a decimal number: plain integer seconds, or
// integer seconds plus a "." and the fractional digits when present. A
// negative result with a non-zero fraction is printed as its actual value,
// e.g. {Seconds: -86400, Fraction: "750000000"} renders as "-86399.250000000".
func (r Result) String() string {
	if !r.HasFraction() {
		return itoa64(r.Seconds)
	}
	var frac, scale int64 = 0, 1
	for i := 0; i < len(r.Fraction); i++ {
		frac = frac*10 + int64(r.Fraction[i]-'0')
		scale *= 10
	}
	if r.Seconds >= 0 || frac == 0 {
		return itoa64(r.Seconds) + "." + r.Fraction
	}
	comp := itoa64(scale - frac)
	for len(comp) < len(r.Fraction) {
		comp = "0" + comp
	}
	return "-" + itoa64(-(r.Seconds+1)) + "." + comp
}

func itoa64(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// computeEpoch assembles the final epoch Result from a normalized date and
// a normalized time-of-day, applying the day adjustment zone rollover left
// behind in normalizedTime.
func computeEpoch(date NormalizedDate, t normalizedTime) Result {
	days := daysSinceEpoch(date.Year, date.Month, date.Day) + int64(t.dayAdjust)
	seconds := days*secondsPerDay + t.seconds

	fraction := ""
	if t.hasFractional {
		_, fracDigits, _ := t.fraction.splitTruncated(maxFractionalSecondDigits)
		fraction = fracDigits
	}

	return Result{Seconds: seconds, Fraction: fraction}
}
