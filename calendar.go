package isoepoch

import "math"

// CalendarConverter stage: maps alternative-calendar date parts into
// proleptic-Gregorian {year, month, day}. Scope decision: conversion applies only to the calendar (year/month/day) date format;
// ordinal and week dates are always interpreted in the Gregorian calendar
// regardless of any calendar prefix, since every alternative-calendar
// conversion rule below is written entirely in terms of {year, month, day}.

// floorDiv is integer division rounding toward negative infinity, unlike
// Go's native truncating "/". The calendar arithmetic below depends on it to
// stay correct across the year-0 boundary and into negative years.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// toAstronomical and fromAstronomical convert between this package's signed
// year field, which has no year 0 (year -1 is the year immediately before
// year 1), and the continuous astronomical numbering that ordinary
// Gregorian day-counting algorithms are stated in terms of (where year 0 is
// 1 BCE and is itself a leap year).
func toAstronomical(year int) int64 {
	if year > 0 {
		return int64(year)
	}
	return int64(year) + 1
}

func fromAstronomical(year int64) int {
	if year > 0 {
		return int(year)
	}
	return int(year - 1)
}

// daysFromCivil and civilFromDays are Howard Hinnant's well-known
// "days_from_civil"/"civil_from_days" algorithms, adapted to Go with
// floorDiv in place of C++'s truncating division so they stay exact across
// the full proleptic range this package supports, including negative years
// well beyond what an int32 Julian day number could hold. Both run in O(1):
// the "era" term is exactly a 400-year-cycle short-circuit, and doy/yoe are
// closed forms, so there is no month-by-month loop at any step. year/month/
// day here and in civilFromDays are this package's no-year-0 numbering; the
// conversion to/from the continuous numbering the algorithm needs happens
// at the boundary.
func daysFromCivil(year, month, day int) int64 {
	y := toAstronomical(year)
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]

	m := int64(month)
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return fromAstronomical(y), int(m), int(d)
}

// addDays advances (or retracts, for negative n) a Gregorian date by n days,
// rolling over months and years as needed, honoring leap years.
func addDays(year, month, day, n int) (int, int, int) {
	return civilFromDays(daysFromCivil(year, month, day) + int64(n))
}

func floorInt(f float64) int64 {
	return int64(math.Floor(f))
}

// julianToGregorian converts a Julian-calendar date to its proleptic
// Gregorian equivalent, grounded on the standard day-difference rule
// (also implemented, in JDN form, by
// other_examples/4a361067_8i8-date__julian.go.go's CalendarJulianToJD /
// CalendarGregorianToJD pair): d = c - floor(c/4) - 2, c = floor(year/100).
func julianToGregorian(year, month, day int) (int, int, int) {
	c := floorDiv(int64(year), 100)
	delta := c - floorDiv(c, 4) - 2
	return addDays(year, month, day, int(delta))
}

// Month-offset tables for the mean-year alternative calendars: cumulative
// days before each 1-indexed month, in a 12-month year whose last month is
// the short one in a non-leap year. These are intentionally mean-year
// approximations with a documented tolerance, not astronomical
// table-based conversions.
var persianMonthOffset = cumulativeOffsets([12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29})
var lunarMonthOffset = cumulativeOffsets([12]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29})

func cumulativeOffsets(lengths [12]int) [12]int {
	var out [12]int
	total := 0
	for i, l := range lengths {
		out[i] = total
		total += l
	}
	return out
}

func monthOffset(table [12]int, month int) int {
	if month < 1 || month > 12 {
		month = 1
	}
	return table[month-1]
}

// persianToGregorian converts a Persian (Jalali) calendar date, anchored at
// the epoch 622-03-22 (proleptic Gregorian). Tolerance is documented as
// ±1 day.
func persianToGregorian(year, month, day int) (int, int, int) {
	offset := float64(year-1)*365.2422 + float64(monthOffset(persianMonthOffset, month)) + float64(day) - 1
	return addDays(622, 3, 22, int(floorInt(offset)))
}

// islamicToGregorian converts an Islamic (Hijri) calendar date, anchored at
// the epoch 622-07-16. Tolerance is documented as ±1 day.
func islamicToGregorian(year, month, day int) (int, int, int) {
	offset := float64(year-1)*354.36667 + float64(monthOffset(lunarMonthOffset, month)) + float64(day) - 1
	return addDays(622, 7, 16, int(floorInt(offset)))
}

// hebrewToGregorian converts a Hebrew calendar date, anchored at the epoch
// -3760-10-07. Tolerance is documented as ±1 day.
func hebrewToGregorian(year, month, day int) (int, int, int) {
	offset := float64(year-1)*365.2468 + float64(monthOffset(lunarMonthOffset, month)) + float64(day) - 1
	return addDays(-3760, 10, 7, int(floorInt(offset)))
}

// chineseToGregorian approximates a Chinese calendar date via a fixed
// 2698-year base offset and a mean synodic month length. Tolerance is
// documented as ±1 day.
func chineseToGregorian(year, month, day int) (int, int, int) {
	gregYear := year - 2698
	dayInYear := 45 + float64(month-1)*29.53 + float64(day) - 1
	if dayInYear > 365 {
		gregYear++
		dayInYear -= 365
	}
	return addDays(gregYear, 1, 1, int(floorInt(dayInYear))-1)
}

// convertCalendar maps date into proleptic-Gregorian {year, month, day}
// when it is a calendar-format date in a non-Gregorian system, materializing
// the "absent month/day means 1" default along the way. Ordinal
// and week dates, and any Gregorian calendar date, pass through unchanged
// beyond that same defaulting.
func convertCalendar(calendar Calendar, format dateFormat, date dateParts) dateParts {
	if format != formatCalendar {
		return date
	}

	cd := date.(calendarDateParts)
	month := 1
	if cd.month != nil {
		month = *cd.month
	}
	day := 1
	if cd.day != nil {
		day = *cd.day
	}

	var y, m, d int
	switch calendar {
	case Julian:
		y, m, d = julianToGregorian(cd.year, month, day)
	case Buddhist:
		y, m, d = cd.year-543, month, day
	case Persian:
		y, m, d = persianToGregorian(cd.year, month, day)
	case Islamic:
		y, m, d = islamicToGregorian(cd.year, month, day)
	case Hebrew:
		y, m, d = hebrewToGregorian(cd.year, month, day)
	case Chinese:
		y, m, d = chineseToGregorian(cd.year, month, day)
	default: // Gregorian
		y, m, d = cd.year, month, day
	}

	return calendarDateParts{year: y, month: &m, day: &d}
}
