package isoepoch

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser stage: lexes a datetime string into a parsedInput
// record. It performs no semantic validation of values — a month of 13 is
// accepted here and rejected later, by DateNormalizer.

var reCalendarPrefix = regexp.MustCompile(`^([a-z]+):(.*)$`)

// splitCalendarPrefix detects the leading "name:" calendar indicator.
func splitCalendarPrefix(s string) (prefix string, hasPrefix bool, rest string) {
	if m := reCalendarPrefix.FindStringSubmatch(s); m != nil {
		return m[1], true, m[2]
	}
	return "", false, s
}

// splitOnT splits s on its first 'T', per the top-level splitting rule.
func splitOnT(s string) (datePart, afterT string, hasT bool) {
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// splitZone extracts the trailing zone designator (Z, or a signed offset
// run) from a time-plus-optional-zone string. Any '+' or '-' appearing after
// T belongs to the zone: the time grammar itself never contains a sign.
func splitZone(s string) (timeStr, zoneStr string, hasZone bool) {
	if strings.HasSuffix(s, "Z") {
		return s[:len(s)-1], "Z", true
	}
	if idx := strings.IndexAny(s, "+-"); idx >= 0 {
		return s[:idx], s[idx:], true
	}
	return s, "", false
}

const yearTok = `[+-]?\d{1,6}`

var (
	reCalDMY      = regexp.MustCompile(`^(` + yearTok + `)-(\d{2})-(\d{2})$`)
	reCalYM       = regexp.MustCompile(`^(` + yearTok + `)-(\d{2})$`)
	reAmbiguous6  = regexp.MustCompile(`^(\d{6})$`)
	reCalY        = regexp.MustCompile(`^(` + yearTok + `)$`)
	reCalPacked   = regexp.MustCompile(`^([+-]?)(\d{4})(\d{2})(\d{2})$`)
	reOrdSep      = regexp.MustCompile(`^(` + yearTok + `)-(\d{3})$`)
	reOrdPacked   = regexp.MustCompile(`^(\d{7})$`)
	reWeekSepD    = regexp.MustCompile(`^(` + yearTok + `)-W(\d{2})-(\d)$`)
	reWeekPackedD = regexp.MustCompile(`^([+-]?)(\d{4})W(\d{2})(\d)$`)
	reWeekSep     = regexp.MustCompile(`^(` + yearTok + `)-W(\d{2})$`)
	reWeekPacked  = regexp.MustCompile(`^([+-]?)(\d{4})W(\d{2})$`)
)

func mustAtoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic("isoepoch: regex guaranteed a numeral but got " + s)
	}
	return v
}

func signedDigits(sign, digits string) int {
	v := mustAtoi(digits)
	if sign == "-" {
		return -v
	}
	return v
}

// parseDateFormat tries calendar patterns, then ordinal, then week; first
// match wins globally.
func parseDateFormat(datePart, original string) (dateFormat, dateParts, *Error) {
	if m := reCalDMY.FindStringSubmatch(datePart); m != nil {
		year, month, day := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return formatCalendar, calendarDateParts{year: year, month: &month, day: &day}, nil
	}
	if m := reCalYM.FindStringSubmatch(datePart); m != nil {
		year, month := mustAtoi(m[1]), mustAtoi(m[2])
		return formatCalendar, calendarDateParts{year: year, month: &month}, nil
	}
	if reAmbiguous6.MatchString(datePart) {
		return 0, nil, ambiguousErr(original)
	}
	if m := reCalY.FindStringSubmatch(datePart); m != nil {
		year := mustAtoi(m[1])
		return formatCalendar, calendarDateParts{year: year}, nil
	}
	if m := reCalPacked.FindStringSubmatch(datePart); m != nil {
		year := signedDigits(m[1], m[2])
		month, day := mustAtoi(m[3]), mustAtoi(m[4])
		return formatCalendar, calendarDateParts{year: year, month: &month, day: &day}, nil
	}

	if m := reOrdSep.FindStringSubmatch(datePart); m != nil {
		year, ordinal := mustAtoi(m[1]), mustAtoi(m[2])
		return formatOrdinal, ordinalDateParts{year: year, ordinalDay: ordinal}, nil
	}
	if m := reOrdPacked.FindStringSubmatch(datePart); m != nil {
		digits := m[1]
		year := mustAtoi(digits[0:4])
		ordinal := mustAtoi(digits[4:7])
		return formatOrdinal, ordinalDateParts{year: year, ordinalDay: ordinal}, nil
	}

	if m := reWeekSepD.FindStringSubmatch(datePart); m != nil {
		year, week, wd := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return formatWeek, weekDateParts{year: year, week: week, weekday: &wd}, nil
	}
	if m := reWeekPackedD.FindStringSubmatch(datePart); m != nil {
		year := signedDigits(m[1], m[2])
		week, wd := mustAtoi(m[3]), mustAtoi(m[4])
		return formatWeek, weekDateParts{year: year, week: week, weekday: &wd}, nil
	}
	if m := reWeekSep.FindStringSubmatch(datePart); m != nil {
		year, week := mustAtoi(m[1]), mustAtoi(m[2])
		return formatWeek, weekDateParts{year: year, week: week}, nil
	}
	if m := reWeekPacked.FindStringSubmatch(datePart); m != nil {
		year := signedDigits(m[1], m[2])
		week := mustAtoi(m[3])
		return formatWeek, weekDateParts{year: year, week: week}, nil
	}

	return 0, nil, formatErr("date", datePart, original)
}

var (
	reTimeHMSFrac = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})\.(\d+)$`)
	reTimeHMSFracP = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})\.(\d+)$`)
	reTimeHMS     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
	reTimeHMSP    = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})$`)
	reTimeHMFrac  = regexp.MustCompile(`^(\d{2}):(\d{2})\.(\d+)$`)
	reTimeHMFracP = regexp.MustCompile(`^(\d{2})(\d{2})\.(\d+)$`)
	reTimeHM      = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
	reTimeHMP     = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	reTimeHFrac   = regexp.MustCompile(`^(\d{2})\.(\d+)$`)
	reTimeH       = regexp.MustCompile(`^(\d{2})$`)
)

// lexTime classifies a single time token by trying, in order, the ten
// hour/minute/second patterns ISO-8601 allows. The fraction (if any)
// belongs to the smallest unit present.
func lexTime(s string) (*timeParts, bool) {
	if m := reTimeHMSFrac.FindStringSubmatch(s); m != nil {
		h, mi, sec := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return &timeParts{hour: h, minute: &mi, second: &sec, fractional: m[4], unit: unitSecond}, true
	}
	if m := reTimeHMSFracP.FindStringSubmatch(s); m != nil {
		h, mi, sec := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return &timeParts{hour: h, minute: &mi, second: &sec, fractional: m[4], unit: unitSecond}, true
	}
	if m := reTimeHMS.FindStringSubmatch(s); m != nil {
		h, mi, sec := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return &timeParts{hour: h, minute: &mi, second: &sec, unit: unitSecond}, true
	}
	if m := reTimeHMSP.FindStringSubmatch(s); m != nil {
		h, mi, sec := mustAtoi(m[1]), mustAtoi(m[2]), mustAtoi(m[3])
		return &timeParts{hour: h, minute: &mi, second: &sec, unit: unitSecond}, true
	}
	if m := reTimeHMFrac.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[1]), mustAtoi(m[2])
		return &timeParts{hour: h, minute: &mi, fractional: m[3], unit: unitMinute}, true
	}
	if m := reTimeHMFracP.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[1]), mustAtoi(m[2])
		return &timeParts{hour: h, minute: &mi, fractional: m[3], unit: unitMinute}, true
	}
	if m := reTimeHM.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[1]), mustAtoi(m[2])
		return &timeParts{hour: h, minute: &mi, unit: unitMinute}, true
	}
	if m := reTimeHMP.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[1]), mustAtoi(m[2])
		return &timeParts{hour: h, minute: &mi, unit: unitMinute}, true
	}
	if m := reTimeHFrac.FindStringSubmatch(s); m != nil {
		h := mustAtoi(m[1])
		return &timeParts{hour: h, fractional: m[2], unit: unitHour}, true
	}
	if m := reTimeH.FindStringSubmatch(s); m != nil {
		h := mustAtoi(m[1])
		return &timeParts{hour: h, unit: unitHour}, true
	}
	return nil, false
}

var (
	reZoneColon = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)
	reZoneHHMM  = regexp.MustCompile(`^([+-])(\d{2})(\d{2})$`)
	reZoneFrac  = regexp.MustCompile(`^([+-])(\d{2})\.(\d+)$`)
	reZoneHH    = regexp.MustCompile(`^([+-])(\d{2})$`)
)

// lexZone classifies a zone designator: Z, ±hh, ±hhmm, ±hh:mm, or ±hh.dddd.
func lexZone(s string) (*zoneInfo, bool) {
	if s == "Z" {
		return &zoneInfo{isUTC: true}, true
	}
	sign := func(tok string) int {
		if tok == "-" {
			return -1
		}
		return 1
	}
	if m := reZoneColon.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[2]), mustAtoi(m[3])
		return &zoneInfo{sign: sign(m[1]), hours: h, minutes: &mi}, true
	}
	if m := reZoneHHMM.FindStringSubmatch(s); m != nil {
		h, mi := mustAtoi(m[2]), mustAtoi(m[3])
		return &zoneInfo{sign: sign(m[1]), hours: h, minutes: &mi}, true
	}
	if m := reZoneFrac.FindStringSubmatch(s); m != nil {
		h := mustAtoi(m[2])
		return &zoneInfo{sign: sign(m[1]), hours: h, fractional: m[3]}, true
	}
	if m := reZoneHH.FindStringSubmatch(s); m != nil {
		h := mustAtoi(m[2])
		return &zoneInfo{sign: sign(m[1]), hours: h}, true
	}
	return nil, false
}

// parse lexes the original input into a parsedInput record, or fails with
// Format, Ambiguous, UnsupportedCalendar, or MissingDate.
func parse(original string) (*parsedInput, *Error) {
	prefix, hasPrefix, rest := splitCalendarPrefix(original)

	datePart, afterT, hasT := splitOnT(rest)

	if hasT && datePart == "" {
		return nil, missingDateErr("", original)
	}
	if !hasT {
		if _, ok := lexZone(datePart); ok {
			return nil, missingDateErr(datePart, original)
		}
	}

	// Lexical format is validated before the calendar indicator's name, per
	// the normative check order: a date that matches no recognized pattern
	// is a Format error even when its calendar prefix is also unrecognized.
	format, date, err := parseDateFormat(datePart, original)
	if err != nil {
		return nil, err
	}

	calendar := Gregorian
	if hasPrefix {
		calendar = Calendar(prefix)
		if !isSupportedCalendar(calendar) {
			return nil, unsupportedCalendarErr(prefix, original)
		}
	}

	p := &parsedInput{
		calendar: calendar,
		format:   format,
		date:     date,
		original: original,
	}

	if hasT {
		timeStr, zoneStr, hasZone := splitZone(afterT)
		if timeStr == "" {
			return nil, formatErr("time", timeStr, original)
		}

		tp, ok := lexTime(timeStr)
		if !ok {
			return nil, formatErr("time", timeStr, original)
		}
		p.time = tp

		if hasZone {
			zi, ok := lexZone(zoneStr)
			if !ok {
				return nil, formatErr("timezone", zoneStr, original)
			}
			p.zone = zi
		}

		p.hasLeapSecond = tp.second != nil && *tp.second == 60
	}

	return p, nil
}
