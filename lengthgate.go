package isoepoch

import "regexp"

// gate implements the LengthGate stage: a cheap, purely lexical scan that
// bounds the whole input and four sub-components before the Parser stage
// does any real lexing. It returns s unchanged, or the first length
// violation it finds, checked in the order below.
func gate(s string) (string, *Error) {
	if len(s) > maxTotalLength {
		return "", lengthTotalErr(s)
	}

	prefix, hasPrefix, rest := splitCalendarPrefix(s)
	if hasPrefix && len(prefix) > maxCalendarIndicatorChars {
		return "", lengthComponentErr("calendar indicator", maxCalendarIndicatorChars, "characters", prefix, s)
	}

	datePart, afterT, hasT := splitOnT(rest)

	if run, terminatedBySeparator := leadingYearRun(datePart); terminatedBySeparator {
		if len(run) > maxYearDigits {
			return "", lengthComponentErr("year", maxYearDigits, "digits", run, s)
		}
	}

	if hasT {
		timeStr, zoneStr, hasZone := splitZone(afterT)

		if frac := rightmostFraction(timeStr); len(frac) > maxFractionalSecondDigits {
			return "", lengthComponentErr("fractional-time", maxFractionalSecondDigits, "digits", frac, s)
		}

		if hasZone {
			if frac := zoneFractionDigits(zoneStr); len(frac) > maxFractionalZoneDigits {
				return "", lengthComponentErr("fractional-offset", maxFractionalZoneDigits, "digits", frac, s)
			}
		}
	}

	return s, nil
}

var reLeadingYearRun = regexp.MustCompile(`^[+-]?\d+`)

// leadingYearRun finds the leading sign-and-digit run at the start of the
// date portion. The run only represents a bounded "year" component when it
// is immediately followed by the '-' separator of a separated-date format;
// a run that consumes the whole packed numeral (e.g. YYYYMMDD) is not a
// year by itself, and its length is bounded elsewhere (by the total-length
// check and by the fixed-width packed-date grammar).
func leadingYearRun(datePart string) (run string, terminatedBySeparator bool) {
	run = reLeadingYearRun.FindString(datePart)
	if run == "" {
		return "", false
	}
	rest := datePart[len(run):]
	return run, len(rest) > 0 && rest[0] == '-'
}

var reFraction = regexp.MustCompile(`\.(\d+)`)

// rightmostFraction returns the digits of the last "." group in s: the
// fractional-time digits, if any.
func rightmostFraction(s string) string {
	matches := reFraction.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}

var reZoneFractionDigits = regexp.MustCompile(`^[+-]\d{2}\.(\d+)$`)

// zoneFractionDigits returns the fractional digits attached to a signed
// zone of the form ±hh.dddd, or "" if the zone has no fraction.
func zoneFractionDigits(s string) string {
	m := reZoneFractionDigits.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
