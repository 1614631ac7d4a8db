package isoepoch

import "strconv"

// TimeZoneNormalizer stage: validates the lexed time-of-day
// and zone designator, converts them to an exact seconds-since-UTC-midnight
// value, and resolves the ±1-day (or more, for pathological offsets)
// rollover that a non-UTC zone can push the date across.

// normalizeTime resolves p.time/p.zone to seconds since UTC midnight plus
// the day adjustment implied by zone rollover. A nil p.time means the input
// carried no time-of-day at all (a date-only timestamp): midnight, no
// adjustment.
func normalizeTime(p *parsedInput) (normalizedTime, *Error) {
	if p.time == nil {
		return normalizedTime{seconds: 0, fraction: zeroDecimal(), hasFractional: false, dayAdjust: 0}, nil
	}

	localSeconds, hasFractional, err := timeOfDaySeconds(p.time, p.hasLeapSecond, p.original)
	if err != nil {
		return normalizedTime{}, err
	}

	offsetSeconds, zoneHasFraction, err := zoneOffsetSeconds(p.zone, p.original)
	if err != nil {
		return normalizedTime{}, err
	}
	hasFractional = hasFractional || zoneHasFraction

	utc := localSeconds.sub(offsetSeconds)
	dayAdjust := 0
	for utc.negative() {
		utc = utc.add(decimalFromInt(secondsPerDay))
		dayAdjust--
	}
	for utc.cmpAbsGE(secondsPerDay) {
		utc = utc.sub(decimalFromInt(secondsPerDay))
		dayAdjust++
	}

	// Leap-second fold happens after zone rollover: the 61st second of the
	// lexed local minute is an extra elapsed second in UTC, not a
	// repositioning of the local clock.
	if p.hasLeapSecond {
		utc = utc.add(decimalFromInt(1))
		if utc.cmpAbsGE(secondsPerDay) {
			utc = utc.sub(decimalFromInt(secondsPerDay))
			dayAdjust++
		}
	}

	whole, fracDigits, _ := utc.splitTruncated(maxFractionalSecondDigits)
	return normalizedTime{
		seconds:       whole,
		fraction:      fractionFromDigits(fracDigits),
		hasFractional: hasFractional,
		dayAdjust:     dayAdjust,
	}, nil
}

// timeOfDaySeconds validates t and converts it to an exact decimal count of
// seconds since local midnight. A second value of 60 is only valid when
// hasLeapSecond is set; the base position within the day treats it as 59,
// with the extra second folded in by the caller after zone rollover.
func timeOfDaySeconds(t *timeParts, hasLeapSecond bool, original string) (*decimal, bool, *Error) {
	if t.hour < 0 || t.hour > 23 {
		return nil, false, componentErr("hour", strconv.Itoa(t.hour), original)
	}

	minute := 0
	if t.minute != nil {
		minute = *t.minute
	}
	if minute < 0 || minute > 59 {
		return nil, false, componentErr("minute", strconv.Itoa(minute), original)
	}

	second := 0
	if t.second != nil {
		second = *t.second
	}
	if hasLeapSecond {
		if second != 60 {
			return nil, false, componentErr("second", strconv.Itoa(second), original)
		}
	} else if second < 0 || second > 59 {
		return nil, false, componentErr("second", strconv.Itoa(second), original)
	}

	baseSecond := second
	if hasLeapSecond {
		baseSecond = 59
	}

	base := decimalFromInt(int64(t.hour)*3600 + int64(minute)*60 + int64(baseSecond))

	var frac *decimal
	switch t.unit {
	case unitMinute:
		frac = fractionFromDigits(t.fractional).mulInt(60)
	case unitHour:
		frac = fractionFromDigits(t.fractional).mulInt(3600)
	default: // unitSecond
		frac = fractionFromDigits(t.fractional)
	}

	return base.add(frac), t.fractional != "", nil
}

// zoneOffsetSeconds validates z and converts it to an exact decimal count of
// signed seconds east of UTC. A nil z means no zone designator was present,
// which this package treats as UTC.
func zoneOffsetSeconds(z *zoneInfo, original string) (*decimal, bool, *Error) {
	if z == nil || z.isUTC {
		return zeroDecimal(), false, nil
	}

	minutes := 0
	if z.minutes != nil {
		minutes = *z.minutes
	}
	if minutes < 0 || minutes > 59 {
		return nil, false, componentErr("timezone offset minutes", strconv.Itoa(minutes), original)
	}
	if z.hours < 0 {
		return nil, false, componentErr("timezone offset hours", strconv.Itoa(z.hours), original)
	}

	base := decimalFromInt(int64(z.hours)*3600 + int64(minutes)*60)
	frac := fractionFromDigits(z.fractional).mulInt(3600)
	offset := base.add(frac)
	if z.sign < 0 {
		offset = zeroDecimal().sub(offset)
	}

	if offset.cmpAbsGE(secondsPerDay) {
		return nil, false, componentErr("timezone offset", renderZoneOffset(z, minutes), original)
	}

	return offset, z.fractional != "", nil
}

// renderZoneOffset reconstructs the ±hh:mm[.fff] text of a signed zone
// offset for error messages, since zoneInfo never keeps the original
// substring around.
func renderZoneOffset(z *zoneInfo, minutes int) string {
	sign := "+"
	if z.sign < 0 {
		sign = "-"
	}
	s := sign + pad2(z.hours) + ":" + pad2(minutes)
	if z.fractional != "" {
		s += "." + z.fractional
	}
	return s
}

func pad2(n int) string {
	s := strconv.Itoa(n)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
