// Package isoepoch converts ISO-8601 datetime strings into exact Unix
// epoch timestamps, through a fixed pipeline of small stages: LengthGate,
// Parser, CalendarConverter, DateNormalizer, TimeZoneNormalizer, and
// EpochCalculator.
package isoepoch

// Convert parses s as an ISO-8601 datetime (optionally prefixed with an
// alternative calendar system's name, e.g. "julian:1582-10-04") and returns
// its exact Unix epoch timestamp. The returned error, when non-nil, is
// always an *Error.
func Convert(s string) (Result, error) {
	gated, gateErr := gate(s)
	if gateErr != nil {
		return Result{}, gateErr
	}

	p, parseErr := parse(gated)
	if parseErr != nil {
		return Result{}, parseErr
	}

	p.date = convertCalendar(p.calendar, p.format, p.date)

	date, dateErr := normalizeDate(p)
	if dateErr != nil {
		return Result{}, dateErr
	}

	t, timeErr := normalizeTime(p)
	if timeErr != nil {
		return Result{}, timeErr
	}

	return computeEpoch(date, t), nil
}
