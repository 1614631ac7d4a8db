package isoepoch

import "fmt"

// Kind identifies which stage of the pipeline rejected an input and why.
// The set is closed: every failure the pipeline can produce is one of these.
type Kind int

const (
	// KindLength means the whole input, or one of its sub-components, exceeded
	// a length bound from LengthGate.
	KindLength Kind = iota
	// KindFormat means the input did not match any recognised ISO-8601 variant,
	// or a specific sub-component was lexically malformed.
	KindFormat
	// KindAmbiguous is the single ambiguous case, YYYYMM.
	KindAmbiguous
	// KindUnsupportedCalendar means the calendar prefix was not one of the
	// seven supported names.
	KindUnsupportedCalendar
	// KindMissingDate means the input was time-only or zone-only.
	KindMissingDate
	// KindYearRange means the year fell outside [-999999, +999999].
	KindYearRange
	// KindComponent means a value (month, day, hour, week, timezone offset, ...)
	// fell outside its valid range.
	KindComponent
)

// Error is the single error type this package returns. Every field beyond
// Kind is optional depending on Kind; see Error.Error for the rendering rules.
type Error struct {
	Kind      Kind
	Component string // e.g. "year", "month", "day", "timezone offset"
	Value     string // the offending text
	Input     string // the original, unmodified input string
	Limit     int    // for KindLength: the exceeded bound
	Unit      string // for KindLength: "characters" or "digits"
	Total     bool   // for KindLength: true if the whole input was too long
}

const lengthTruncateAt = 50

// Error renders the exact message shape mandated for the error's Kind.
func (e *Error) Error() string {
	switch e.Kind {
	case KindLength:
		if e.Total {
			truncated := e.Input
			if len(truncated) > lengthTruncateAt {
				truncated = truncated[:lengthTruncateAt]
			}
			return fmt.Sprintf("Input exceeds maximum length of %d characters: '%s…'", e.Limit, truncated)
		}
		return fmt.Sprintf("%s component exceeds maximum length of %d %s: '%s' in input '%s'",
			capitalize(e.Component), e.Limit, e.Unit, e.Value, e.Input)
	case KindAmbiguous:
		return fmt.Sprintf("Ambiguous date format 'YYYYMM' in input '%s'", e.Input)
	case KindUnsupportedCalendar:
		return fmt.Sprintf("Unsupported calendar system '%s' in input '%s'", e.Value, e.Input)
	case KindYearRange:
		return fmt.Sprintf("Year '%s' outside supported range (-999999 to +999999) in input '%s'", e.Value, e.Input)
	default: // KindFormat, KindMissingDate, KindComponent
		return fmt.Sprintf("Invalid %s '%s' in input '%s'", e.Component, e.Value, e.Input)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func lengthTotalErr(input string) *Error {
	return &Error{Kind: KindLength, Total: true, Input: input, Limit: maxTotalLength}
}

func lengthComponentErr(component string, limit int, unit, value, input string) *Error {
	return &Error{Kind: KindLength, Component: component, Limit: limit, Unit: unit, Value: value, Input: input}
}

func formatErr(component, value, input string) *Error {
	return &Error{Kind: KindFormat, Component: component, Value: value, Input: input}
}

func ambiguousErr(input string) *Error {
	return &Error{Kind: KindAmbiguous, Input: input}
}

func unsupportedCalendarErr(name, input string) *Error {
	return &Error{Kind: KindUnsupportedCalendar, Value: name, Input: input}
}

func missingDateErr(value, input string) *Error {
	return &Error{Kind: KindMissingDate, Component: "date", Value: value, Input: input}
}

func yearRangeErr(year, input string) *Error {
	return &Error{Kind: KindYearRange, Value: year, Input: input}
}

func componentErr(component, value, input string) *Error {
	return &Error{Kind: KindComponent, Component: component, Value: value, Input: input}
}
