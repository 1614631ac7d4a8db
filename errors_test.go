package isoepoch

import "testing"

func TestErrorMessages(t *testing.T) {
	for _, tt := range []struct {
		name string
		err  *Error
		want string
	}{
		{
			"length total",
			lengthTotalErr("abc"),
			"Input exceeds maximum length of 100 characters: 'abc…'",
		},
		{
			"length component",
			lengthComponentErr("year", 7, "digits", "12345678", "12345678-01-01"),
			"Year component exceeds maximum length of 7 digits: '12345678' in input '12345678-01-01'",
		},
		{
			"ambiguous",
			ambiguousErr("202401"),
			"Ambiguous date format 'YYYYMM' in input '202401'",
		},
		{
			"unsupported calendar",
			unsupportedCalendarErr("martian", "martian:2024-01-01"),
			"Unsupported calendar system 'martian' in input 'martian:2024-01-01'",
		},
		{
			"year range",
			yearRangeErr("1000000", "1000000-01-01"),
			"Year '1000000' outside supported range (-999999 to +999999) in input '1000000-01-01'",
		},
		{
			"missing date",
			missingDateErr("10:30:00", "10:30:00"),
			"Invalid date '10:30:00' in input '10:30:00'",
		},
		{
			"component",
			componentErr("month", "13", "2024-13-01"),
			"Invalid month '13' in input '2024-13-01'",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLengthTotalErrTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 80; i++ {
		long += "9"
	}
	err := lengthTotalErr(long)
	msg := err.Error()
	want := "Input exceeds maximum length of 100 characters: '" + long[:50] + "…'"
	if msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}

func TestCapitalize(t *testing.T) {
	for _, tt := range []struct{ in, want string }{
		{"year", "Year"},
		{"", ""},
		{"Already", "Already"},
	} {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
