package isoepoch_test

import (
	"testing"

	"github.com/sonnyksimon/isoepoch"
)

func TestConvert(t *testing.T) {
	for _, tt := range []struct {
		in           string
		wantSeconds  int64
		wantFraction string
	}{
		{"1970-01-01T00:00:00Z", 0, ""},
		{"1970-01-01", 0, ""},
		{"2024-01-15T10:30:00Z", 1705314600, ""},
		{"1969-12-31T23:59:59Z", -1, ""},
		{"2024-01-15T10:30:00.5Z", 1705314600, "500000000"},
		{"2024-01-15T12:30:00+02:00", 1705314600, ""},
		{"2024-060", 1709164800, ""},      // ordinal day 60 of 2024 = Feb 29
		{"2024-W24-3", 1718150400, ""},    // ISO week date: 2024-W24-3 = 2024-06-12
		{"20240115T103000Z", 1705314600, ""},
		{"julian:1582-10-04", -12219292800, ""},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got, err := isoepoch.Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert(%q) error = %v", tt.in, err)
			}
			if got.Seconds != tt.wantSeconds || got.Fraction != tt.wantFraction {
				t.Errorf("Convert(%q) = {%d, %q}, want {%d, %q}", tt.in, got.Seconds, got.Fraction, tt.wantSeconds, tt.wantFraction)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	for _, tt := range []struct {
		in       string
		wantKind isoepoch.Kind
	}{
		{"2024-13-01", isoepoch.KindComponent},
		{"202401", isoepoch.KindAmbiguous},
		{"martian:2024-01-01", isoepoch.KindUnsupportedCalendar},
		{"persian:999999-01-01", isoepoch.KindYearRange},
		{"T10:30:00", isoepoch.KindMissingDate},
		{"not-a-date", isoepoch.KindFormat},
	} {
		t.Run(tt.in, func(t *testing.T) {
			_, err := isoepoch.Convert(tt.in)
			if err == nil {
				t.Fatalf("Convert(%q) = nil error, want error", tt.in)
			}
			epochErr, ok := err.(*isoepoch.Error)
			if !ok {
				t.Fatalf("Convert(%q) error type = %T, want *isoepoch.Error", tt.in, err)
			}
			if epochErr.Kind != tt.wantKind {
				t.Errorf("Convert(%q) Kind = %v, want %v", tt.in, epochErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestConvertLeapSecond(t *testing.T) {
	got, err := isoepoch.Convert("2016-12-31T23:59:60Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := isoepoch.Convert("2017-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Seconds != want.Seconds {
		t.Errorf("leap second 2016-12-31T23:59:60Z = %d, want %d (2017-01-01T00:00:00Z)", got.Seconds, want.Seconds)
	}
}

func TestResultString(t *testing.T) {
	r, err := isoepoch.Convert("2024-01-15T10:30:00.25Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := r.String(), "1705314600.250000000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
