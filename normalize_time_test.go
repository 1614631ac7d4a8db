package isoepoch

import "testing"

func TestNormalizeTimeNoTime(t *testing.T) {
	nt, err := normalizeTime(&parsedInput{original: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.seconds != 0 || nt.hasFractional || nt.dayAdjust != 0 {
		t.Errorf("normalizeTime(nil time) = %+v, want midnight with no adjustment", nt)
	}
}

func TestNormalizeTimeUTC(t *testing.T) {
	hh, mm, ss := 10, 30, 15
	p := &parsedInput{
		time:     &timeParts{hour: hh, minute: &mm, second: &ss, unit: unitSecond},
		zone:     &zoneInfo{isUTC: true},
		original: "test",
	}
	nt, err := normalizeTime(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := int64(10*3600 + 30*60 + 15)
	if nt.seconds != want || nt.dayAdjust != 0 || nt.hasFractional {
		t.Errorf("normalizeTime(10:30:15Z) = %+v, want seconds=%d", nt, want)
	}
}

func TestNormalizeTimePositiveOffsetRollsBackADay(t *testing.T) {
	hh, mm := 1, 0
	minutes := 0
	p := &parsedInput{
		time:     &timeParts{hour: hh, minute: &mm, unit: unitMinute},
		zone:     &zoneInfo{sign: 1, hours: 2, minutes: &minutes},
		original: "test",
	}
	nt, err := normalizeTime(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.dayAdjust != -1 {
		t.Errorf("dayAdjust = %d, want -1", nt.dayAdjust)
	}
	want := int64(23 * 3600) // 01:00 - 02:00 offset -> 23:00 previous day
	if nt.seconds != want {
		t.Errorf("seconds = %d, want %d", nt.seconds, want)
	}
}

func TestNormalizeTimeNegativeOffsetRollsForwardADay(t *testing.T) {
	hh, mm := 23, 0
	minutes := 0
	p := &parsedInput{
		time:     &timeParts{hour: hh, minute: &mm, unit: unitMinute},
		zone:     &zoneInfo{sign: -1, hours: 2, minutes: &minutes},
		original: "test",
	}
	nt, err := normalizeTime(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.dayAdjust != 1 {
		t.Errorf("dayAdjust = %d, want 1", nt.dayAdjust)
	}
	want := int64(1 * 3600) // 23:00-02:00 -> 01:00 next day
	if nt.seconds != want {
		t.Errorf("seconds = %d, want %d", nt.seconds, want)
	}
}

func TestNormalizeTimeLeapSecond(t *testing.T) {
	mm, ss := 59, 60
	p := &parsedInput{
		time:          &timeParts{hour: 23, minute: &mm, second: &ss, unit: unitSecond},
		zone:          &zoneInfo{isUTC: true},
		hasLeapSecond: true,
		original:      "test",
	}
	nt, err := normalizeTime(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.seconds != 0 || nt.dayAdjust != 1 {
		t.Errorf("normalizeTime(23:59:60Z) = seconds=%d dayAdjust=%d, want seconds=0 dayAdjust=1", nt.seconds, nt.dayAdjust)
	}
}

func TestNormalizeTimeFractionOfMinute(t *testing.T) {
	hh, mm := 0, 0
	p := &parsedInput{
		time:     &timeParts{hour: hh, minute: &mm, fractional: "5", unit: unitMinute},
		zone:     &zoneInfo{isUTC: true},
		original: "test",
	}
	nt, err := normalizeTime(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nt.seconds != 30 || !nt.hasFractional {
		t.Errorf("normalizeTime(00:00.5) = seconds=%d hasFractional=%v, want seconds=30 hasFractional=true", nt.seconds, nt.hasFractional)
	}
}

func TestNormalizeTimeInvalidHour(t *testing.T) {
	for _, hh := range []int{24, 25} {
		p := &parsedInput{
			time:     &timeParts{hour: hh, unit: unitHour},
			original: "test",
		}
		if _, err := normalizeTime(p); err == nil {
			t.Errorf("normalizeTime(hour=%d) = nil error, want error", hh)
		}
	}
}

func TestNormalizeTimeMidnightEndOfDayRejected(t *testing.T) {
	mm, ss := 0, 0
	p := &parsedInput{
		time:     &timeParts{hour: 24, minute: &mm, second: &ss, unit: unitSecond},
		zone:     &zoneInfo{isUTC: true},
		original: "2024-06-15T24:00:00Z",
	}
	_, err := normalizeTime(p)
	if err == nil {
		t.Fatal("normalizeTime(24:00:00Z) = nil error, want Component error on hour")
	}
	if err.Kind != KindComponent {
		t.Errorf("normalizeTime(24:00:00Z) Kind = %v, want KindComponent", err.Kind)
	}
}

func TestNormalizeTimeOffsetTooLarge(t *testing.T) {
	hh := 12
	minutes := 0
	p := &parsedInput{
		time:     &timeParts{hour: hh, unit: unitHour},
		zone:     &zoneInfo{sign: 1, hours: 24, minutes: &minutes},
		original: "test",
	}
	_, err := normalizeTime(p)
	if err == nil {
		t.Fatal("normalizeTime(offset=+24:00) = nil error, want error")
	}
	want := "Invalid timezone offset '+24:00' in input 'test'"
	if err.Error() != want {
		t.Errorf("normalizeTime(offset=+24:00) error = %q, want %q", err.Error(), want)
	}
}
