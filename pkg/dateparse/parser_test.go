package dateparse_test

import (
	"testing"
	"time"

	"schedule-assistant/pkg/dateparse"
)

func TestNewParser(t *testing.T) {
	_, err := dateparse.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = dateparse.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := dateparse.NewParser("UTC")

	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			name: "RFC3339 with fractional seconds",
			text: "2024-05-01T15:30:00.500+07:00",
			want: time.Date(2024, 5, 1, 15, 30, 0, 500000000, time.FixedZone("", 7*3600)),
			ok:   true,
		},
		{
			name: "Strict RFC3339",
			text: "2024-05-01T15:30:00+07:00",
			want: time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("", 7*3600)),
			ok:   true,
		},
		{
			name: "Zulu",
			text: "2024-05-01T15:30:00Z",
			want: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "Offset without colon",
			text: "2024-05-01T15:30:00+0700",
			want: time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("", 7*3600)),
			ok:   true,
		},
		{
			name: "Minute granularity with colon offset",
			text: "2024-05-01T15:30+07:00",
			want: time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("", 7*3600)),
			ok:   true,
		},
		{
			name: "Minute granularity without colon offset",
			text: "2024-05-01T15:30-0500",
			want: time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("", -5*3600)),
			ok:   true,
		},
		{
			name: "Empty",
			text: "",
			ok:   false,
		},
		{
			name: "Whitespace only",
			text: "   ",
			ok:   false,
		},
		{
			name: "Prose",
			text: "tomorrow afternoon",
			ok:   false,
		},
		{
			name: "Date only",
			text: "2024-05-01",
			ok:   false,
		},
		{
			name: "Garbage offset",
			text: "2024-05-01T15:30:00+7",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.text)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Offsets survive the round trip: the parsed value formats back with the
// same UTC offset the input carried.
func TestParseKeepsOffset(t *testing.T) {
	parser, _ := dateparse.NewParser("UTC")

	inputs := []string{
		"2024-05-01T15:30:00+07:00",
		"2024-05-01T15:30:00-08:00",
		"2024-11-20T09:00:00.123+02:00",
		"2024-11-20T09:00:00Z",
	}

	for _, in := range inputs {
		got, ok := parser.Parse(in)
		if !ok {
			t.Fatalf("Parse(%q) unexpectedly failed", in)
		}

		want, err := time.Parse(time.RFC3339Nano, in)
		if err != nil {
			t.Fatalf("reference parse failed: %v", err)
		}
		_, wantOffset := want.Zone()
		_, gotOffset := got.Zone()
		if wantOffset != gotOffset {
			t.Errorf("Parse(%q) offset = %d, want %d", in, gotOffset, wantOffset)
		}
	}
}

func TestDayMath(t *testing.T) {
	parser, _ := dateparse.NewParser("Asia/Shanghai")
	loc := parser.Location()

	base := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)

	start := parser.StartOfDay(base)
	if !start.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, loc)) {
		t.Errorf("StartOfDay = %v", start)
	}

	next := parser.NextMidnight(base)
	if !next.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, loc)) {
		t.Errorf("NextMidnight = %v", next)
	}

	end := parser.EndOfDay(base)
	if !end.Equal(time.Date(2024, 5, 1, 23, 59, 59, 0, loc)) {
		t.Errorf("EndOfDay = %v", end)
	}

	if !parser.SameDay(start, end) {
		t.Errorf("SameDay(start, end) = false, want true")
	}
	if parser.SameDay(start, next) {
		t.Errorf("SameDay(start, next) = true, want false")
	}
}

// Day boundaries hold on DST transition days: the 23-hour spring-forward
// day and the 25-hour fall-back day both end at 23:59:59 on the same
// calendar day they started.
func TestDayMathAcrossDST(t *testing.T) {
	parser, _ := dateparse.NewParser("America/New_York")
	loc := parser.Location()

	days := []time.Time{
		time.Date(2025, 3, 9, 15, 0, 0, 0, loc),  // spring forward
		time.Date(2025, 11, 2, 15, 0, 0, 0, loc), // fall back
	}

	for _, base := range days {
		start := parser.StartOfDay(base)
		end := parser.EndOfDay(base)

		if !parser.SameDay(start, end) {
			t.Errorf("EndOfDay %v left the day of %v", end, start)
		}
		if end.Day() != base.Day() || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
			t.Errorf("EndOfDay(%v) = %v, want 23:59:59 on day %d", base, end, base.Day())
		}

		next := parser.NextMidnight(base)
		if next.Day() != base.Day()+1 || next.Hour() != 0 {
			t.Errorf("NextMidnight(%v) = %v", base, next)
		}
	}
}

// A UTC instant late in the day falls on the following local day east of
// Greenwich; day math must follow the parser's timezone, not the input's.
func TestDayMathCrossesTimezone(t *testing.T) {
	parser, _ := dateparse.NewParser("Asia/Shanghai")

	utcEvening := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) // 2024-05-02 04:00 +08:00
	start := parser.StartOfDay(utcEvening)
	if start.Day() != 2 {
		t.Errorf("StartOfDay crossed timezone incorrectly: %v", start)
	}
}
