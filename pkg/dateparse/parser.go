package dateparse

import (
	"fmt"
	"strings"
	"time"
)

// layouts is the ordered fallback chain for timestamp parsing. First match wins.
// RFC3339 with fractional seconds, strict RFC3339, then the explicit templates
// covering offset-without-colon and minute-granularity variants.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04-0700",
}

// Parser converts date/time strings to absolute time.Time values and owns
// calendar-day math in a fixed IANA timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Shanghai"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse attempts each layout in order and returns the first success.
// Malformed input returns ok=false; it never panics and never guesses.
func (p *Parser) Parse(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// NextMidnight returns the start of the day after t, i.e. "tomorrow 00:00".
func (p *Parser) NextMidnight(t time.Time) time.Time {
	return p.StartOfDay(t.In(p.location).AddDate(0, 0, 1))
}

// EndOfDay returns 23:59:59 of the day containing t in the parser's timezone.
// Computed by wall clock, not by adding a duration to midnight, so DST
// transition days still end on the same calendar day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, p.location)
}

// SameDay reports whether a and b fall on the same calendar day in the
// parser's timezone.
func (p *Parser) SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(p.location).Date()
	by, bm, bd := b.In(p.location).Date()
	return ay == by && am == bm && ad == bd
}
