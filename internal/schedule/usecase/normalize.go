package usecase

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kaptinlin/jsonrepair"

	"schedule-assistant/internal/model"
	"schedule-assistant/pkg/dateparse"
)

// intentFields is the loosely-typed shape the model is asked to emit.
// Pointer fields distinguish omitted from empty.
type intentFields struct {
	Title      string  `json:"title"`
	IntentType string  `json:"intent_type"`
	Target     string  `json:"target"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	IsAllDay   *bool   `json:"is_all_day"`
	Location   *string `json:"location"`
	Notes      *string `json:"notes"`
}

const defaultEventDuration = time.Hour

// normalizeIntent converts raw model output into a validated ScheduleIntent.
// It never fails: malformed output degrades to the default tomorrow/all-day
// add intent with a title derived from the user's own text.
func normalizeIntent(rawModelText, rawUserText string, now time.Time, dates *dateparse.Parser) model.ScheduleIntent {
	fallback := fallbackTitle(rawUserText)

	fields, ok := decodeIntentFields(rawModelText)
	if !ok {
		return defaultIntent(fallback, now, dates)
	}

	intent := model.ScheduleIntent{
		ID:     uuid.NewString(),
		Type:   model.ParseIntentType(fields.IntentType),
		Target: model.ParseTargetKind(fields.Target),
		Title:  strings.TrimSpace(fields.Title),
	}
	if intent.Title == "" {
		intent.Title = fallback
	}

	start, okStart := dates.Parse(fields.StartTime)
	if !okStart {
		start = dates.NextMidnight(now)
	}
	intent.StartDate = start

	if fields.IsAllDay != nil {
		intent.IsAllDay = *fields.IsAllDay
	} else if !okStart {
		// No usable time of day anywhere: the defaulted midnight start only
		// carries date-granularity meaning.
		intent.IsAllDay = true
	}

	end, ok := dates.Parse(fields.EndTime)
	if !ok || end.Before(start) {
		end = defaultEnd(start, intent.IsAllDay, dates)
	}
	intent.EndDate = end

	if fields.Location != nil {
		intent.Location = strings.TrimSpace(*fields.Location)
		intent.HasLocation = true
	}
	if fields.Notes != nil {
		intent.Notes = strings.TrimSpace(*fields.Notes)
		intent.HasNotes = true
	}

	return intent
}

// defaultIntent is the safe degradation for unusable model output.
func defaultIntent(title string, now time.Time, dates *dateparse.Parser) model.ScheduleIntent {
	start := dates.NextMidnight(now)
	return model.ScheduleIntent{
		ID:        uuid.NewString(),
		Type:      model.IntentAdd,
		Target:    model.TargetEvent,
		Title:     title,
		StartDate: start,
		EndDate:   defaultEnd(start, true, dates),
		IsAllDay:  true,
	}
}

// defaultEnd derives a missing or inverted end from the start: same calendar
// day for all-day items, start plus one hour otherwise.
func defaultEnd(start time.Time, isAllDay bool, dates *dateparse.Parser) time.Time {
	if isAllDay {
		return dates.EndOfDay(start)
	}
	return start.Add(defaultEventDuration)
}

// decodeIntentFields parses the model's raw text into intentFields. The text
// is stripped of code fences first; if plain decoding fails the JSON is run
// through jsonrepair before giving up.
func decodeIntentFields(raw string) (intentFields, bool) {
	cleaned := stripCodeFences(raw)

	var fields intentFields
	if err := json.Unmarshal([]byte(cleaned), &fields); err == nil {
		return fields, validFields(fields)
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		return intentFields{}, false
	}
	if err := json.Unmarshal([]byte(repaired), &fields); err != nil {
		return intentFields{}, false
	}
	return fields, validFields(fields)
}

// validFields rejects decodes that technically succeeded but carry none of
// the schema's fields (e.g. valid JSON that is some other object entirely).
func validFields(f intentFields) bool {
	return f.Title != "" || f.IntentType != "" || f.StartTime != ""
}

// stripCodeFences removes markdown fencing and surrounding prose that models
// often wrap around JSON output.
var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

func stripCodeFences(text string) string {
	if matches := fenceRe.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No fence: cut to the outermost braces.
	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// fallbackTitle derives a title from the user's raw text: the first 20
// characters, or "New Event" when the text is empty.
func fallbackTitle(rawUserText string) string {
	text := strings.TrimSpace(rawUserText)
	if text == "" {
		return "New Event"
	}
	runes := []rune(text)
	if len(runes) > 20 {
		return string(runes[:20])
	}
	return text
}
