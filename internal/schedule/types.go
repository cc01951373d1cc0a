package schedule

import "schedule-assistant/internal/model"

// ExtractInput is the input for intent extraction.
type ExtractInput struct {
	RawText     string // natural language request from the user
	ImageBase64 string // optional inline JPEG, base64 without data-URL prefix

	// AutoApply applies modify/delete intents in the same run. Add intents
	// are always returned for user confirmation first.
	AutoApply bool
	Prefs     model.Preferences // only consulted when AutoApply fires
}

// ExtractOutput is the result of intent extraction.
type ExtractOutput struct {
	Intent   model.ScheduleIntent
	RawDebug string // raw model text, diagnostic only
	Applied  bool   // true when AutoApply committed the intent
	Message  string // apply result message when Applied
}

// ApplyInput is the input for committing an intent.
type ApplyInput struct {
	Intent model.ScheduleIntent

	// DestinationOverride names an explicit calendar/list; empty means fall
	// back to Prefs, then the store's primary.
	DestinationOverride string
	Prefs               model.Preferences
}

// ApplyOutput is the result of committing an intent.
type ApplyOutput struct {
	Message string // human-readable result, e.g. "Deleted event: Lunch with Sam"
}

// ListInput selects a snapshot read.
type ListInput struct {
	Target model.TargetKind
}

// ListOutput is a snapshot of store items.
type ListOutput struct {
	Items []model.CalendarItem
	Count int
}

// SummarizeOutput is the model-written briefing.
type SummarizeOutput struct {
	Summary       string
	EventCount    int
	ReminderCount int
}
