package model

import "time"

// IntentType is the scheduling action the user asked for.
type IntentType string

const (
	IntentAdd    IntentType = "add"
	IntentDelete IntentType = "delete"
	IntentModify IntentType = "modify"
)

// ParseIntentType maps a model-provided label to an IntentType.
// Unrecognized or missing values default to add.
func ParseIntentType(s string) IntentType {
	switch IntentType(s) {
	case IntentDelete:
		return IntentDelete
	case IntentModify:
		return IntentModify
	default:
		return IntentAdd
	}
}

// TargetKind selects which sub-store the action applies to.
type TargetKind string

const (
	TargetEvent    TargetKind = "event"
	TargetReminder TargetKind = "reminder"
)

// ParseTargetKind maps a model-provided label to a TargetKind.
// Unrecognized or missing values default to event.
func ParseTargetKind(s string) TargetKind {
	if TargetKind(s) == TargetReminder {
		return TargetReminder
	}
	return TargetEvent
}

// ScheduleIntent is the canonical structured scheduling action. It is created
// by normalization, optionally edited by the user, consumed exactly once by
// apply, then discarded. Never persisted.
type ScheduleIntent struct {
	ID        string
	Type      IntentType
	Target    TargetKind
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Location  string
	Notes     string
	IsAllDay  bool

	// HasLocation / HasNotes distinguish "model said nothing" from "model
	// said empty": on modify, absent fields leave the existing item untouched.
	HasLocation bool
	HasNotes    bool
}
