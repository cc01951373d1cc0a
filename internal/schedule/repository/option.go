package repository

import "time"

// TimeRange bounds a snapshot query.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// ItemFields carries the mutable fields of a store item. Pointer fields
// distinguish "leave unchanged" (nil) from "set to this value" on update;
// Create requires Title, Start and End to be set.
type ItemFields struct {
	Title    *string
	Start    *time.Time
	End      *time.Time
	IsAllDay *bool
	Location *string
	Notes    *string
}

// String returns a set pointer for literal field values.
func String(s string) *string { return &s }

// Time returns a set pointer for literal time values.
func Time(t time.Time) *time.Time { return &t }

// Bool returns a set pointer for literal bool values.
func Bool(b bool) *bool { return &b }
