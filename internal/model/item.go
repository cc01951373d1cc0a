package model

import "time"

// CalendarItem is the core's view of the external store's native record.
// It lives only for the duration of a single resolution operation.
type CalendarItem struct {
	Identifier string
	Title      string
	StartTime  time.Time
	EndTime    time.Time // due time for reminders
	IsAllDay   bool
	HasDueTime bool // reminders commonly lack one
	CalendarID string
	Location   string
	Notes      string
}

// Destination is a calendar or reminder list new items can be created into.
type Destination struct {
	ID      string
	Title   string
	Primary bool
}

// Preferences are the caller-injected defaults for apply. The core never
// reads ambient configuration directly.
type Preferences struct {
	DefaultCalendarID     string
	DefaultReminderListID string
}

// Environment names.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentDev        Environment = "dev"
)
