package repository

import (
	"context"

	"schedule-assistant/internal/model"
)

// Store is the contract the pipeline requires from the external
// calendar/reminder store. Implementations own their own consistency model;
// the pipeline re-reads a fresh snapshot per resolution call.
type Store interface {
	// Authorized reports whether access to the given sub-store is granted.
	Authorized(ctx context.Context, kind model.TargetKind) error

	// List returns the current snapshot of items of one kind. A nil window
	// means the full list; events are normally queried with a window,
	// reminders without (they commonly lack due times).
	List(ctx context.Context, kind model.TargetKind, window *TimeRange) ([]model.CalendarItem, error)

	// Destinations lists the calendars/reminder lists a new item can be
	// created into.
	Destinations(ctx context.Context, kind model.TargetKind) ([]model.Destination, error)

	// Create commits a new item and returns its identifier.
	Create(ctx context.Context, kind model.TargetKind, fields ItemFields, destinationID string) (string, error)

	// Update overwrites the set fields of an existing item; nil fields are
	// left unchanged.
	Update(ctx context.Context, kind model.TargetKind, identifier string, fields ItemFields) error

	// Remove deletes an existing item.
	Remove(ctx context.Context, kind model.TargetKind, identifier string) error
}
