package gcal

import (
	"context"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
)

// List returns a fresh snapshot of one sub-store. The window applies to
// events only; reminders always return the full open list.
func (s *Store) List(ctx context.Context, kind model.TargetKind, window *repository.TimeRange) ([]model.CalendarItem, error) {
	if kind == model.TargetReminder {
		return s.listReminders(ctx)
	}
	return s.listEvents(ctx, window)
}

// Destinations lists writable calendars or task lists.
func (s *Store) Destinations(ctx context.Context, kind model.TargetKind) ([]model.Destination, error) {
	if kind == model.TargetReminder {
		return s.reminderDestinations(ctx)
	}
	return s.eventDestinations(ctx)
}

// Create commits a new item into destinationID.
func (s *Store) Create(ctx context.Context, kind model.TargetKind, fields repository.ItemFields, destinationID string) (string, error) {
	if kind == model.TargetReminder {
		return s.createReminder(ctx, fields, destinationID)
	}
	return s.createEvent(ctx, fields, destinationID)
}

// Update overwrites the set fields of an existing item.
func (s *Store) Update(ctx context.Context, kind model.TargetKind, identifier string, fields repository.ItemFields) error {
	if kind == model.TargetReminder {
		return s.updateReminder(ctx, identifier, fields)
	}
	return s.updateEvent(ctx, identifier, fields)
}

// Remove deletes an existing item.
func (s *Store) Remove(ctx context.Context, kind model.TargetKind, identifier string) error {
	if kind == model.TargetReminder {
		return s.removeReminder(ctx, identifier)
	}
	return s.removeEvent(ctx, identifier)
}
