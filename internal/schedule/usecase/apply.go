package usecase

import (
	"context"
	"fmt"
	"strings"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/internal/schedule/repository"
)

// ApplyIntent commits an intent against the external store and returns a
// human-readable result message. Specific failures (NotFoundError,
// ErrNoDestination, store errors) propagate unchanged to the caller.
func (uc *implUseCase) ApplyIntent(ctx context.Context, input schedule.ApplyInput) (schedule.ApplyOutput, error) {
	intent := input.Intent
	if strings.TrimSpace(intent.Title) == "" {
		return schedule.ApplyOutput{}, fmt.Errorf("%w: title is empty", schedule.ErrInvalidIntent)
	}

	if err := uc.store.Authorized(ctx, intent.Target); err != nil {
		return schedule.ApplyOutput{}, fmt.Errorf("%w: %v", schedule.ErrNotAuthorized, err)
	}

	switch intent.Type {
	case model.IntentAdd:
		return uc.applyAdd(ctx, intent, input.DestinationOverride, input.Prefs)
	case model.IntentModify:
		return uc.applyModify(ctx, intent)
	case model.IntentDelete:
		return uc.applyDelete(ctx, intent)
	default:
		return schedule.ApplyOutput{}, fmt.Errorf("%w: unknown intent type %q", schedule.ErrInvalidIntent, intent.Type)
	}
}

func (uc *implUseCase) applyAdd(ctx context.Context, intent model.ScheduleIntent, override string, prefs model.Preferences) (schedule.ApplyOutput, error) {
	destination, err := uc.resolveDestination(ctx, intent.Target, override, prefs)
	if err != nil {
		return schedule.ApplyOutput{}, err
	}

	fields := repository.ItemFields{
		Title:    repository.String(intent.Title),
		Start:    repository.Time(intent.StartDate),
		End:      repository.Time(intent.EndDate),
		IsAllDay: repository.Bool(intent.IsAllDay),
	}
	if intent.HasLocation {
		fields.Location = repository.String(intent.Location)
	}
	if intent.HasNotes {
		fields.Notes = repository.String(intent.Notes)
	}

	identifier, err := uc.store.Create(ctx, intent.Target, fields, destination)
	if err != nil {
		return schedule.ApplyOutput{}, err
	}

	uc.l.Infof(ctx, "ApplyIntent: created %s %s (%q)", intent.Target, identifier, intent.Title)
	return schedule.ApplyOutput{
		Message: fmt.Sprintf("Added %s: %s", intent.Target, intent.Title),
	}, nil
}

func (uc *implUseCase) applyModify(ctx context.Context, intent model.ScheduleIntent) (schedule.ApplyOutput, error) {
	item, err := uc.resolveCandidate(ctx, intent)
	if err != nil {
		return schedule.ApplyOutput{}, err
	}

	// Overwrite the mutable fields; anything the model omitted stays as it
	// is on the existing item.
	fields := repository.ItemFields{
		Title:    repository.String(intent.Title),
		Start:    repository.Time(intent.StartDate),
		End:      repository.Time(intent.EndDate),
		IsAllDay: repository.Bool(intent.IsAllDay),
	}
	if intent.HasLocation {
		fields.Location = repository.String(intent.Location)
	}
	if intent.HasNotes {
		fields.Notes = repository.String(intent.Notes)
	}

	if err := uc.store.Update(ctx, intent.Target, item.Identifier, fields); err != nil {
		return schedule.ApplyOutput{}, err
	}

	uc.l.Infof(ctx, "ApplyIntent: updated %s %s (%q -> %q)", intent.Target, item.Identifier, item.Title, intent.Title)
	return schedule.ApplyOutput{
		Message: fmt.Sprintf("Updated %s: %s", intent.Target, intent.Title),
	}, nil
}

func (uc *implUseCase) applyDelete(ctx context.Context, intent model.ScheduleIntent) (schedule.ApplyOutput, error) {
	item, err := uc.resolveCandidate(ctx, intent)
	if err != nil {
		return schedule.ApplyOutput{}, err
	}

	if err := uc.store.Remove(ctx, intent.Target, item.Identifier); err != nil {
		return schedule.ApplyOutput{}, err
	}

	uc.l.Infof(ctx, "ApplyIntent: removed %s %s (%q)", intent.Target, item.Identifier, item.Title)
	return schedule.ApplyOutput{
		Message: fmt.Sprintf("Deleted %s: %s", intent.Target, item.Title),
	}, nil
}

// resolveDestination picks the calendar/list a new item is created into:
// explicit override, then the caller's configured default, then the store's
// primary, then the first writable one.
func (uc *implUseCase) resolveDestination(ctx context.Context, kind model.TargetKind, override string, prefs model.Preferences) (string, error) {
	if override != "" {
		return override, nil
	}

	if kind == model.TargetReminder && prefs.DefaultReminderListID != "" {
		return prefs.DefaultReminderListID, nil
	}
	if kind == model.TargetEvent && prefs.DefaultCalendarID != "" {
		return prefs.DefaultCalendarID, nil
	}

	destinations, err := uc.store.Destinations(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("failed to list destinations: %w", err)
	}
	if len(destinations) == 0 {
		return "", schedule.ErrNoDestination
	}

	for _, d := range destinations {
		if d.Primary {
			return d.ID, nil
		}
	}
	return destinations[0].ID, nil
}
