package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/internal/schedule/repository"
)

// Search windows around the intent's start. Modify gets the wider window
// because the model's inferred time for an existing item is less precise.
const (
	deleteWindowHalf = 2 * time.Hour
	modifyWindowHalf = 24 * time.Hour
)

// resolveCandidate matches a modify/delete intent against a fresh store
// snapshot and returns the best candidate. Zero candidates is a NotFoundError;
// several candidates silently take the first in store order.
func (uc *implUseCase) resolveCandidate(ctx context.Context, intent model.ScheduleIntent) (model.CalendarItem, error) {
	half := modifyWindowHalf
	if intent.Type == model.IntentDelete {
		half = deleteWindowHalf
	}
	window := repository.TimeRange{
		From: intent.StartDate.Add(-half),
		To:   intent.StartDate.Add(half),
	}

	snapshot, err := uc.fetchSnapshot(ctx, intent.Target, window)
	if err != nil {
		return model.CalendarItem{}, err
	}

	candidates := matchCandidates(intent, snapshot, window)

	if len(candidates) == 0 {
		return model.CalendarItem{}, &schedule.NotFoundError{Target: intent.Target}
	}
	if len(candidates) > 1 {
		uc.l.Warnf(ctx, "resolveCandidate: %d candidates for %q, taking first in store order", len(candidates), intent.Title)
	}

	return candidates[0], nil
}

// fetchSnapshot reads the store fresh for this resolution. Events are queried
// with the window; the full reminder list is fetched because reminders
// commonly lack due times.
func (uc *implUseCase) fetchSnapshot(ctx context.Context, kind model.TargetKind, window repository.TimeRange) ([]model.CalendarItem, error) {
	var (
		items []model.CalendarItem
		err   error
	)
	if kind == model.TargetReminder {
		items, err = uc.store.List(ctx, kind, nil)
	} else {
		items, err = uc.store.List(ctx, kind, &window)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}
	return items, nil
}

// matchCandidates keeps snapshot order: items inside the window whose title
// fuzzy-matches the intent's.
func matchCandidates(intent model.ScheduleIntent, snapshot []model.CalendarItem, window repository.TimeRange) []model.CalendarItem {
	var out []model.CalendarItem
	for _, item := range snapshot {
		if !withinWindow(item, window) {
			continue
		}
		if titleMatches(intent.Title, item.Title) {
			out = append(out, item)
		}
	}
	return out
}

// withinWindow checks the item's own time range against the search window.
// Reminders without a due time always pass; they match on title alone.
func withinWindow(item model.CalendarItem, window repository.TimeRange) bool {
	if !item.HasDueTime {
		return true
	}
	end := item.EndTime
	if end.IsZero() {
		end = item.StartTime
	}
	return !item.StartTime.After(window.To) && !end.Before(window.From)
}

// titleMatches is the symmetric case-insensitive containment rule: either
// title containing the other counts. Empty titles never match.
func titleMatches(intentTitle, itemTitle string) bool {
	a := strings.ToLower(strings.TrimSpace(intentTitle))
	b := strings.ToLower(strings.TrimSpace(itemTitle))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
