package usecase

import (
	"context"
	"fmt"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/internal/schedule/repository"
)

// upcomingDays is the event window for listing and summaries.
const upcomingDays = 7

// ListItems reads the current store snapshot for one target kind. Events are
// windowed to the upcoming week; reminders return the full open list.
func (uc *implUseCase) ListItems(ctx context.Context, input schedule.ListInput) (schedule.ListOutput, error) {
	if err := uc.store.Authorized(ctx, input.Target); err != nil {
		return schedule.ListOutput{}, fmt.Errorf("%w: %v", schedule.ErrNotAuthorized, err)
	}

	items, err := uc.snapshotUpcoming(ctx, input.Target)
	if err != nil {
		return schedule.ListOutput{}, err
	}

	return schedule.ListOutput{Items: items, Count: len(items)}, nil
}

func (uc *implUseCase) snapshotUpcoming(ctx context.Context, kind model.TargetKind) ([]model.CalendarItem, error) {
	if kind == model.TargetReminder {
		items, err := uc.store.List(ctx, kind, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
		}
		return items, nil
	}

	now := time.Now().In(uc.dates.Location())
	window := repository.TimeRange{
		From: uc.dates.StartOfDay(now),
		To:   uc.dates.StartOfDay(now).AddDate(0, 0, upcomingDays),
	}
	items, err := uc.store.List(ctx, kind, &window)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}
	return items, nil
}
