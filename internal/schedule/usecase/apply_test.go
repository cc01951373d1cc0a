package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
)

func addIntent(title string, start time.Time) model.ScheduleIntent {
	return model.ScheduleIntent{
		ID:        "it-1",
		Type:      model.IntentAdd,
		Target:    model.TargetEvent,
		Title:     title,
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}
}

func TestApplyIntentAdd(t *testing.T) {
	start := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	store := &mockStore{
		destinations: map[model.TargetKind][]model.Destination{
			model.TargetEvent: {
				{ID: "side", Title: "Side"},
				{ID: "primary", Title: "Work", Primary: true},
			},
		},
	}
	uc := newTestUseCase(store, &mockChat{})

	intent := addIntent("Standup", start)
	intent.HasLocation = true
	intent.Location = "Room 4"

	out, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{Intent: intent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Added event: Standup" {
		t.Errorf("message = %q", out.Message)
	}
	if store.createdDest != "primary" {
		t.Errorf("destination = %q, want primary flag to win", store.createdDest)
	}
	if store.created == nil || store.created.Title == nil || *store.created.Title != "Standup" {
		t.Errorf("created fields = %+v", store.created)
	}
	if store.created.Location == nil || *store.created.Location != "Room 4" {
		t.Errorf("location not forwarded: %+v", store.created)
	}
	if store.created.Notes != nil {
		t.Errorf("notes must stay nil when the intent carries none")
	}
}

func TestApplyIntentAddDestinationFallbacks(t *testing.T) {
	start := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	t.Run("override wins over everything", func(t *testing.T) {
		store := &mockStore{}
		uc := newTestUseCase(store, &mockChat{})
		_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
			Intent:              addIntent("Standup", start),
			DestinationOverride: "explicit",
			Prefs:               model.Preferences{DefaultCalendarID: "configured"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.createdDest != "explicit" {
			t.Errorf("destination = %q", store.createdDest)
		}
	})

	t.Run("configured default before store lookup", func(t *testing.T) {
		store := &mockStore{}
		uc := newTestUseCase(store, &mockChat{})
		_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
			Intent: addIntent("Standup", start),
			Prefs:  model.Preferences{DefaultCalendarID: "configured"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.createdDest != "configured" {
			t.Errorf("destination = %q", store.createdDest)
		}
	})

	t.Run("first destination when none primary", func(t *testing.T) {
		store := &mockStore{
			destinations: map[model.TargetKind][]model.Destination{
				model.TargetEvent: {{ID: "a"}, {ID: "b"}},
			},
		}
		uc := newTestUseCase(store, &mockChat{})
		_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{Intent: addIntent("Standup", start)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.createdDest != "a" {
			t.Errorf("destination = %q", store.createdDest)
		}
	})

	t.Run("no destinations at all", func(t *testing.T) {
		store := &mockStore{}
		uc := newTestUseCase(store, &mockChat{})
		_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{Intent: addIntent("Standup", start)})
		if !errors.Is(err, schedule.ErrNoDestination) {
			t.Fatalf("expected ErrNoDestination, got %v", err)
		}
	})

	t.Run("reminder uses reminder default", func(t *testing.T) {
		store := &mockStore{}
		uc := newTestUseCase(store, &mockChat{})
		intent := addIntent("Buy milk", start)
		intent.Target = model.TargetReminder
		_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
			Intent: intent,
			Prefs: model.Preferences{
				DefaultCalendarID:     "cal-default",
				DefaultReminderListID: "list-default",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.createdDest != "list-default" {
			t.Errorf("destination = %q", store.createdDest)
		}
	})
}

func TestApplyIntentDelete(t *testing.T) {
	noon := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	store := &mockStore{
		events: []model.CalendarItem{
			eventItem("1", "Lunch with Sam", noon.Add(time.Hour), time.Hour),
		},
	}
	uc := newTestUseCase(store, &mockChat{})

	out, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
		Intent: model.ScheduleIntent{
			Type:      model.IntentDelete,
			Target:    model.TargetEvent,
			Title:     "Lunch",
			StartDate: noon,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The message names the stored item, not the intent's fuzzier title.
	if out.Message != "Deleted event: Lunch with Sam" {
		t.Errorf("message = %q", out.Message)
	}
	if store.removedID != "cal/1" {
		t.Errorf("removed %q", store.removedID)
	}
}

func TestApplyIntentModify(t *testing.T) {
	noon := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	store := &mockStore{
		events: []model.CalendarItem{
			eventItem("1", "Dentist", noon.Add(3*time.Hour), time.Hour),
		},
	}
	uc := newTestUseCase(store, &mockChat{})

	newStart := noon.Add(26 * time.Hour)
	out, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
		Intent: model.ScheduleIntent{
			Type:      model.IntentModify,
			Target:    model.TargetEvent,
			Title:     "Dentist",
			StartDate: noon,
			EndDate:   newStart.Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Message != "Updated event: Dentist" {
		t.Errorf("message = %q", out.Message)
	}
	if store.updatedID != "cal/1" {
		t.Errorf("updated %q", store.updatedID)
	}
	if store.updated.Location != nil || store.updated.Notes != nil {
		t.Errorf("untouched fields must be nil: %+v", store.updated)
	}
}

func TestApplyIntentModifyNotFound(t *testing.T) {
	noon := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&mockStore{}, &mockChat{})

	_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
		Intent: model.ScheduleIntent{
			Type:      model.IntentModify,
			Target:    model.TargetEvent,
			Title:     "Dentist",
			StartDate: noon,
		},
	})
	if !schedule.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestApplyIntentEmptyTitle(t *testing.T) {
	uc := newTestUseCase(&mockStore{}, &mockChat{})
	_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
		Intent: model.ScheduleIntent{Type: model.IntentAdd, Target: model.TargetEvent, Title: "   "},
	})
	if !errors.Is(err, schedule.ErrInvalidIntent) {
		t.Fatalf("expected ErrInvalidIntent, got %v", err)
	}
}

func TestApplyIntentUnauthorized(t *testing.T) {
	store := &mockStore{authErr: errors.New("token expired")}
	uc := newTestUseCase(store, &mockChat{})
	_, err := uc.ApplyIntent(context.Background(), schedule.ApplyInput{
		Intent: addIntent("Standup", time.Now()),
	})
	if !errors.Is(err, schedule.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if store.created != nil {
		t.Error("no mutation may happen when authorization fails")
	}
}
