package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/llmchat"
)

func TestListItemsEvents(t *testing.T) {
	store := &mockStore{
		events: []model.CalendarItem{
			eventItem("1", "Standup", time.Now().Add(time.Hour), 15*time.Minute),
			eventItem("2", "Retro", time.Now().Add(48*time.Hour), time.Hour),
		},
	}
	uc := newTestUseCase(store, &mockChat{})

	out, err := uc.ListItems(context.Background(), schedule.ListInput{Target: model.TargetEvent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 2 || len(out.Items) != 2 {
		t.Errorf("count = %d, items = %d", out.Count, len(out.Items))
	}

	if store.lastWindow == nil {
		t.Fatal("event listing must be windowed")
	}
	if got := store.lastWindow.To.Sub(store.lastWindow.From); got != 7*24*time.Hour {
		t.Errorf("window span = %v, want one week", got)
	}
}

func TestListItemsRemindersUnwindowed(t *testing.T) {
	store := &mockStore{
		reminders: []model.CalendarItem{
			{Identifier: "list/1", Title: "Buy milk"},
		},
	}
	uc := newTestUseCase(store, &mockChat{})

	out, err := uc.ListItems(context.Background(), schedule.ListInput{Target: model.TargetReminder})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("count = %d", out.Count)
	}
	if store.lastWindow != nil {
		t.Error("reminder listing must not set an event window")
	}
}

func TestListItemsUnauthorized(t *testing.T) {
	store := &mockStore{authErr: errors.New("token expired")}
	uc := newTestUseCase(store, &mockChat{})
	_, err := uc.ListItems(context.Background(), schedule.ListInput{Target: model.TargetEvent})
	if !errors.Is(err, schedule.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	store := &mockStore{
		events: []model.CalendarItem{
			eventItem("1", "Standup", time.Now().Add(time.Hour), 15*time.Minute),
		},
		reminders: []model.CalendarItem{
			{Identifier: "list/1", Title: "Buy milk"},
			{Identifier: "list/2", Title: "Call plumber"},
		},
	}
	chat := &mockChat{response: &llmchat.Response{Content: "  Busy week ahead.\n"}}
	uc := newTestUseCase(store, chat)

	out, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "Busy week ahead." {
		t.Errorf("summary = %q", out.Summary)
	}
	if out.EventCount != 1 || out.ReminderCount != 2 {
		t.Errorf("counts = %d/%d", out.EventCount, out.ReminderCount)
	}
}

func TestSummarizeUnauthorized(t *testing.T) {
	store := &mockStore{authErr: errors.New("token expired")}
	uc := newTestUseCase(store, &mockChat{})
	_, err := uc.Summarize(context.Background())
	if !errors.Is(err, schedule.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestSummarizeEmptyWeek(t *testing.T) {
	// No model call should happen for an empty store.
	chat := &mockChat{err: errors.New("must not be called")}
	uc := newTestUseCase(&mockStore{}, chat)

	out, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Summary != "Nothing scheduled for the coming week." {
		t.Errorf("summary = %q", out.Summary)
	}
}

func TestRenderItemList(t *testing.T) {
	events := []model.CalendarItem{
		{Title: "Conference", StartTime: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), IsAllDay: true},
		{Title: "Standup", StartTime: time.Date(2024, 6, 11, 9, 30, 0, 0, time.UTC)},
	}
	reminders := []model.CalendarItem{
		{Title: "Buy milk"},
	}

	got := renderItemList(events, reminders)
	for _, want := range []string{
		"- Conference (2024-06-10, all day)",
		"- Standup (2024-06-11 09:30)",
		"- Buy milk",
		"EVENTS:",
		"REMINDERS:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered list missing %q:\n%s", want, got)
		}
	}
}
