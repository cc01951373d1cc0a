package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
	"schedule-assistant/pkg/llmchat"
)

const summaryTemperature = 0.6

// Summarize produces a short natural-language briefing of the upcoming week's
// events and open reminders.
func (uc *implUseCase) Summarize(ctx context.Context) (schedule.SummarizeOutput, error) {
	if err := uc.store.Authorized(ctx, model.TargetEvent); err != nil {
		return schedule.SummarizeOutput{}, fmt.Errorf("%w: %v", schedule.ErrNotAuthorized, err)
	}

	events, err := uc.snapshotUpcoming(ctx, model.TargetEvent)
	if err != nil {
		return schedule.SummarizeOutput{}, err
	}
	reminders, err := uc.snapshotUpcoming(ctx, model.TargetReminder)
	if err != nil {
		return schedule.SummarizeOutput{}, err
	}

	out := schedule.SummarizeOutput{
		EventCount:    len(events),
		ReminderCount: len(reminders),
	}

	if len(events) == 0 && len(reminders) == 0 {
		out.Summary = "Nothing scheduled for the coming week."
		return out, nil
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmchat.Request{
		Messages: []llmchat.Message{
			{Role: llmchat.RoleSystem, Text: summarySystemPrompt},
			{Role: llmchat.RoleUser, Text: renderItemList(events, reminders)},
		},
		Temperature: summaryTemperature,
	})
	if err != nil {
		return schedule.SummarizeOutput{}, fmt.Errorf("model request failed: %w", err)
	}

	out.Summary = strings.TrimSpace(resp.Content)
	return out, nil
}

// renderItemList flattens the snapshot into the plain-text listing the
// summary prompt consumes.
func renderItemList(events, reminders []model.CalendarItem) string {
	var sb strings.Builder

	sb.WriteString("EVENTS:\n")
	if len(events) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, ev := range events {
		if ev.IsAllDay {
			fmt.Fprintf(&sb, "- %s (%s, all day)\n", ev.Title, ev.StartTime.Format("2006-01-02"))
		} else {
			fmt.Fprintf(&sb, "- %s (%s)\n", ev.Title, ev.StartTime.Format("2006-01-02 15:04"))
		}
	}

	sb.WriteString("\nREMINDERS:\n")
	if len(reminders) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, r := range reminders {
		if r.HasDueTime {
			fmt.Fprintf(&sb, "- %s (due %s)\n", r.Title, r.StartTime.Format(time.RFC3339))
		} else {
			fmt.Fprintf(&sb, "- %s\n", r.Title)
		}
	}

	return sb.String()
}
