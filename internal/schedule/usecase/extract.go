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

const parseTemperature = 0.2 // low temperature for deterministic JSON output

// ExtractIntent normalizes a natural-language/vision request into a
// structured ScheduleIntent via the model backend. Transport and protocol
// failures propagate verbatim; malformed-but-delivered model output never
// fails, it degrades to the default intent.
func (uc *implUseCase) ExtractIntent(ctx context.Context, input schedule.ExtractInput) (schedule.ExtractOutput, error) {
	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" && input.ImageBase64 == "" {
		return schedule.ExtractOutput{}, schedule.ErrEmptyInput
	}

	now := time.Now().In(uc.dates.Location())

	userText := rawText
	if userText == "" {
		userText = imageOnlyInstruction
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmchat.Request{
		Messages: []llmchat.Message{
			{Role: llmchat.RoleSystem, Text: BuildParsePrompt(now.Format(time.RFC3339))},
			{Role: llmchat.RoleUser, Text: userText, ImageBase64: input.ImageBase64},
		},
		Temperature: parseTemperature,
	})
	if err != nil {
		return schedule.ExtractOutput{}, fmt.Errorf("model request failed: %w", err)
	}

	uc.l.Debugf(ctx, "ExtractIntent: raw model response: %s", resp.Content)

	intent := normalizeIntent(resp.Content, rawText, now, uc.dates)
	uc.l.Infof(ctx, "ExtractIntent: %s %s %q start=%s allday=%v",
		intent.Type, intent.Target, intent.Title, intent.StartDate.Format(time.RFC3339), intent.IsAllDay)

	out := schedule.ExtractOutput{
		Intent:   intent,
		RawDebug: resp.Content,
	}

	// Add intents always go back to the caller for confirmation. Destructive
	// intents may commit in the same run when asked to.
	if input.AutoApply && intent.Type != model.IntentAdd {
		applied, err := uc.ApplyIntent(ctx, schedule.ApplyInput{
			Intent: intent,
			Prefs:  input.Prefs,
		})
		if err != nil {
			return schedule.ExtractOutput{}, err
		}
		out.Applied = true
		out.Message = applied.Message
	}

	return out, nil
}
