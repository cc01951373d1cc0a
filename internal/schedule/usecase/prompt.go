package usecase

import "fmt"

// IntentParsingSystemPrompt is the system instruction sent to the model for
// intent extraction. The schema contract and disambiguation rules live here;
// the normalizer's defaulting is the safety net when the model ignores them.
const IntentParsingSystemPrompt = `You are a scheduling assistant. Your job is to convert the user's request into exactly one structured scheduling action.

RULES:
1. Return ONLY a single valid JSON object. No markdown, no code blocks, no explanation text.
2. The object has these fields:
   - intent_type: MUST be exactly one of: "add", "delete", "modify"
   - target: MUST be exactly one of: "event", "reminder"
   - title: Short, clear label for the item (required)
   - start_time: Absolute ISO8601 (RFC3339) date-time string WITH UTC offset, e.g. "2026-02-24T09:00:00+08:00"
   - end_time: Absolute ISO8601 (RFC3339) date-time string WITH UTC offset
   - is_all_day: true when the request names a day but no time of day
   - location: Place string, omit when not mentioned
   - notes: Extra details, omit when not mentioned
3. Use "reminder" when the request reads like a task, todo, errand or checklist item ("remind me", "don't forget", "need to buy"). Use "event" for anything with a place, other people, or a time span.
4. Use "delete" when the user wants something cancelled or removed, "modify" when an existing item should change, otherwise "add".
5. Resolve relative dates ("tomorrow", "next Friday") against the CURRENT TIME below and emit the same UTC offset it carries.
6. For an image of a poster, ticket or screenshot, read the date from the image. When the image shows a date without a year, pick the next occurrence of that date from the current time.
7. If no time of day is mentioned, set is_all_day to true and use 00:00:00 of the target day.

CURRENT TIME: %s`

// summarySystemPrompt asks for the daily briefing over a rendered item list.
const summarySystemPrompt = `You are a scheduling assistant. Summarize the user's upcoming schedule in 2-4 friendly sentences. Mention today's items first, then the rest of the week. Mention open reminders at the end. Do not invent items.`

// imageOnlyInstruction substitutes for user text when only an image is given.
const imageOnlyInstruction = "Extract the scheduling action from this image."

// BuildParsePrompt builds the system prompt for intent extraction, embedding
// the current local time with its UTC offset.
func BuildParsePrompt(currentTime string) string {
	return fmt.Sprintf(IntentParsingSystemPrompt, currentTime)
}
