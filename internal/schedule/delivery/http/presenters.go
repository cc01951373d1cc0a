package http

import (
	"time"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule"
)

// --- Request DTOs ---

type extractReq struct {
	Text        string `json:"text"         binding:"max=4000"`
	ImageBase64 string `json:"image_base64" binding:"omitempty,base64"`
	AutoApply   bool   `json:"auto_apply"`
	CalendarID  string `json:"calendar_id"`
	ListID      string `json:"list_id"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() schedule.ExtractInput {
	return schedule.ExtractInput{
		RawText:     r.Text,
		ImageBase64: r.ImageBase64,
		AutoApply:   r.AutoApply,
		Prefs: model.Preferences{
			DefaultCalendarID:     r.CalendarID,
			DefaultReminderListID: r.ListID,
		},
	}
}

// ---

type intentReq struct {
	ID        string    `json:"id"`
	Type      string    `json:"intent_type" binding:"omitempty,oneof=add modify delete"`
	Target    string    `json:"target"      binding:"omitempty,oneof=event reminder"`
	Title     string    `json:"title"       binding:"required,max=500"`
	StartTime time.Time `json:"start_time"  binding:"required"`
	EndTime   time.Time `json:"end_time"    binding:"required"`
	IsAllDay  bool      `json:"is_all_day"`
	Location  *string   `json:"location"`
	Notes     *string   `json:"notes"`
}

func (r intentReq) toIntent() model.ScheduleIntent {
	intent := model.ScheduleIntent{
		ID:        r.ID,
		Type:      model.ParseIntentType(r.Type),
		Target:    model.ParseTargetKind(r.Target),
		Title:     r.Title,
		StartDate: r.StartTime,
		EndDate:   r.EndTime,
		IsAllDay:  r.IsAllDay,
	}
	if r.Location != nil {
		intent.HasLocation = true
		intent.Location = *r.Location
	}
	if r.Notes != nil {
		intent.HasNotes = true
		intent.Notes = *r.Notes
	}
	return intent
}

type applyReq struct {
	Intent      intentReq `json:"intent"      binding:"required"`
	Destination string    `json:"destination"`
	CalendarID  string    `json:"calendar_id"`
	ListID      string    `json:"list_id"`
}

func (r applyReq) validate() error { return nil }

func (r applyReq) toInput() schedule.ApplyInput {
	return schedule.ApplyInput{
		Intent:              r.Intent.toIntent(),
		DestinationOverride: r.Destination,
		Prefs: model.Preferences{
			DefaultCalendarID:     r.CalendarID,
			DefaultReminderListID: r.ListID,
		},
	}
}

// ---

type listReq struct {
	Target string `form:"target" binding:"omitempty,oneof=event reminder"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() schedule.ListInput {
	return schedule.ListInput{Target: model.ParseTargetKind(r.Target)}
}

// --- Response DTOs ---

type intentResp struct {
	ID        string  `json:"id"`
	Type      string  `json:"intent_type"`
	Target    string  `json:"target"`
	Title     string  `json:"title"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	IsAllDay  bool    `json:"is_all_day"`
	Location  *string `json:"location,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func newIntentResp(intent model.ScheduleIntent) intentResp {
	resp := intentResp{
		ID:        intent.ID,
		Type:      string(intent.Type),
		Target:    string(intent.Target),
		Title:     intent.Title,
		StartTime: intent.StartDate.Format(time.RFC3339),
		EndTime:   intent.EndDate.Format(time.RFC3339),
		IsAllDay:  intent.IsAllDay,
	}
	if intent.HasLocation {
		location := intent.Location
		resp.Location = &location
	}
	if intent.HasNotes {
		notes := intent.Notes
		resp.Notes = &notes
	}
	return resp
}

type extractResp struct {
	Intent  intentResp `json:"intent"`
	Applied bool       `json:"applied"`
	Message string     `json:"message,omitempty"`
}

func (h *handler) newExtractResp(out schedule.ExtractOutput) extractResp {
	return extractResp{
		Intent:  newIntentResp(out.Intent),
		Applied: out.Applied,
		Message: out.Message,
	}
}

type applyResp struct {
	Message string `json:"message"`
}

func (h *handler) newApplyResp(out schedule.ApplyOutput) applyResp {
	return applyResp{Message: out.Message}
}

type itemResp struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	IsAllDay   bool   `json:"is_all_day"`
	Location   string `json:"location,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func newItemResp(item model.CalendarItem) itemResp {
	resp := itemResp{
		Identifier: item.Identifier,
		Title:      item.Title,
		IsAllDay:   item.IsAllDay,
		Location:   item.Location,
		Notes:      item.Notes,
	}
	if !item.StartTime.IsZero() {
		resp.StartTime = item.StartTime.Format(time.RFC3339)
	}
	if !item.EndTime.IsZero() {
		resp.EndTime = item.EndTime.Format(time.RFC3339)
	}
	return resp
}

type listResp struct {
	Items []itemResp `json:"items"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out schedule.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items, Count: out.Count}
}

type summaryResp struct {
	Summary       string `json:"summary"`
	EventCount    int    `json:"event_count"`
	ReminderCount int    `json:"reminder_count"`
}

func (h *handler) newSummaryResp(out schedule.SummarizeOutput) summaryResp {
	return summaryResp{
		Summary:       out.Summary,
		EventCount:    out.EventCount,
		ReminderCount: out.ReminderCount,
	}
}
