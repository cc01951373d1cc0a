package gcal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
)

const eventDateFormat = "2006-01-02"

func (s *Store) listEvents(ctx context.Context, window *repository.TimeRange) ([]model.CalendarItem, error) {
	calendars, err := s.calSvc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	var items []model.CalendarItem
	for _, cal := range calendars.Items {
		call := s.calSvc.Events.List(cal.Id).SingleEvents(true).OrderBy("startTime")
		if window != nil {
			call = call.TimeMin(window.From.Format(time.RFC3339)).TimeMax(window.To.Format(time.RFC3339))
		}
		events, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list events of %s: %w", cal.Id, err)
		}
		for _, ev := range events.Items {
			items = append(items, eventToItem(cal.Id, ev))
		}
	}

	return items, nil
}

func eventToItem(calendarID string, ev *calendar.Event) model.CalendarItem {
	item := model.CalendarItem{
		Identifier: joinID(calendarID, ev.Id),
		Title:      ev.Summary,
		CalendarID: calendarID,
		Location:   ev.Location,
		Notes:      ev.Description,
		HasDueTime: true,
	}

	if ev.Start != nil {
		if ev.Start.DateTime != "" {
			item.StartTime, _ = time.Parse(time.RFC3339, ev.Start.DateTime)
		} else if ev.Start.Date != "" {
			item.StartTime, _ = time.Parse(eventDateFormat, ev.Start.Date)
			item.IsAllDay = true
		}
	}
	if ev.End != nil {
		if ev.End.DateTime != "" {
			item.EndTime, _ = time.Parse(time.RFC3339, ev.End.DateTime)
		} else if ev.End.Date != "" {
			item.EndTime, _ = time.Parse(eventDateFormat, ev.End.Date)
		}
	}

	return item
}

func (s *Store) eventDestinations(ctx context.Context) ([]model.Destination, error) {
	calendars, err := s.calSvc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	dests := make([]model.Destination, 0, len(calendars.Items))
	for _, cal := range calendars.Items {
		// Writable calendars only; reader/freeBusyReader roles cannot hold
		// created events.
		if cal.AccessRole != "owner" && cal.AccessRole != "writer" {
			continue
		}
		dests = append(dests, model.Destination{
			ID:      cal.Id,
			Title:   cal.Summary,
			Primary: cal.Primary,
		})
	}
	return dests, nil
}

func (s *Store) createEvent(ctx context.Context, fields repository.ItemFields, calendarID string) (string, error) {
	ev := &calendar.Event{}
	if fields.Title != nil {
		ev.Summary = *fields.Title
	}
	if fields.Location != nil {
		ev.Location = *fields.Location
	}
	if fields.Notes != nil {
		ev.Description = *fields.Notes
	}
	s.applyEventTimes(ev, fields)

	created, err := s.calSvc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return joinID(calendarID, created.Id), nil
}

func (s *Store) updateEvent(ctx context.Context, identifier string, fields repository.ItemFields) error {
	calendarID, eventID := splitID(identifier)

	ev, err := s.calSvc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrItemGone, err)
	}

	if fields.Title != nil {
		ev.Summary = *fields.Title
	}
	if fields.Location != nil {
		ev.Location = *fields.Location
	}
	if fields.Notes != nil {
		ev.Description = *fields.Notes
	}
	if fields.Start != nil || fields.End != nil || fields.IsAllDay != nil {
		s.applyEventTimes(ev, fields)
	}

	if _, err := s.calSvc.Events.Update(calendarID, eventID, ev).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	return nil
}

func (s *Store) removeEvent(ctx context.Context, identifier string) error {
	calendarID, eventID := splitID(identifier)
	if err := s.calSvc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// applyEventTimes sets Start/End. All-day events use the Date field; Google
// treats the end date as exclusive, so a same-day item ends the next day.
func (s *Store) applyEventTimes(ev *calendar.Event, fields repository.ItemFields) {
	allDay := fields.IsAllDay != nil && *fields.IsAllDay

	if fields.Start != nil {
		if allDay {
			ev.Start = &calendar.EventDateTime{Date: fields.Start.Format(eventDateFormat)}
		} else {
			ev.Start = &calendar.EventDateTime{DateTime: fields.Start.Format(time.RFC3339), TimeZone: s.timezone}
		}
	}
	if fields.End != nil {
		if allDay {
			ev.End = &calendar.EventDateTime{Date: fields.End.AddDate(0, 0, 1).Format(eventDateFormat)}
		} else {
			ev.End = &calendar.EventDateTime{DateTime: fields.End.Format(time.RFC3339), TimeZone: s.timezone}
		}
	}
}
