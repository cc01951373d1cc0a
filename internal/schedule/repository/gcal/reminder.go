package gcal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/tasks/v1"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
)

// Reminders map onto Google Tasks: a task list is a reminder list, a task's
// due date is the reminder's due time. Completed tasks are excluded.

func (s *Store) listReminders(ctx context.Context) ([]model.CalendarItem, error) {
	lists, err := s.tasksSvc.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	var items []model.CalendarItem
	for _, list := range lists.Items {
		taskList, err := s.tasksSvc.Tasks.List(list.Id).ShowCompleted(false).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks of %s: %w", list.Id, err)
		}
		for _, t := range taskList.Items {
			items = append(items, taskToItem(list.Id, t))
		}
	}

	return items, nil
}

func taskToItem(listID string, t *tasks.Task) model.CalendarItem {
	item := model.CalendarItem{
		Identifier: joinID(listID, t.Id),
		Title:      t.Title,
		CalendarID: listID,
		Notes:      t.Notes,
	}

	if t.Due != "" {
		if due, err := time.Parse(time.RFC3339, t.Due); err == nil {
			item.StartTime = due
			item.EndTime = due
			item.HasDueTime = true
		}
	}

	return item
}

func (s *Store) reminderDestinations(ctx context.Context) ([]model.Destination, error) {
	lists, err := s.tasksSvc.Tasklists.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list task lists: %w", err)
	}

	dests := make([]model.Destination, 0, len(lists.Items))
	for i, list := range lists.Items {
		dests = append(dests, model.Destination{
			ID:      list.Id,
			Title:   list.Title,
			Primary: i == 0, // the Tasks API returns the default list first
		})
	}
	return dests, nil
}

func (s *Store) createReminder(ctx context.Context, fields repository.ItemFields, listID string) (string, error) {
	t := &tasks.Task{}
	if fields.Title != nil {
		t.Title = *fields.Title
	}
	t.Notes = reminderNotes(fields)
	if fields.Start != nil {
		t.Due = fields.Start.Format(time.RFC3339)
	}

	created, err := s.tasksSvc.Tasks.Insert(listID, t).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}
	return joinID(listID, created.Id), nil
}

func (s *Store) updateReminder(ctx context.Context, identifier string, fields repository.ItemFields) error {
	listID, taskID := splitID(identifier)

	t, err := s.tasksSvc.Tasks.Get(listID, taskID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrItemGone, err)
	}

	if fields.Title != nil {
		t.Title = *fields.Title
	}
	if fields.Notes != nil || fields.Location != nil {
		t.Notes = reminderNotes(fields)
	}
	if fields.Start != nil {
		t.Due = fields.Start.Format(time.RFC3339)
	}

	if _, err := s.tasksSvc.Tasks.Update(listID, taskID, t).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *Store) removeReminder(ctx context.Context, identifier string) error {
	listID, taskID := splitID(identifier)
	if err := s.tasksSvc.Tasks.Delete(listID, taskID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// reminderNotes folds location into the notes body since tasks have no
// location field of their own.
func reminderNotes(fields repository.ItemFields) string {
	var parts []string
	if fields.Notes != nil && *fields.Notes != "" {
		parts = append(parts, *fields.Notes)
	}
	if fields.Location != nil && *fields.Location != "" {
		parts = append(parts, "Location: "+*fields.Location)
	}
	return strings.Join(parts, "\n")
}
