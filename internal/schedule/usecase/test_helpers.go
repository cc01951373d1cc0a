package usecase

import (
	"context"
	"errors"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	"schedule-assistant/pkg/dateparse"
	"schedule-assistant/pkg/llmchat"
)

func mustParser(timezone string) *dateparse.Parser {
	p, err := dateparse.NewParser(timezone)
	if err != nil {
		panic(err)
	}
	return p
}

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)   {}

// Mock chat client for testing
type mockChat struct {
	response *llmchat.Response
	err      error
}

func (m *mockChat) GenerateContent(ctx context.Context, req *llmchat.Request) (*llmchat.Response, error) {
	return m.response, m.err
}

func (m *mockChat) Model() string { return "chat-test" }

// Mock store for testing
type mockStore struct {
	events       []model.CalendarItem
	reminders    []model.CalendarItem
	destinations map[model.TargetKind][]model.Destination
	authErr      error
	listErr      error

	createdKind model.TargetKind
	createdDest string
	created     *repository.ItemFields
	updatedID   string
	updated     *repository.ItemFields
	removedID   string

	// lastWindow records the window of the most recent event List call.
	lastWindow *repository.TimeRange
}

func (m *mockStore) Authorized(ctx context.Context, kind model.TargetKind) error {
	return m.authErr
}

func (m *mockStore) List(ctx context.Context, kind model.TargetKind, window *repository.TimeRange) ([]model.CalendarItem, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if kind == model.TargetReminder {
		return m.reminders, nil
	}
	m.lastWindow = window
	return m.events, nil
}

func (m *mockStore) Destinations(ctx context.Context, kind model.TargetKind) ([]model.Destination, error) {
	return m.destinations[kind], nil
}

func (m *mockStore) Create(ctx context.Context, kind model.TargetKind, fields repository.ItemFields, destinationID string) (string, error) {
	m.createdKind = kind
	m.createdDest = destinationID
	m.created = &fields
	return destinationID + "/new-item", nil
}

func (m *mockStore) Update(ctx context.Context, kind model.TargetKind, identifier string, fields repository.ItemFields) error {
	for _, item := range append(m.events, m.reminders...) {
		if item.Identifier == identifier {
			m.updatedID = identifier
			m.updated = &fields
			return nil
		}
	}
	return errors.New("update: unknown identifier " + identifier)
}

func (m *mockStore) Remove(ctx context.Context, kind model.TargetKind, identifier string) error {
	for _, item := range append(m.events, m.reminders...) {
		if item.Identifier == identifier {
			m.removedID = identifier
			return nil
		}
	}
	return errors.New("remove: unknown identifier " + identifier)
}

// newTestUseCase builds an implUseCase over mocks.
func newTestUseCase(store *mockStore, chat *mockChat) *implUseCase {
	return newTestUseCaseTZ(store, chat, "UTC")
}

func newTestUseCaseTZ(store *mockStore, chat *mockChat, timezone string) *implUseCase {
	dates := mustParser(timezone)
	return New(&mockLogger{}, chat, store, dates)
}
