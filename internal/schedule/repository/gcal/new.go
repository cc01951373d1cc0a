package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/tasks/v1"

	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	pkgLog "schedule-assistant/pkg/log"
)

// Scopes requested from Google: events live in Calendar, reminders in Tasks.
var scopes = []string{calendar.CalendarScope, tasks.TasksScope}

// Store implements repository.Store on top of Google Calendar and Google Tasks.
type Store struct {
	calSvc   *calendar.Service
	tasksSvc *tasks.Service
	timezone string
	l        pkgLog.Logger
}

var _ repository.Store = (*Store)(nil)

// Config holds credentials and defaults for the Google-backed store.
type Config struct {
	CredentialsPath string
	TokenPath       string // OAuth desktop flow token, see scripts/gcal-auth
	Timezone        string // IANA name used for event payloads
}

// New creates a Store from a Service Account JSON file, falling back to OAuth
// desktop credentials plus a stored token.
func New(ctx context.Context, cfg Config, l pkgLog.Logger) (*Store, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	tokenSource, err := tokenSourceFromJSON(ctx, data, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	calSvc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	tasksSvc, err := tasks.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return &Store{
		calSvc:   calSvc,
		tasksSvc: tasksSvc,
		timezone: cfg.Timezone,
		l:        l,
	}, nil
}

func tokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	// Service account first
	if jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, scopes...); err == nil {
		return jwtConfig.TokenSource(ctx), nil
	}

	// OAuth desktop credentials + stored token
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &oauthCreds); err != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported google credentials format")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = "token.json"
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no %s found: run scripts/gcal-auth first", tokenPath)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}

	return oauthConfig.TokenSource(ctx, &tok), nil
}

// Authorized probes the relevant sub-store with a cheap one-item read.
func (s *Store) Authorized(ctx context.Context, kind model.TargetKind) error {
	var err error
	if kind == model.TargetReminder {
		_, err = s.tasksSvc.Tasklists.List().MaxResults(1).Context(ctx).Do()
	} else {
		_, err = s.calSvc.CalendarList.List().MaxResults(1).Context(ctx).Do()
	}
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrNotAuthorized, err)
	}
	return nil
}

// Items carry a composite "containerID/itemID" identifier so a single string
// addresses both the calendar/list and the record within it.
func joinID(containerID, itemID string) string {
	return containerID + "/" + itemID
}

func splitID(identifier string) (containerID, itemID string) {
	idx := strings.LastIndex(identifier, "/")
	if idx < 0 {
		return "", identifier
	}
	return identifier[:idx], identifier[idx+1:]
}
