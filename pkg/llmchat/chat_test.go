package llmchat_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"schedule-assistant/pkg/llmchat"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (llmchat.IChat, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := llmchat.New(llmchat.Config{
		APIKey:  "test-api-key",
		Model:   "test-model",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, ts
}

func TestConfigValidate(t *testing.T) {
	cfg := llmchat.Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing API key")
	}

	cfg = llmchat.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != llmchat.DefaultModel {
		t.Errorf("default model not applied: %q", cfg.Model)
	}
	if cfg.BaseURL != llmchat.DefaultBaseURL {
		t.Errorf("default base URL not applied: %q", cfg.BaseURL)
	}
}

func TestGenerateContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Model != "test-model" || len(body.Messages) != 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Write([]byte(`{"choices":[{"message":{"content":"mocked reply"}}]}`))
	})

	resp, err := client.GenerateContent(context.Background(), &llmchat.Request{
		Messages: []llmchat.Message{
			{Role: llmchat.RoleSystem, Text: "system prompt"},
			{Role: llmchat.RoleUser, Text: "user text"},
		},
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != "mocked reply" {
		t.Errorf("unexpected content: %q", resp.Content)
	}
}

func TestGenerateContentWithImage(t *testing.T) {
	var gotBody []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"choices":[{"message":{"content":"saw the image"}}]}`))
	})

	_, err := client.GenerateContent(context.Background(), &llmchat.Request{
		Messages: []llmchat.Message{
			{Role: llmchat.RoleUser, Text: "what is on this poster", ImageBase64: "aGVsbG8="},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := string(gotBody)
	if !strings.Contains(body, `"type":"image_url"`) {
		t.Errorf("image part missing from wire request: %s", body)
	}
	if !strings.Contains(body, "data:image/jpeg;base64,aGVsbG8=") {
		t.Errorf("inline data URL missing from wire request: %s", body)
	}
}

func TestGenerateContentHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"backend exploded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), &llmchat.Request{
		Messages: []llmchat.Message{{Role: llmchat.RoleUser, Text: "hi"}},
	})
	if !errors.Is(err, llmchat.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !strings.Contains(err.Error(), "backend exploded") {
		t.Errorf("error should carry backend message: %v", err)
	}
}

func TestGenerateContentConnectFailure(t *testing.T) {
	client, err := llmchat.New(llmchat.Config{
		APIKey:  "k",
		BaseURL: "http://127.0.0.1:1", // nothing listens here
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.GenerateContent(context.Background(), &llmchat.Request{
		Messages: []llmchat.Message{{Role: llmchat.RoleUser, Text: "hi"}},
	})
	if !errors.Is(err, llmchat.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestGenerateContentProtocolError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `<html>gateway error</html>`},
		{"no choices", `{"choices":[]}`},
		{"empty content", `{"choices":[{"message":{"content":""}}]}`},
		{"wrong shape", `{"result":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := client.GenerateContent(context.Background(), &llmchat.Request{
				Messages: []llmchat.Message{{Role: llmchat.RoleUser, Text: "hi"}},
			})
			if !errors.Is(err, llmchat.ErrProtocol) {
				t.Fatalf("expected ErrProtocol, got %v", err)
			}
		})
	}
}
