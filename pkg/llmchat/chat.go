package llmchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newChatImpl creates a new chat implementation.
func newChatImpl(cfg Config) *chatImpl {
	return &chatImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a single chat completion request. It performs no
// retries; retry policy belongs to the caller.
func (c *chatImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := c.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("llmchat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("llmchat: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		var errResp openAIErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: API error %d: %s", ErrTransport, resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: API error %d: %s", ErrTransport, resp.StatusCode, string(respBody))
	}

	var wireResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrProtocol, err)
	}

	if len(wireResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response contains no choices", ErrProtocol)
	}
	content := wireResp.Choices[0].Message.Content
	if content == "" {
		return nil, fmt.Errorf("%w: response message content is empty", ErrProtocol)
	}

	return &Response{Content: content}, nil
}

// Model returns the model being used.
func (c *chatImpl) Model() string {
	return c.model
}

// transformRequest converts the request to the OpenAI wire format. Messages
// carrying an image become a part-array content; plain text stays a string.
func (c *chatImpl) transformRequest(req *Request) *openAIRequest {
	wireReq := &openAIRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		wireReq.Messages = append(wireReq.Messages, transformMessage(msg))
	}

	return wireReq
}

func transformMessage(msg Message) openAIMessage {
	if msg.ImageBase64 == "" {
		return openAIMessage{Role: msg.Role, Content: msg.Text}
	}

	return openAIMessage{
		Role: msg.Role,
		Content: []openAIContentPart{
			{Type: "text", Text: msg.Text},
			{Type: "image_url", ImageURL: &openAIImageURL{
				URL: "data:image/jpeg;base64," + msg.ImageBase64,
			}},
		},
	}
}
