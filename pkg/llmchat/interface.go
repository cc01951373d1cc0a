package llmchat

import "context"

// IChat defines the interface for an OpenAI-compatible chat completions client.
// Implementations are safe for concurrent use.
type IChat interface {
	// GenerateContent sends a single request/response completion exchange.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new chat client with the given configuration.
func New(cfg Config) (IChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newChatImpl(cfg), nil
}
