package llmchat

import "errors"

var (
	// ErrTransport indicates a network failure or non-success HTTP status
	// talking to the model backend.
	ErrTransport = errors.New("llm transport failure")

	// ErrProtocol indicates the response body does not contain the expected
	// message-content shape.
	ErrProtocol = errors.New("llm protocol violation")
)
