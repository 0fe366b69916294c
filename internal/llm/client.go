// Package llm provides interfaces and implementations for text-generation
// providers used by the AI schedule generator.
package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client defines the interface for text-generation providers. The response
// is free text: not guaranteed to be valid JSON, and not guaranteed to
// respect any instruction given in the prompt.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// UpstreamError reports a failure of the external generation service,
// distinguishing "the AI failed" from "your input was invalid".
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
