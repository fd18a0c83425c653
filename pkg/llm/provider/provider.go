package provider

import (
	"context"

	"github.com/llmite-ai/mirra/pkg/llm"
)

// Caller sends a single user prompt to one provider and returns what came back.
// Implementations perform exactly one HTTP exchange per Call and never retry.
type Caller interface {
	// Name returns the canonical provider name (e.g., "gemini", "openai", "anthropic")
	Name() string

	// Call sends prompt as a single user message.
	// An empty Reply is not an error; a non-success HTTP status is returned as
	// *llm.StatusError.
	Call(ctx context.Context, prompt string) (*llm.Reply, error)
}
