// Package llm holds the provider-agnostic result of a single prompt/reply
// exchange with a model.
package llm

// Reply is what one call to a provider produced. Texts holds the reply
// fragments in the order the provider returned them: one per Gemini part,
// one per OpenAI choice, one per Claude text block.
type Reply struct {
	// Provider that produced the reply (e.g., "gemini", "openai", "anthropic")
	Provider string `json:"provider"`

	// Model the request was sent to
	Model string `json:"model"`

	// Texts extracted from the response, possibly empty
	Texts []string `json:"texts"`

	// Token usage when the provider reported it
	Usage *Usage `json:"usage,omitempty"`
}

// Empty reports whether the provider returned nothing to print.
func (r *Reply) Empty() bool {
	return r == nil || len(r.Texts) == 0
}

// Usage contains token counts.
type Usage struct {
	InputTokens  int64 `json:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty"`
	TotalTokens  int64 `json:"total_tokens,omitempty"`
}
