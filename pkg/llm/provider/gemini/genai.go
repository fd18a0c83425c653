package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/llmite-ai/mirra/pkg/llm"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// callGenAI sends prompt through the genai SDK with its base URL pointed at
// the proxy. The SDK authenticates with the x-goog-api-key header instead of
// the key query parameter.
func (c *Client) callGenAI(ctx context.Context, prompt string) (*llm.Reply, error) {
	headers := http.Header{}
	if c.cfg.RequestID != "" {
		headers.Set("X-Request-Id", c.cfg.RequestID)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    c.cfg.BaseURL,
			APIVersion: c.cfg.APIVersion,
			Headers:    headers,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	c.cfg.Logger.Debug("sending genai GenerateContent request",
		"model", c.cfg.Model,
		"api_version", c.cfg.APIVersion,
	)

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		if statusErr := asStatusError(err); statusErr != nil {
			return nil, statusErr
		}
		return nil, fmt.Errorf("generating content: %w", err)
	}

	reply := &llm.Reply{
		Provider: provider.Gemini,
		Model:    c.cfg.Model,
		Texts:    genaiTexts(resp),
	}
	if u := resp.UsageMetadata; u != nil {
		reply.Usage = &llm.Usage{
			InputTokens:  int64(u.PromptTokenCount),
			OutputTokens: int64(u.CandidatesTokenCount),
			TotalTokens:  int64(u.TotalTokenCount),
		}
	}

	return reply, nil
}

// genaiTexts applies the same walk as GenerateContentResponse.Texts to the
// SDK's response type. The SDK flattens absent text to "", so empty parts
// (function calls, inline data) are skipped.
func genaiTexts(resp *genai.GenerateContentResponse) []string {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}

	first := resp.Candidates[0]
	if first == nil || first.Content == nil {
		return nil
	}

	var texts []string
	for _, part := range first.Content.Parts {
		if part != nil && part.Text != "" {
			texts = append(texts, part.Text)
		}
	}

	return texts
}

func asStatusError(err error) *llm.StatusError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &llm.StatusError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &llm.StatusError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}

	return nil
}
