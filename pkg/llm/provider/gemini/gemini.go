// Package gemini calls Gemini's generateContent endpoint through the mirra
// proxy, either with a hand-built REST request or through Google's genai SDK.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/llmite-ai/mirra/pkg/llm"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// Transport names, mirrored from pkg/config so this package stays free of
// CLI concerns.
const (
	TransportREST  = "rest"
	TransportGenAI = "genai"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the proxy root, e.g. http://localhost:4567
	BaseURL string

	APIKey     string
	Model      string
	APIVersion string

	// Transport selects TransportREST (default) or TransportGenAI.
	Transport string

	// RequestID is sent as X-Request-Id when non-empty.
	RequestID string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	Logger *slog.Logger
}

// Client is a provider.Caller for Gemini.
type Client struct {
	cfg Config
}

var _ provider.Caller = (*Client)(nil)

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gemini: base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini: model is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "v1beta"
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportREST
	}
	if cfg.Transport != TransportREST && cfg.Transport != TransportGenAI {
		return nil, fmt.Errorf("gemini: unknown transport %q (supported: %s, %s)", cfg.Transport, TransportREST, TransportGenAI)
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return &Client{cfg: cfg}, nil
}

// Name returns the canonical provider name.
func (c *Client) Name() string {
	return provider.Gemini
}

// Call sends prompt over the configured transport.
func (c *Client) Call(ctx context.Context, prompt string) (*llm.Reply, error) {
	if c.cfg.Transport == TransportGenAI {
		return c.callGenAI(ctx, prompt)
	}
	return c.callREST(ctx, prompt)
}

// Endpoint returns the generateContent URL including the key query parameter.
func (c *Client) Endpoint() string {
	query := url.Values{"key": {c.cfg.APIKey}}
	return fmt.Sprintf("%s/%s/models/%s:generateContent?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		c.cfg.APIVersion,
		url.PathEscape(c.cfg.Model),
		query.Encode(),
	)
}

func (c *Client) callREST(ctx context.Context, prompt string) (*llm.Reply, error) {
	body, err := json.Marshal(NewGenerateContentRequest(prompt))
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.RequestID != "" {
		httpReq.Header.Set("X-Request-Id", c.cfg.RequestID)
	}

	c.cfg.Logger.Debug("sending generateContent request",
		"model", c.cfg.Model,
		"api_version", c.cfg.APIVersion,
		"body_bytes", len(body),
	)

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &llm.StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed GenerateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	reply := &llm.Reply{
		Provider: provider.Gemini,
		Model:    c.cfg.Model,
		Texts:    parsed.Texts(),
	}
	if u := parsed.UsageMetadata; u != nil {
		reply.Usage = &llm.Usage{
			InputTokens:  u.PromptTokenCount,
			OutputTokens: u.CandidatesTokenCount,
			TotalTokens:  u.TotalTokenCount,
		}
	}

	return reply, nil
}
