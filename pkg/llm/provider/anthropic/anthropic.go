// Package anthropic calls Claude's Messages API through the mirra proxy using
// the official anthropic-sdk-go client.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/llmite-ai/mirra/pkg/llm"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// DefaultMaxTokens is used when Config.MaxTokens is zero.
const DefaultMaxTokens int64 = 1024

// Config configures a Client.
type Config struct {
	// BaseURL is the proxy root; the SDK appends /v1/messages.
	BaseURL string

	APIKey    string
	Model     string
	MaxTokens int64

	// RequestID is sent as X-Request-Id when non-empty.
	RequestID string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is a provider.Caller for Claude.
type Client struct {
	sdk       anthropicsdk.Client
	model     string
	maxTokens int64
	logger    *slog.Logger
}

var _ provider.Caller = (*Client)(nil)

// New builds the SDK client with retries disabled.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("anthropic: base URL is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("anthropic: model is required")
	}
	if cfg.MaxTokens < 0 {
		return nil, fmt.Errorf("anthropic: max tokens must be positive, got %d", cfg.MaxTokens)
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.RequestID != "" {
		opts = append(opts, option.WithHeader("X-Request-Id", cfg.RequestID))
	}

	return &Client{
		sdk:       anthropicsdk.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    cfg.Logger,
	}, nil
}

// Name returns the canonical provider name.
func (c *Client) Name() string {
	return provider.Anthropic
}

// Call sends prompt as one user text block. Only text content blocks are
// returned; tool use and thinking blocks are skipped.
func (c *Client) Call(ctx context.Context, prompt string) (*llm.Reply, error) {
	var httpRes *http.Response

	c.logger.Debug("sending messages request", "model", c.model, "max_tokens", c.maxTokens)
	msg, err := c.sdk.Messages.New(ctx, anthropicsdk.MessageNewParams{
		Model:     anthropicsdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropicsdk.MessageParam{
			anthropicsdk.NewUserMessage(anthropicsdk.NewTextBlock(prompt)),
		},
	}, option.WithResponseInto(&httpRes))
	if err != nil {
		return nil, toStatusError(err, httpRes)
	}

	reply := &llm.Reply{
		Provider: provider.Anthropic,
		Model:    c.model,
		Texts:    []string{},
	}
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.Texts = append(reply.Texts, block.Text)
		}
	}
	if msg.Usage.InputTokens > 0 || msg.Usage.OutputTokens > 0 {
		reply.Usage = &llm.Usage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
			TotalTokens:  msg.Usage.InputTokens + msg.Usage.OutputTokens,
		}
	}

	return reply, nil
}

func toStatusError(err error, res *http.Response) error {
	var apiErr *anthropicsdk.Error
	if errors.As(err, &apiErr) {
		body := readBody(apiErr.Response)
		if body == "" {
			body = apiErr.RawJSON()
		}
		return &llm.StatusError{StatusCode: apiErr.StatusCode, Body: body}
	}

	if res != nil && res.StatusCode >= http.StatusBadRequest {
		return &llm.StatusError{StatusCode: res.StatusCode, Body: readBody(res)}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("sending request: %w", err)
}

func readBody(res *http.Response) string {
	if res == nil || res.Body == nil {
		return ""
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
