// Package openai calls the Chat Completions API through the mirra proxy using
// the official openai-go SDK.
package openai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	openaisdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/llmite-ai/mirra/pkg/llm"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the OpenAI-compatible root, e.g. http://localhost:4567/v1
	BaseURL string

	APIKey string
	Model  string

	// RequestID is sent as X-Request-Id when non-empty.
	RequestID string

	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client is a provider.Caller for OpenAI.
type Client struct {
	sdk    openaisdk.Client
	model  string
	logger *slog.Logger
}

var _ provider.Caller = (*Client)(nil)

// New builds the SDK client. Retries are disabled so one Call is one request.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("openai: base URL is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai: model is required")
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
		sdk:    openaisdk.NewClient(opts...),
		model:  cfg.Model,
		logger: cfg.Logger,
	}, nil
}

// Name returns the canonical provider name.
func (c *Client) Name() string {
	return provider.OpenAI
}

// Call sends prompt as the single user message of a chat completion.
// Every returned choice contributes one text, "" when its content is absent.
func (c *Client) Call(ctx context.Context, prompt string) (*llm.Reply, error) {
	var httpRes *http.Response

	c.logger.Debug("sending chat completion", "model", c.model)
	completion, err := c.sdk.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	}, option.WithResponseInto(&httpRes))
	if err != nil {
		return nil, toStatusError(err, httpRes)
	}

	reply := &llm.Reply{
		Provider: provider.OpenAI,
		Model:    c.model,
		Texts:    make([]string, 0, len(completion.Choices)),
	}
	for _, choice := range completion.Choices {
		reply.Texts = append(reply.Texts, choice.Message.Content)
	}
	if completion.Usage.TotalTokens > 0 {
		reply.Usage = &llm.Usage{
			InputTokens:  completion.Usage.PromptTokens,
			OutputTokens: completion.Usage.CompletionTokens,
			TotalTokens:  completion.Usage.TotalTokens,
		}
	}

	return reply, nil
}

// toStatusError maps an SDK failure onto *llm.StatusError when the proxy
// answered with an error status. Anything else is a transport fault.
func toStatusError(err error, res *http.Response) error {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		body := readBody(apiErr.Response)
		if body == "" {
			body = apiErr.RawJSON()
		}
		return &llm.StatusError{StatusCode: apiErr.StatusCode, Body: body}
	}

	// The SDK returns its own decode error when an error body is not JSON.
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
