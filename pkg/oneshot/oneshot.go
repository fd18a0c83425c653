// Package oneshot performs a single prompt/reply exchange with a provider and
// writes the reply text to the caller's output.
package oneshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/llmite-ai/mirra/pkg/cliui"
	"github.com/llmite-ai/mirra/pkg/credentials"
	"github.com/llmite-ai/mirra/pkg/llm"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
	"github.com/llmite-ai/mirra/pkg/utils"
)

// previewRunes bounds the reply text copied into debug logs.
const previewRunes = 80

// Error kinds reported by ErrorKind.
const (
	KindMissingCredential = "missing_credential"
	KindHTTPStatus        = "http_status"
	KindCanceled          = "canceled"
	KindTransport         = "transport"
)

// Options controls how an exchange is presented.
type Options struct {
	Prompt string

	// Out receives the reply text, one line per fragment.
	Out io.Writer

	// Progress, when set, shows a spinner while the request is in flight.
	Progress io.Writer

	// Markdown renders each fragment with glamour before printing.
	Markdown bool

	Logger *slog.Logger
}

// Run sends opts.Prompt through caller exactly once. An empty reply prints
// the provider's "No response from X." line and is not an error.
func Run(ctx context.Context, caller provider.Caller, opts Options) error {
	if caller == nil {
		return errors.New("no provider configured")
	}
	if opts.Out == nil {
		return errors.New("no output writer configured")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var reply *llm.Reply
	call := func() error {
		var err error
		reply, err = caller.Call(ctx, opts.Prompt)
		return err
	}

	start := time.Now()
	var err error
	if opts.Progress != nil {
		err = cliui.Step(opts.Progress, "Asking "+provider.DisplayName(caller.Name()), call)
	} else {
		err = call()
	}
	elapsed := time.Since(start)

	if err != nil {
		attrs := []any{
			"provider", caller.Name(),
			"kind", ErrorKind(err),
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		}
		var statusErr *llm.StatusError
		if errors.As(err, &statusErr) {
			attrs = append(attrs, "status_code", statusErr.StatusCode)
		}
		logger.Debug("exchange failed", attrs...)
		return err
	}

	if reply == nil {
		reply = &llm.Reply{Provider: caller.Name()}
	}

	attrs := []any{
		"provider", reply.Provider,
		"model", reply.Model,
		"fragments", len(reply.Texts),
		"duration_ms", elapsed.Milliseconds(),
	}
	if !reply.Empty() {
		attrs = append(attrs, "preview", utils.Truncate(reply.Texts[0], previewRunes))
	}
	if reply.Usage != nil {
		attrs = append(attrs,
			"input_tokens", reply.Usage.InputTokens,
			"output_tokens", reply.Usage.OutputTokens,
		)
	}
	logger.Debug("exchange complete", attrs...)

	return Print(opts.Out, caller.Name(), reply, opts.Markdown, logger)
}

// Print writes reply to w: one line per text fragment, or the provider's
// sentinel line when there is nothing to print.
func Print(w io.Writer, providerName string, reply *llm.Reply, markdown bool, logger *slog.Logger) error {
	if reply.Empty() {
		_, err := fmt.Fprintln(w, provider.NoResponseMessage(providerName))
		return err
	}

	for _, text := range reply.Texts {
		if markdown {
			rendered, err := cliui.RenderMarkdown(text, cliui.DefaultWrap)
			if err != nil && logger != nil {
				logger.Warn("markdown rendering failed, printing raw text", "error", err)
			}
			text = rendered
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("writing reply: %w", err)
		}
	}
	return nil
}

// ErrorKind classifies err for logging.
func ErrorKind(err error) string {
	var (
		missing   *credentials.MissingKeyError
		statusErr *llm.StatusError
	)
	switch {
	case errors.As(err, &missing):
		return KindMissingCredential
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindTransport
	}
}
