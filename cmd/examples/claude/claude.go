// Package claudecmder provides the claude command: one Messages request
// through the mirra proxy using anthropic-sdk-go.
package claudecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	callercmder "github.com/llmite-ai/mirra/cmd/examples/caller"
	"github.com/llmite-ai/mirra/pkg/config"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
	"github.com/llmite-ai/mirra/pkg/llm/provider/anthropic"
)

type claudeCommander struct {
	*callercmder.Commander

	model     string
	maxTokens int64
}

const claudeLongDesc string = `Send one message to Claude through the mirra proxy and print each text
block of the reply.

The SDK base URL is set to <proxy-target> and the API key is read from
ANTHROPIC_API_KEY.

Examples:
  claude
  claude --model claude-3-5-haiku-20241022 --max-tokens 256`

const claudeShortDesc string = "Call Claude through the mirra proxy"

func NewClaudeCmd() *cobra.Command {
	cmder := &claudeCommander{
		Commander: callercmder.NewCommander(provider.Anthropic),
	}

	cmd := &cobra.Command{
		Use:          "claude",
		Short:        claudeShortDesc,
		Long:         claudeLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cmder.Load(cmd, config.FlagClaudeModel, config.FlagClaudeMaxTokens)
			if err != nil {
				return err
			}

			cmder.model = v.GetString("claude.model")
			cmder.maxTokens = v.GetInt64("claude.max_tokens")
			if cmder.maxTokens <= 0 {
				return fmt.Errorf("max tokens must be positive, got %d", cmder.maxTokens)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.Run(cmd, cmder.build)
		},
	}

	cmder.RegisterFlags(cmd)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagClaudeModel, &cmder.model)
	config.AddInt64Flag(cmd, config.CallerFlags, config.FlagClaudeMaxTokens, &cmder.maxTokens)

	return cmd
}

func (c *claudeCommander) build(s callercmder.Settings) (provider.Caller, error) {
	return anthropic.New(anthropic.Config{
		BaseURL:   s.ProxyTarget,
		APIKey:    s.APIKey,
		Model:     c.model,
		MaxTokens: c.maxTokens,
		RequestID: s.RequestID,
		Logger:    s.Logger,
	})
}
