// Package openaicmder provides the openai command: one chat completion through
// the mirra proxy using the openai-go SDK.
package openaicmder

import (
	"strings"

	"github.com/spf13/cobra"

	callercmder "github.com/llmite-ai/mirra/cmd/examples/caller"
	"github.com/llmite-ai/mirra/pkg/config"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
	"github.com/llmite-ai/mirra/pkg/llm/provider/openai"
)

type openaiCommander struct {
	*callercmder.Commander

	model string
}

const openaiLongDesc string = `Send one chat completion to OpenAI through the mirra proxy and print
every choice's content.

The SDK base URL is set to <proxy-target>/v1 and the API key is read from
OPENAI_API_KEY.

Examples:
  openai
  openai --model gpt-4o-mini --prompt "Tell me a story"`

const openaiShortDesc string = "Call OpenAI through the mirra proxy"

func NewOpenAICmd() *cobra.Command {
	cmder := &openaiCommander{
		Commander: callercmder.NewCommander(provider.OpenAI),
	}

	cmd := &cobra.Command{
		Use:          "openai",
		Short:        openaiShortDesc,
		Long:         openaiLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cmder.Load(cmd, config.FlagOpenAIModel)
			if err != nil {
				return err
			}

			cmder.model = v.GetString("openai.model")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.Run(cmd, cmder.build)
		},
	}

	cmder.RegisterFlags(cmd)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagOpenAIModel, &cmder.model)

	return cmd
}

func (c *openaiCommander) build(s callercmder.Settings) (provider.Caller, error) {
	return openai.New(openai.Config{
		BaseURL:   strings.TrimSuffix(s.ProxyTarget, "/") + "/v1",
		APIKey:    s.APIKey,
		Model:     c.model,
		RequestID: s.RequestID,
		Logger:    s.Logger,
	})
}
