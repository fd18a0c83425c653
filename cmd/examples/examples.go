// Package examplescmder
package examplescmder

import (
	"github.com/spf13/cobra"

	claudecmder "github.com/llmite-ai/mirra/cmd/examples/claude"
	configcmder "github.com/llmite-ai/mirra/cmd/examples/config"
	geminicmder "github.com/llmite-ai/mirra/cmd/examples/gemini"
	openaicmder "github.com/llmite-ai/mirra/cmd/examples/openai"
	versioncmder "github.com/llmite-ai/mirra/cmd/version"
)

const examplesLongDesc string = `Example callers for the mirra proxy.

Each caller sends one prompt to a provider through mirra and prints the reply:
  mirra-examples gemini    Gemini generateContent (GEMINI_API_KEY)
  mirra-examples openai    OpenAI chat completion (OPENAI_API_KEY)
  mirra-examples claude    Claude Messages (ANTHROPIC_API_KEY)

Defaults live in .mirra/config.toml; manage them with "mirra-examples config".`

const examplesShortDesc string = "mirra example callers"

func NewExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "mirra-examples",
		Short:        examplesShortDesc,
		Long:         examplesLongDesc,
		SilenceUsage: true,
	}

	cmd.AddCommand(geminicmder.NewGeminiCmd())
	cmd.AddCommand(openaicmder.NewOpenAICmd())
	cmd.AddCommand(claudecmder.NewClaudeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
