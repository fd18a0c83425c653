// Package geminicmder provides the gemini command: one generateContent call
// through the mirra proxy.
package geminicmder

import (
	"fmt"

	"github.com/spf13/cobra"

	callercmder "github.com/llmite-ai/mirra/cmd/examples/caller"
	"github.com/llmite-ai/mirra/pkg/config"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
	"github.com/llmite-ai/mirra/pkg/llm/provider/gemini"
)

type geminiCommander struct {
	*callercmder.Commander

	model      string
	transport  string
	apiVersion string
}

const geminiLongDesc string = `Send one prompt to Gemini through the mirra proxy and print the reply.

The request is a generateContent call to
  <proxy-target>/<api-version>/models/<model>:generateContent
with the API key from GEMINI_API_KEY. By default the JSON body is built by
hand (--transport rest); --transport genai sends it through Google's genai SDK.

Examples:
  gemini
  gemini --model gemini-1.5-pro --prompt "Tell me a story"
  gemini --proxy-target http://localhost:8080 --transport genai`

const geminiShortDesc string = "Call Gemini through the mirra proxy"

func NewGeminiCmd() *cobra.Command {
	cmder := &geminiCommander{
		Commander: callercmder.NewCommander(provider.Gemini),
	}

	cmd := &cobra.Command{
		Use:          "gemini",
		Short:        geminiShortDesc,
		Long:         geminiLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := cmder.Load(cmd,
				config.FlagGeminiModel,
				config.FlagGeminiTransport,
				config.FlagGeminiAPIVersion,
			)
			if err != nil {
				return err
			}

			cmder.model = v.GetString("gemini.model")
			cmder.transport = v.GetString("gemini.transport")
			cmder.apiVersion = v.GetString("gemini.api_version")

			if !config.IsValidTransport(cmder.transport) {
				return fmt.Errorf("invalid transport %q: must be %q or %q",
					cmder.transport, config.TransportREST, config.TransportGenAI)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.Run(cmd, cmder.build)
		},
	}

	cmder.RegisterFlags(cmd)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagGeminiModel, &cmder.model)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagGeminiTransport, &cmder.transport)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagGeminiAPIVersion, &cmder.apiVersion)

	return cmd
}

func (c *geminiCommander) build(s callercmder.Settings) (provider.Caller, error) {
	return gemini.New(gemini.Config{
		BaseURL:    s.ProxyTarget,
		APIKey:     s.APIKey,
		Model:      c.model,
		APIVersion: c.apiVersion,
		Transport:  c.transport,
		RequestID:  s.RequestID,
		Logger:     s.Logger,
	})
}
