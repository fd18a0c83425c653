// Package configcmder provides the config command for managing persistent
// caller defaults stored in the .mirra/ directory.
package configcmder

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llmite-ai/mirra/pkg/cliui"
	"github.com/llmite-ai/mirra/pkg/config"
)

const configLongDesc string = `Manage persistent configuration for the example callers.

Configuration is stored as config.toml in the .mirra/ directory and provides
default values for command flags. CLI flags and MIRRA_* environment
variables take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  proxy.target, prompt.text, output.markdown,
  gemini.model, gemini.transport, gemini.api_version,
  openai.model,
  claude.model, claude.max_tokens

Examples:
  mirra-examples config set proxy.target http://localhost:8080
  mirra-examples config set gemini.transport genai
  mirra-examples config get openai.model
  mirra-examples config list`

const configShortDesc string = "Manage persistent caller configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        configShortDesc,
		Long:         configLongDesc,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config-dir", "", "Override path to .mirra/ config directory")

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
		key, strings.Join(config.ValidConfigKeys(), ", "))
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func printTarget(w io.Writer, cfger *config.Configer) {
	if target := cfger.GetTarget(); target != "" {
		fmt.Fprintf(w, "\n  %s %s\n\n",
			cliui.KeyStyle.Render("Config file:"),
			cliui.DimStyle.Render(target),
		)
		return
	}
	fmt.Fprintf(w, "\n  %s\n\n", cliui.DimStyle.Render("No config file found. Using defaults."))
}
