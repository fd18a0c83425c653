package configcmder

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llmite-ai/mirra/pkg/cliui"
	"github.com/llmite-ai/mirra/pkg/config"
)

const setLongDesc string = `Set a configuration value.

Writes the key to config.toml in the .mirra/ directory, creating
~/.mirra/ when no directory exists yet. Values are validated: the Gemini
transport must be "rest" or "genai", max tokens must be a positive integer
and output.markdown must be a boolean.

Examples:
  mirra-examples config set proxy.target http://localhost:8080
  mirra-examples config set claude.max_tokens 256
  mirra-examples config set output.markdown true`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: setShortDesc,
		Long:  setLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runSet(cmd.OutOrStdout(), args[0], args[1], configDir)
		},
		ValidArgsFunction: completeKeys,
	}

	return cmd
}

func runSet(w io.Writer, key, value, configDir string) error {
	if !config.IsValidConfigKey(key) {
		return unknownKeyError(key)
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfger.SetConfigValue(key, value); err != nil {
		return err
	}

	printTarget(w, cfger)

	fmt.Fprintf(w, "  %s Set %s = %s\n\n",
		cliui.SuccessMark,
		cliui.KeyStyle.Render(key),
		cliui.ValueStyle.Render(value),
	)
	return nil
}
