package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/llmite-ai/mirra/pkg/dotdir"
)

// EnvPrefix is prepended to every dotted config key when read from the
// environment: proxy.target -> MIRRA_PROXY_TARGET.
const EnvPrefix = "MIRRA"

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the MIRRA_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. Environment variables (MIRRA_PROXY_TARGET, MIRRA_GEMINI_MODEL, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)

		if err := v.ReadInConfig(); err != nil {
			// Config file not found errors are fine, defaults will apply.
			if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("proxy.target", d.Proxy.Target)
	v.SetDefault("prompt.text", d.Prompt.Text)
	v.SetDefault("output.markdown", d.Output.Markdown)

	// Gemini
	v.SetDefault("gemini.model", d.Gemini.Model)
	v.SetDefault("gemini.transport", d.Gemini.Transport)
	v.SetDefault("gemini.api_version", d.Gemini.APIVersion)

	// OpenAI
	v.SetDefault("openai.model", d.OpenAI.Model)

	// Claude
	v.SetDefault("claude.model", d.Claude.Model)
	v.SetDefault("claude.max_tokens", d.Claude.MaxTokens)
}
