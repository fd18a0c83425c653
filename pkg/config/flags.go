package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g., --proxy-target
// on "gemini", "openai" and "claude").
type Flag struct {
	// Name is the long flag name (e.g. "proxy-target").
	Name string

	// Shorthand is the one-letter short flag (e.g. "p"). Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to (e.g. "proxy.target").
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of flag names to Flag structs that hold their name,
// shorthand, viper key, etc.
type FlagSet map[string]Flag

// Flag registry keys.
// Use these constants when calling AddStringFlag, AddBoolFlag, AddInt64Flag,
// and BindRegisteredFlags to avoid typos or drift from one command to another.
const (
	FlagProxyTarget = "proxy-target"
	FlagPrompt      = "prompt"
	FlagMarkdown    = "markdown"

	// Every caller exposes its model as --model but binds it to its own key.
	FlagGeminiModel = "gemini-model"
	FlagOpenAIModel = "openai-model"
	FlagClaudeModel = "claude-model"

	FlagGeminiTransport  = "gemini-transport"
	FlagGeminiAPIVersion = "gemini-api-version"
	FlagClaudeMaxTokens  = "claude-max-tokens"
)

// CallerFlags is the registry shared by every caller command.
var CallerFlags = FlagSet{
	FlagProxyTarget: {
		Name:        "proxy-target",
		Shorthand:   "p",
		ViperKey:    "proxy.target",
		Description: "mirra proxy URL",
	},
	FlagPrompt: {
		Name:        "prompt",
		ViperKey:    "prompt.text",
		Description: "User message sent to the model",
	},
	FlagMarkdown: {
		Name:        "markdown",
		ViperKey:    "output.markdown",
		Description: "Render the reply as markdown",
	},
	FlagGeminiModel: {
		Name:        "model",
		Shorthand:   "m",
		ViperKey:    "gemini.model",
		Description: "Gemini model name (e.g., gemini-1.5-flash)",
	},
	FlagOpenAIModel: {
		Name:        "model",
		Shorthand:   "m",
		ViperKey:    "openai.model",
		Description: "OpenAI model name (e.g., gpt-4o)",
	},
	FlagClaudeModel: {
		Name:        "model",
		Shorthand:   "m",
		ViperKey:    "claude.model",
		Description: "Claude model name (e.g., claude-3-5-sonnet-20241022)",
	},
	FlagGeminiTransport: {
		Name:        "transport",
		Shorthand:   "t",
		ViperKey:    "gemini.transport",
		Description: "How to reach Gemini: rest (raw generateContent) or genai (Google SDK)",
	},
	FlagGeminiAPIVersion: {
		Name:        "api-version",
		ViperKey:    "gemini.api_version",
		Description: "Gemini API version path segment",
	},
	FlagClaudeMaxTokens: {
		Name:        "max-tokens",
		ViperKey:    "claude.max_tokens",
		Description: "Maximum tokens Claude may generate",
	},
}

// AddStringFlag registers a string flag on cmd from the given FlagSet.
// The flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddStringFlag(cmd *cobra.Command, fs FlagSet, key string, target *string) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaults().GetString(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().StringVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().StringVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaults().GetBool(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().BoolVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().BoolVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddInt64Flag registers an int64 flag on cmd from the given FlagSet.
func AddInt64Flag(cmd *cobra.Command, fs FlagSet, key string, target *int64) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaults().GetInt64(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().Int64VarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().Int64Var(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using definitions
// from the given FlagSet. Call this in PreRunE after InitViper to connect flags
// to the viper precedence chain (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaults returns a viper instance holding only NewDefaultConfig values.
func defaults() *viper.Viper {
	v := viper.New()
	setViperDefaults(v)
	return v
}
