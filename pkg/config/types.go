package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent configuration stored as config.toml
// in the .mirra/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version int          `toml:"version"`
	Proxy   ProxyConfig  `toml:"proxy"`
	Prompt  PromptConfig `toml:"prompt"`
	Output  OutputConfig `toml:"output"`
	Gemini  GeminiConfig `toml:"gemini"`
	OpenAI  OpenAIConfig `toml:"openai"`
	Claude  ClaudeConfig `toml:"claude"`
}

// ProxyConfig points the callers at a running mirra proxy.
// Target is a full URL (scheme + host + port) without a path.
type ProxyConfig struct {
	Target string `toml:"target,omitempty"`
}

// PromptConfig holds the single user message every caller sends.
type PromptConfig struct {
	Text string `toml:"text,omitempty"`
}

// OutputConfig controls how reply text is written to stdout.
type OutputConfig struct {
	Markdown bool `toml:"markdown,omitempty"`
}

// GeminiConfig holds settings for the Gemini caller.
type GeminiConfig struct {
	Model      string `toml:"model,omitempty"`
	Transport  string `toml:"transport,omitempty"`
	APIVersion string `toml:"api_version,omitempty"`
}

// OpenAIConfig holds settings for the OpenAI caller.
type OpenAIConfig struct {
	Model string `toml:"model,omitempty"`
}

// ClaudeConfig holds settings for the Claude caller.
type ClaudeConfig struct {
	Model     string `toml:"model,omitempty"`
	MaxTokens int64  `toml:"max_tokens,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"proxy.target": {
		get: func(c *Config) string { return c.Proxy.Target },
		set: func(c *Config, v string) error { c.Proxy.Target = v; return nil },
	},
	"prompt.text": {
		get: func(c *Config) string { return c.Prompt.Text },
		set: func(c *Config, v string) error { c.Prompt.Text = v; return nil },
	},
	"output.markdown": {
		get: func(c *Config) string { return strconv.FormatBool(c.Output.Markdown) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for output.markdown: %w", err)
			}
			c.Output.Markdown = b
			return nil
		},
	},
	"gemini.model": {
		get: func(c *Config) string { return c.Gemini.Model },
		set: func(c *Config, v string) error { c.Gemini.Model = v; return nil },
	},
	"gemini.transport": {
		get: func(c *Config) string { return c.Gemini.Transport },
		set: func(c *Config, v string) error {
			if !IsValidTransport(v) {
				return fmt.Errorf("invalid value for gemini.transport: %q (available: %s, %s)", v, TransportREST, TransportGenAI)
			}
			c.Gemini.Transport = v
			return nil
		},
	},
	"gemini.api_version": {
		get: func(c *Config) string { return c.Gemini.APIVersion },
		set: func(c *Config, v string) error { c.Gemini.APIVersion = v; return nil },
	},
	"openai.model": {
		get: func(c *Config) string { return c.OpenAI.Model },
		set: func(c *Config, v string) error { c.OpenAI.Model = v; return nil },
	},
	"claude.model": {
		get: func(c *Config) string { return c.Claude.Model },
		set: func(c *Config, v string) error { c.Claude.Model = v; return nil },
	},
	"claude.max_tokens": {
		get: func(c *Config) string {
			if c.Claude.MaxTokens == 0 {
				return ""
			}
			return strconv.FormatInt(c.Claude.MaxTokens, 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for claude.max_tokens: %w", err)
			}
			if n <= 0 {
				return fmt.Errorf("invalid value for claude.max_tokens: must be positive, got %d", n)
			}
			c.Claude.MaxTokens = n
			return nil
		},
	},
}
