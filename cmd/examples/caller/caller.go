// Package callercmder holds the flag wiring and run loop shared by the
// gemini, openai and claude commands.
package callercmder

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/llmite-ai/mirra/pkg/cliui"
	"github.com/llmite-ai/mirra/pkg/config"
	"github.com/llmite-ai/mirra/pkg/credentials"
	"github.com/llmite-ai/mirra/pkg/llm/provider"
	"github.com/llmite-ai/mirra/pkg/logger"
	"github.com/llmite-ai/mirra/pkg/oneshot"
)

// Settings are what every caller needs to build its client.
type Settings struct {
	ProxyTarget string
	APIKey      string
	RequestID   string
	Logger      *slog.Logger
}

// BuildFunc constructs the provider client once credentials are resolved.
type BuildFunc func(Settings) (provider.Caller, error)

// Commander carries the flags common to every caller command.
type Commander struct {
	debug     bool
	configDir string
	envFile   string
	logFile   string

	proxyTarget string
	prompt      string
	markdown    bool

	provider string
}

// NewCommander returns a Commander for the given canonical provider name.
func NewCommander(providerName string) *Commander {
	return &Commander{provider: providerName}
}

// ProxyTarget is the resolved proxy URL, valid after Load.
func (c *Commander) ProxyTarget() string {
	return c.proxyTarget
}

// Prompt is the resolved user message, valid after Load.
func (c *Commander) Prompt() string {
	return c.prompt
}

// RegisterFlags adds the shared local and registry flags to cmd.
func (c *Commander) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&c.debug, "debug", "d", false, "Enable debug logging")
	cmd.Flags().StringVar(&c.configDir, "config-dir", "", "Override path to .mirra/ config directory")
	cmd.Flags().StringVar(&c.envFile, "env-file", "", "Load environment variables from a dotenv file")
	cmd.Flags().StringVar(&c.logFile, "log-file", "", "Also write JSON logs to this file")

	config.AddStringFlag(cmd, config.CallerFlags, config.FlagProxyTarget, &c.proxyTarget)
	config.AddStringFlag(cmd, config.CallerFlags, config.FlagPrompt, &c.prompt)
	config.AddBoolFlag(cmd, config.CallerFlags, config.FlagMarkdown, &c.markdown)
}

// Load initialises viper, binds the shared flags plus extraFlags, and
// resolves the shared settings. The returned viper instance serves the
// caller's own keys.
func (c *Commander) Load(cmd *cobra.Command, extraFlags ...string) (*viper.Viper, error) {
	v, err := config.InitViper(c.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	keys := append([]string{config.FlagProxyTarget, config.FlagPrompt, config.FlagMarkdown}, extraFlags...)
	config.BindRegisteredFlags(v, cmd, config.CallerFlags, keys)

	c.proxyTarget = v.GetString("proxy.target")
	c.prompt = v.GetString("prompt.text")
	c.markdown = v.GetBool("output.markdown")

	if c.proxyTarget == "" {
		return nil, fmt.Errorf("proxy target must not be empty")
	}
	if c.prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}

	return v, nil
}

// Run resolves credentials, builds the client with build and performs the
// exchange. No client is built and no request is sent without an API key.
func (c *Commander) Run(cmd *cobra.Command, build BuildFunc) error {
	log, closeLog, err := c.newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	if c.envFile != "" {
		if err := credentials.LoadEnvFile(c.envFile); err != nil {
			return err
		}
		log.Debug("loaded env file", "path", c.envFile)
	}

	apiKey, err := credentials.Resolve(c.provider)
	if err != nil {
		log.Debug("credential lookup failed", "provider", c.provider, "env_var", credentials.EnvVarForProvider(c.provider))
		return err
	}

	requestID := uuid.NewString()
	log = log.With("request_id", requestID)

	caller, err := build(Settings{
		ProxyTarget: c.proxyTarget,
		APIKey:      apiKey,
		RequestID:   requestID,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("creating %s client: %w", provider.DisplayName(c.provider), err)
	}

	log.Debug("calling provider", "provider", caller.Name(), "proxy", c.proxyTarget)

	opts := oneshot.Options{
		Prompt:   c.prompt,
		Out:      cmd.OutOrStdout(),
		Markdown: c.markdown,
		Logger:   log,
	}

	// The spinner would interleave with debug logs on the same stream.
	stderr := cmd.ErrOrStderr()
	if !c.debug && logger.IsTerminal(stderr) {
		cliui.ConfigureColor(stderr)
		opts.Progress = stderr
	}

	return oneshot.Run(cmd.Context(), caller, opts)
}

// newLogger builds the stderr logger and, with --log-file, mirrors records
// as JSON to that file.
func (c *Commander) newLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	stderr := cmd.ErrOrStderr()
	log := logger.New(
		logger.WithDebug(c.debug),
		logger.WithSource(c.debug),
		logger.WithPretty(logger.IsTerminal(stderr)),
		logger.WithWriter(stderr),
	)

	if c.logFile == "" {
		return log, func() {}, nil
	}

	f, err := os.OpenFile(c.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	fileLog := logger.New(
		logger.WithDebug(true),
		logger.WithSource(true),
		logger.WithJSON(true),
		logger.WithWriter(f),
	)

	return logger.Multi(log, fileLog), func() { _ = f.Close() }, nil
}
