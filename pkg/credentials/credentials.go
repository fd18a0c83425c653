// Package credentials resolves provider API keys from the environment.
//
// Keys are only ever read from environment variables. A dotenv file may be
// loaded first to populate them, but it never overrides a variable that is
// already set.
package credentials

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/llmite-ai/mirra/pkg/llm/provider"
)

// providerEnvVars maps provider names to their expected environment variables.
var providerEnvVars = map[string]string{
	provider.Gemini:    "GEMINI_API_KEY",
	provider.OpenAI:    "OPENAI_API_KEY",
	provider.Anthropic: "ANTHROPIC_API_KEY",
}

// ErrMissingKey is matched by every *MissingKeyError via errors.Is.
var ErrMissingKey = errors.New("api key not set")

// MissingKeyError reports a required API key variable that is unset or empty.
type MissingKeyError struct {
	EnvVar string
}

func (e *MissingKeyError) Error() string {
	return e.EnvVar + " environment variable not set"
}

func (e *MissingKeyError) Is(target error) bool {
	return target == ErrMissingKey
}

// Resolve returns the API key for provider from its environment variable.
// Unset and empty are treated the same and yield a *MissingKeyError.
func Resolve(provider string) (string, error) {
	envVar, ok := providerEnvVars[provider]
	if !ok {
		return "", fmt.Errorf("unknown provider: %q", provider)
	}

	key := os.Getenv(envVar)
	if key == "" {
		return "", &MissingKeyError{EnvVar: envVar}
	}

	return key, nil
}

// LoadEnvFile reads KEY=value pairs from path into the process environment.
// Variables that are already set keep their current value.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// EnvVarForProvider returns the environment variable name for a given provider.
// Returns an empty string for unknown providers.
func EnvVarForProvider(provider string) string {
	return providerEnvVars[provider]
}
