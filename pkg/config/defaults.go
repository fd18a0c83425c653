package config

const (
	// defaultProxyTarget is where a locally running mirra listens.
	defaultProxyTarget = "http://localhost:4567"

	defaultPrompt = "Say hello and a joke"

	defaultGeminiModel      = "gemini-1.5-flash"
	defaultGeminiAPIVersion = "v1beta"

	defaultOpenAIModel = "gpt-4o"

	defaultClaudeModel     = "claude-3-5-sonnet-20241022"
	defaultClaudeMaxTokens = 1024
)

// Gemini transports.
const (
	// TransportREST posts the generateContent JSON body directly.
	TransportREST = "rest"

	// TransportGenAI sends the request through the google.golang.org/genai SDK.
	TransportGenAI = "genai"
)

// IsValidTransport reports whether name is a supported Gemini transport.
func IsValidTransport(name string) bool {
	return name == TransportREST || name == TransportGenAI
}

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Proxy: ProxyConfig{
			Target: defaultProxyTarget,
		},
		Prompt: PromptConfig{
			Text: defaultPrompt,
		},
		Gemini: GeminiConfig{
			Model:      defaultGeminiModel,
			Transport:  TransportREST,
			APIVersion: defaultGeminiAPIVersion,
		},
		OpenAI: OpenAIConfig{
			Model: defaultOpenAIModel,
		},
		Claude: ClaudeConfig{
			Model:     defaultClaudeModel,
			MaxTokens: defaultClaudeMaxTokens,
		},
	}
}
