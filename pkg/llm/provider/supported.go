package provider

// Supported provider type constants
const (
	Gemini    = "gemini"
	OpenAI    = "openai"
	Anthropic = "anthropic"
)

// displayNames are the human-facing names used in output.
var displayNames = map[string]string{
	Gemini:    "Gemini",
	OpenAI:    "OpenAI",
	Anthropic: "Claude",
}

// SupportedProviders returns the list of all supported provider type names.
func SupportedProviders() []string {
	return []string{Gemini, OpenAI, Anthropic}
}

// DisplayName returns how a provider is referred to in output, falling back
// to the canonical name for unknown providers.
func DisplayName(name string) string {
	if display, ok := displayNames[name]; ok {
		return display
	}
	return name
}

// NoResponseMessage is the fixed line printed when a provider returned no text.
func NoResponseMessage(name string) string {
	return "No response from " + DisplayName(name) + "."
}
