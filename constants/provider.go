package constants

import "strings"

// Provider identifies an AI-service backend an agent can be attached to.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderMistral   Provider = "mistral"
	ProviderOllama    Provider = "ollama"
)

var allProviders = []Provider{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderMistral,
	ProviderOllama,
}

// Providers returns the allowed provider names for validation.
func Providers() []string {
	result := make([]string, len(allProviders))
	for i, p := range allProviders {
		result[i] = string(p)
	}
	return result
}

// ParseProvider canonicalizes user input to a known provider.
func ParseProvider(input string) (Provider, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, p := range allProviders {
		if normalized == string(p) {
			return p, true
		}
	}
	return "", false
}
