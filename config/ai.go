package config

import "strings"

// AI provider identifiers.
const (
	AIProviderDeepSeek = "deepseek"
	AIProviderGitHub   = "github"
)

// AIProviderConfig is the resolved language-model provider configuration.
// It is computed once at startup from the API key and passed by value into
// the intelligence service; nothing mutates it afterwards.
type AIProviderConfig struct {
	Provider string
	BaseURL  string
	Model    string
	APIKey   string
}

// ResolveAIProvider detects the model provider from the API key prefix.
// GitHub Models tokens start with "github_"; anything else is treated as a
// native DeepSeek key. Both providers speak the OpenAI chat-completions
// protocol, only the endpoint and model identifier differ.
func ResolveAIProvider(apiKey string) AIProviderConfig {
	if strings.HasPrefix(apiKey, "github_") {
		return AIProviderConfig{
			Provider: AIProviderGitHub,
			BaseURL:  "https://models.inference.ai.azure.com",
			Model:    "DeepSeek-R1",
			APIKey:   apiKey,
		}
	}
	return AIProviderConfig{
		Provider: AIProviderDeepSeek,
		BaseURL:  "https://api.deepseek.com",
		Model:    "deepseek-chat",
		APIKey:   apiKey,
	}
}
