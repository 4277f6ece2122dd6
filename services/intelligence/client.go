package intelligence

import (
	"context"

	"promaallem/config"

	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI-compatible client the
// intelligence service depends on. Both DeepSeek and GitHub Models expose
// this protocol; tests substitute a fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewChatClient builds an OpenAI-protocol client pointed at the resolved
// provider endpoint.
func NewChatClient(provider config.AIProviderConfig) *openai.Client {
	cfg := openai.DefaultConfig(provider.APIKey)
	cfg.BaseURL = provider.BaseURL
	return openai.NewClientWithConfig(cfg)
}
