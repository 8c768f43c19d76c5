package llm

import (
	"fmt"
	"strings"

	"lisa-bot/internal/config"
)

// Factory creates LLM clients with consistent logic
type Factory struct {
	OpenaiAPIKey     string
	OpenaiBaseURL    string
	AnthropicAPIKey  string
	YandexOAuthToken string
	YandexFolderID   string
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		OpenaiAPIKey:     cfg.OpenAIAPIKey,
		OpenaiBaseURL:    cfg.OpenAIBaseURL,
		AnthropicAPIKey:  cfg.AnthropicAPIKey,
		YandexOAuthToken: cfg.YandexOAuthToken,
		YandexFolderID:   cfg.YandexFolderID,
	}
}

func (f *Factory) CreateClient(provider config.LLMProvider, model string) (Client, error) {
	switch config.LLMProvider(strings.ToLower(string(provider))) {
	case config.ProviderOpenAI:
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, model), nil
	case config.ProviderAnthropic:
		return NewAnthropic(f.AnthropicAPIKey, model), nil
	case config.ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
