package llm

import (
	"testing"

	"lisa-bot/internal/config"
)

func TestCreateClientByProvider(t *testing.T) {
	f := &Factory{OpenaiAPIKey: "k", AnthropicAPIKey: "k"}

	c, err := f.CreateClient(config.ProviderOpenAI, "gpt-4o-mini")
	if err != nil {
		t.Fatalf("openai: %v", err)
	}
	if _, ok := c.(*OpenAIClient); !ok {
		t.Fatalf("expected OpenAI client, got %T", c)
	}

	c, err = f.CreateClient(config.ProviderAnthropic, "claude-3-5-haiku-latest")
	if err != nil {
		t.Fatalf("anthropic: %v", err)
	}
	if _, ok := c.(*AnthropicClient); !ok {
		t.Fatalf("expected Anthropic client, got %T", c)
	}
}

func TestCreateClientNormalizesCase(t *testing.T) {
	f := &Factory{OpenaiAPIKey: "k"}
	if _, err := f.CreateClient("OpenAI", "gpt-4o-mini"); err != nil {
		t.Fatalf("provider matching should be case-insensitive: %v", err)
	}
}

func TestCreateClientUnknownProvider(t *testing.T) {
	f := &Factory{}
	if _, err := f.CreateClient("gemini", ""); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}
