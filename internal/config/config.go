package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI    LLMProvider = "openai"
	ProviderAnthropic LLMProvider = "anthropic"
	ProviderYandex    LLMProvider = "yandex"
)

// Fixed tuning constants. The state bounds and sweep ages are part of the
// design, not deployment knobs, so they are not environment-driven.
const (
	// Rate limiting (requests per window per user)
	RateLimitRequests = 10
	RateLimitWindow   = 60 * time.Second

	// Per-user state bounds
	MaxHistory  = 20
	MaxMemories = 50

	// Cleanup policy
	ConversationMaxIdle = 24 * time.Hour
	MemoryMaxAge        = 7 * 24 * time.Hour
	InlineMemoryMaxAge  = 30 * 24 * time.Hour
	CleanupInterval     = time.Hour

	// Prompt assembly
	HistoryPromptExchanges = 4
	PromptMemories         = 3
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	AnthropicAPIKey  string      `env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string      `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-latest"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH" envDefault:"prompts/system_prompt.txt"`

	// Observability
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	// Formatting
	MessageParseMode string `env:"MESSAGE_PARSE_MODE" envDefault:"Markdown"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
