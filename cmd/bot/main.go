package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"lisa-bot/internal/cleanup"
	"lisa-bot/internal/config"
	"lisa-bot/internal/conversation"
	"lisa-bot/internal/llm"
	"lisa-bot/internal/observability"
	"lisa-bot/internal/profile"
	"lisa-bot/internal/ratelimit"
	"lisa-bot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	model := cfg.OpenAIModel
	if cfg.LLMProvider == config.ProviderAnthropic {
		model = cfg.AnthropicModel
	}
	llmClient, err := llm.NewFactory(cfg).CreateClient(cfg.LLMProvider, model)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	systemPrompt := readSystemPrompt(cfg.SystemPromptPath)

	metrics := observability.NewMetrics("lisabot", prometheus.DefaultRegisterer)

	profiles := profile.NewStore(config.MaxMemories)
	conversations := conversation.NewStore(config.MaxHistory, profiles)
	limiter := ratelimit.New(config.RateLimitRequests, config.RateLimitWindow)

	janitor := cleanup.New(conversations, profiles, metrics)
	if err := janitor.Start(); err != nil {
		log.Fatalf("failed to start cleanup scheduler: %v", err)
	}
	defer janitor.Stop()

	srv := metricsServer(cfg.MetricsAddr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server error: %v", err)
		}
	}()
	defer srv.Shutdown(context.Background())

	bot, err := telegram.New(
		cfg.TelegramBotToken,
		llmClient,
		systemPrompt,
		cfg.MessageParseMode,
		limiter,
		conversations,
		profiles,
		janitor,
		metrics,
	)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Starting Miss Lisa bot...")
	bot.Start(ctx)
	log.Println("Bot stopped")
}

func metricsServer(addr string) *http.Server {
	r := chi.NewRouter()
	r.Handle("/metrics", observability.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{Addr: addr, Handler: r}
}

func readSystemPrompt(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return ""
	}
	return string(data)
}
