package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lisa-bot/internal/cleanup"
	"lisa-bot/internal/config"
	"lisa-bot/internal/conversation"
	"lisa-bot/internal/llm"
	"lisa-bot/internal/observability"
	"lisa-bot/internal/profile"
	"lisa-bot/internal/ratelimit"
)

type Bot struct {
	api          *tgbotapi.BotAPI
	s            sender
	llmClient    llm.Client
	systemPrompt string
	parseMode    string

	limiter       *ratelimit.Limiter
	conversations *conversation.Store
	profiles      *profile.Store
	janitor       *cleanup.Scheduler
	metrics       *observability.Metrics
}

func New(
	botToken string,
	llmClient llm.Client,
	systemPrompt string,
	parseMode string,
	limiter *ratelimit.Limiter,
	conversations *conversation.Store,
	profiles *profile.Store,
	janitor *cleanup.Scheduler,
	metrics *observability.Metrics,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:           api,
		s:             apiSender{api: api},
		llmClient:     llmClient,
		systemPrompt:  systemPrompt,
		parseMode:     parseMode,
		limiter:       limiter,
		conversations: conversations,
		profiles:      profiles,
		janitor:       janitor,
		metrics:       metrics,
	}, nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			if update.Message.IsCommand() {
				b.handleCommand(update.Message)
				continue
			}
			if update.Message.Text != "" {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	userID := msg.From.ID
	switch msg.Command() {
	case "start":
		b.profiles.Touch(userID, msg.From.FirstName)
		b.sendFormatted(msg.Chat.ID, welcomeMessage)
		log.Printf("User %d (%s) started the bot", userID, msg.From.FirstName)
	case "clear":
		b.conversations.Clear(userID)
		b.profiles.ClearConversation(userID)
		b.sendMessage(msg.Chat.ID, profileClearedMessage)
		log.Printf("User %d cleared their conversation history", userID)
	case "profile":
		b.sendFormatted(msg.Chat.ID, b.profiles.FormatSummary(userID))
	case "memory":
		b.sendFormatted(msg.Chat.ID, b.profiles.FormatMemoryList(userID))
	default:
		b.sendFormatted(msg.Chat.ID, helpMessage)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	displayName := msg.From.FirstName
	text := msg.Text

	if !b.limiter.Admit(userID, time.Now()) {
		b.metrics.RateLimited.Inc()
		b.sendMessage(msg.Chat.ID, rateLimitMessage)
		return
	}

	start := time.Now()
	history := b.conversations.History(userID)
	prof, _ := b.profiles.Get(userID)

	resp, err := b.llmClient.Generate(ctx, b.buildPrompt(history, prof, text))
	if err != nil {
		log.Printf("failed to generate response for user %d: %v", userID, err)
		b.metrics.LLMErrors.WithLabelValues("generate").Inc()
		b.sendMessage(msg.Chat.ID, apiErrorMessage)
		return
	}
	b.metrics.ResponseLatency.Observe(time.Since(start).Seconds())

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		log.Printf("empty response from model for user %d", userID)
		b.metrics.LLMErrors.WithLabelValues("generate").Inc()
		b.sendMessage(msg.Chat.ID, generalErrorMessage)
		return
	}

	b.sendMessage(msg.Chat.ID, reply)

	b.conversations.Append(userID, displayName, conversation.Exchange{
		Timestamp:   time.Now(),
		UserMessage: text,
		BotResponse: reply,
	})
	b.metrics.MessagesProcessed.Inc()

	// Memory extraction must never delay the reply; its failures are
	// logged and discarded.
	go b.extractMemories(ctx, userID, text, reply)

	log.Printf("Processed message from user %d: %d chars", userID, len(text))
}

// extractMemories asks the model for memory candidates from the finished
// exchange and merges accepted ones into the profile, then runs the inline
// sweep for this user.
func (b *Bot) extractMemories(ctx context.Context, userID int64, userMessage, botResponse string) {
	candidates, err := llm.ExtractMemories(ctx, b.llmClient, userMessage, botResponse)
	if err != nil {
		log.Printf("memory extraction failed for user %d: %v", userID, err)
		b.metrics.LLMErrors.WithLabelValues("extract").Inc()
		return
	}
	if len(candidates) == 0 {
		return
	}

	merged := make([]profile.Candidate, 0, len(candidates))
	for _, c := range candidates {
		merged = append(merged, profile.Candidate{Type: c.Type, Content: c.Content})
	}
	b.profiles.AddMemories(userID, merged)
	if b.janitor != nil {
		b.janitor.SweepUser(userID)
	}

	b.metrics.MemoriesExtracted.Add(float64(len(merged)))
	log.Printf("Extracted %d memories for user %d", len(merged), userID)
}

// buildPrompt assembles the model context: persona plus remembered facts in
// the system message, recent exchanges as alternating turns, then the
// current message.
func (b *Bot) buildPrompt(history []conversation.Exchange, prof profile.Profile, text string) []llm.Message {
	system := b.systemPrompt
	if pc := profileContext(prof); pc != "" {
		system += "\n\n" + pc
	}

	var msgs []llm.Message
	if system != "" {
		msgs = append(msgs, llm.Message{Role: "system", Content: system})
	}
	if len(history) > config.HistoryPromptExchanges {
		history = history[len(history)-config.HistoryPromptExchanges:]
	}
	for _, ex := range history {
		msgs = append(msgs, llm.Message{Role: "user", Content: ex.UserMessage})
		msgs = append(msgs, llm.Message{Role: "assistant", Content: ex.BotResponse})
	}
	msgs = append(msgs, llm.Message{Role: "user", Content: text})
	return msgs
}

func profileContext(p profile.Profile) string {
	var parts []string
	if n := len(p.Memories); n > 0 {
		start := n - config.PromptMemories
		if start < 0 {
			start = 0
		}
		contents := make([]string, 0, n-start)
		for _, m := range p.Memories[start:] {
			contents = append(contents, m.Content)
		}
		parts = append(parts, "Remember about them: "+strings.Join(contents, ", "))
	}
	if p.Name != "" {
		parts = append(parts, "Their name: "+p.Name)
	}
	return strings.Join(parts, "\n")
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendFormatted(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = b.parseMode
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
