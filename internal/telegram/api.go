package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// sender is the slice of the Telegram API the bot writes through.
// Tests substitute a fake to capture outgoing persona messages.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// apiSender sends through the live Telegram connection.
type apiSender struct{ api *tgbotapi.BotAPI }

func (s apiSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return s.api.Send(c)
}
