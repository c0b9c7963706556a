// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"
)

// SendError wraps a transport failure while delivering a notification.
type SendError struct {
	ChatID int64
	Cause  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telegram: failed to send message to chat %d: %v", e.ChatID, e.Cause)
}

func (e *SendError) Unwrap() error { return e.Cause }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat. There is no
// internal retry; a failed send surfaces as a SendError and the next
// scheduled cycle re-attempts.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	if _, err := tba.bot.Send(telebot.ChatID(recipientChatID), text, options); err != nil {
		return &SendError{ChatID: recipientChatID, Cause: err}
	}
	return nil
}
