// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands wires the chat commands. The bot serves exactly
// one chat; commands arriving from anywhere else are ignored.
func RegisterBotCommands(
	ctx context.Context,
	b *telebot.Bot,
	monitor *app.MonitorService,
	chatID int64,
	baseLogger *logrus.Entry,
) {
	cmdLogger := baseLogger.WithField("handler_group", "commands")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := cmdLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID)
		if c.Chat() == nil || c.Chat().ID != chatID {
			logCtx.Warn("Command from an unexpected chat, ignoring")
			return nil
		}
		logCtx.Info("Processing /start command")
		return c.Send("Привет! Я слежу за статусом проверки домашней работы и напишу сюда, когда он изменится.")
	})

	b.Handle("/status", func(c telebot.Context) error {
		logCtx := cmdLogger.WithField("command", "/status").WithField("sender_id", c.Sender().ID)
		if c.Chat() == nil || c.Chat().ID != chatID {
			logCtx.Warn("Command from an unexpected chat, ignoring")
			return nil
		}
		logCtx.Info("Processing /status command")

		state, err := monitor.State(ctx)
		if err != nil {
			logCtx.WithError(err).Error("Could not load monitor state for /status")
			return c.Send("Не удалось получить состояние монитора. Попробуйте позже.")
		}
		if state == nil || state.LastNotifiedStatus == "" {
			return c.Send("Уведомлений ещё не было: жду первое обновление статуса.")
		}
		return c.Send(fmt.Sprintf(
			"Последний статус проверки: %s.\nОкно следующего опроса: с %s.",
			state.LastNotifiedStatus,
			time.Unix(state.Cursor, 0).Format("2006-01-02 15:04:05"),
		))
	})
}
