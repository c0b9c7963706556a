package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/infra/config"
	idb "homework_notification_bot/internal/infra/database"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/obs"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The credential check is the only terminal state: no network
		// call has happened yet.
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
		"chat_id":     cfg.TelegramChatID,
		"poll_spec":   cfg.PollCronSpec,
	}).Info("Configuration loaded")

	// Review state: Postgres when configured, in-memory otherwise.
	var stateRepo homework.StateRepository
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		stateRepo = idb.NewPostgresStateRepository(db, cfg.TelegramChatID)
		mainLogger.Info("Review state persisted in Postgres")
	} else {
		stateRepo = idb.NewInMemoryStateRepository()
		mainLogger.Info("Review state kept in memory, reset on restart")
	}

	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := log.WithField("component", "telebot").WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"message": c.Text(),
					"sender":  c.Sender().ID,
					"chat":    c.Chat().ID,
				})
			}
			entry.Error("Telegram handler error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}

	practicumClient := practicum.NewClient(
		cfg.PracticumEndpoint,
		cfg.PracticumToken,
		cfg.HTTPTimeout,
		log.WithField("component", "practicum"),
	)

	monitor := app.NewMonitorService(
		practicumClient,
		telegram.NewTelebotAdapter(bot),
		stateRepo,
		log.WithField("component", "monitor"),
		cfg.TelegramChatID,
	)

	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telegram.RegisterBotCommands(rootCtx, bot, monitor, cfg.TelegramChatID, log.WithField("component", "telegram"))
	mainLogger.Info("Chat command handlers registered")

	pollScheduler := scheduler.NewPollScheduler(monitor, log.WithField("component", "scheduler"), cfg.PollCronSpec)
	pollScheduler.Start()

	if cfg.MetricsListenAddr != "" {
		var health func(context.Context) error
		if db != nil {
			health = db.PingContext
		}
		metricsSrv := obs.BootstrapMetricsServer(cfg.MetricsListenAddr, health, log.WithField("component", "metrics"))
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer shutdownCancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}

	mainLogger.Info("Application setup complete. Bot and poll scheduler are starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	cancel()
	pollScheduler.Stop()
	bot.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
