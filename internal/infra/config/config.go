package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEndpoint is the homework-statuses API of Yandex Practicum.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string
	TelegramToken     string
	TelegramChatID    int64
	PracticumEndpoint string
	PollCronSpec      string // cron descriptor for the poll cycle, e.g. "@every 600s"
	HTTPTimeout       time.Duration
	DatabaseURL       string // empty: keep review state in memory only
	LogLevel          string
	LogFile           string
	Environment       string
	MetricsListenAddr string // empty: metrics/health server disabled
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("TOKEN_PRACTICUM")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("TOKEN_PRACTICUM is not set")
	}

	cfg.TelegramToken = os.Getenv("TOKEN_TELEGRAM")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TOKEN_TELEGRAM is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultEndpoint
	}

	cfg.PollCronSpec = os.Getenv("POLL_CRON_SPEC")
	if cfg.PollCronSpec == "" {
		cfg.PollCronSpec = "@every 600s" // Default: one poll cycle every 10 minutes
	}

	timeoutStr := os.Getenv("HTTP_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		cfg.HTTPTimeout = 10 * time.Second
	} else {
		seconds, convErr := strconv.Atoi(timeoutStr)
		if convErr != nil || seconds <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT_SECONDS: %q", timeoutStr)
		}
		cfg.HTTPTimeout = time.Duration(seconds) * time.Second
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.LogFile = os.Getenv("LOG_FILE")
	if cfg.LogFile == "" {
		cfg.LogFile = "info.log"
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.MetricsListenAddr = os.Getenv("METRICS_LISTEN_ADDR")

	return cfg, nil
}
