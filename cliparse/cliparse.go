package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Run modes, one per worker process.
const (
	ModeServe     = "serve"
	ModeQuizBot   = "quizbot"
	ModeAnswerBot = "answerbot"
)

type Config struct {
	Mode         string
	Port         int
	DatabaseURL  string
	DatabaseType string
	Timezone     string
	Debug        bool

	// Secrets (env only in production, CLI allowed for dev)
	AdminPassword  string
	SessionSecret  string
	QuizBotToken   string
	AnswerBotToken string
	AdminChatID    int64
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// ParseFlags validates flags for the given run mode.
// Each mode only requires the secrets it actually uses.
func ParseFlags(mode string, args []string) (Config, error) {
	cfg := Config{Mode: mode}

	fs := flag.NewFlagSet("quizcast "+mode, flag.ContinueOnError)

	// Network and store config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Admin server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.Timezone, "tz", "", "Timezone for schedules and timestamps")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminPassword, "admin-password", "", "Admin panel password (prefer env)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.QuizBotToken, "quiz-token", "", "Quiz bot token (prefer env)")
	fs.StringVar(&cfg.AnswerBotToken, "answer-token", "", "Answer bot token (prefer env)")
	fs.Int64Var(&cfg.AdminChatID, "admin-chat", 0, "Telegram chat ID allowed to run admin commands")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "quizcast.db"
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("TIMEZONE")
		if cfg.Timezone == "" {
			cfg.Timezone = "Asia/Kolkata"
		}
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, errors.New("invalid timezone: " + cfg.Timezone)
	}
	if !cfg.Debug {
		cfg.Debug = os.Getenv("DEBUG") == "true"
	}

	// Secrets - MUST be provided for the modes that use them.
	// There are deliberately no literal fallbacks here.
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.QuizBotToken == "" {
		cfg.QuizBotToken = os.Getenv("QUIZ_BOT_TOKEN")
	}
	if cfg.AnswerBotToken == "" {
		cfg.AnswerBotToken = os.Getenv("ANSWER_BOT_TOKEN")
	}
	if cfg.AdminChatID == 0 {
		if idStr := os.Getenv("ADMIN_CHAT_ID"); idStr != "" {
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid ADMIN_CHAT_ID env variable")
			}
			cfg.AdminChatID = id
		}
	}

	switch mode {
	case ModeServe:
		if cfg.AdminPassword == "" {
			return Config{}, errors.New("ADMIN_PASSWORD required")
		}
		if cfg.SessionSecret == "" {
			return Config{}, errors.New("SESSION_SECRET required")
		}
		if cfg.QuizBotToken == "" {
			return Config{}, errors.New("QUIZ_BOT_TOKEN required")
		}
	case ModeQuizBot:
		if cfg.QuizBotToken == "" {
			return Config{}, errors.New("QUIZ_BOT_TOKEN required")
		}
		if cfg.AdminChatID == 0 {
			return Config{}, errors.New("ADMIN_CHAT_ID required")
		}
	case ModeAnswerBot:
		if cfg.AnswerBotToken == "" {
			return Config{}, errors.New("ANSWER_BOT_TOKEN required")
		}
		if cfg.AdminChatID == 0 {
			return Config{}, errors.New("ADMIN_CHAT_ID required")
		}
	default:
		return Config{}, errors.New("unknown mode: " + mode)
	}

	return cfg, nil
}
