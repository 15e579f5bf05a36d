package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

type AppConfig struct {
	WhiteName string
	BlackName string

	// StartPlacement is the optional FEN piece-placement field to start from.
	StartPlacement string
	StartBoard     *antichess.Board

	MessagesDir string

	RedisURL    string
	DatabaseURL string
	ResultTTL   time.Duration

	ResultWebhookURL string

	SnapshotDir   string
	SnapshotWidth int
}

const (
	defaultResultTTLHours = 720
	defaultSnapshotWidth  = 480
)

// LoadDotEnv reads key=value pairs from path without overriding variables that
// are already set. A missing default file is not an error.
func LoadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ResultTTL:     defaultResultTTLHours * time.Hour,
		SnapshotWidth: defaultSnapshotWidth,
	}

	cfg.WhiteName = strings.TrimSpace(os.Getenv("ANTICHESS_WHITE_NAME"))
	cfg.BlackName = strings.TrimSpace(os.Getenv("ANTICHESS_BLACK_NAME"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("MESSAGES_DIR"))

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if v := strings.TrimSpace(os.Getenv("RESULT_TTL_HOURS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ResultTTL = time.Duration(n) * time.Hour
		}
	}
	cfg.ResultWebhookURL = strings.TrimSpace(os.Getenv("RESULT_WEBHOOK_URL"))

	cfg.SnapshotDir = strings.TrimSpace(os.Getenv("SNAPSHOT_DIR"))
	if v := strings.TrimSpace(os.Getenv("SNAPSHOT_WIDTH")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SnapshotWidth = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("ANTICHESS_START")); v != "" {
		b, err := antichess.ParsePlacement(v)
		if err != nil {
			return nil, fmt.Errorf("ANTICHESS_START: %w", err)
		}
		cfg.StartPlacement = v
		cfg.StartBoard = b
	}

	return cfg, nil
}
