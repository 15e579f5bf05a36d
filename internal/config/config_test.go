package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ANTICHESS_WHITE_NAME", "ANTICHESS_BLACK_NAME", "ANTICHESS_START", "MESSAGES_DIR",
		"REDIS_URL", "DATABASE_URL", "RESULT_TTL_HOURS", "RESULT_WEBHOOK_URL",
		"SNAPSHOT_DIR", "SNAPSHOT_WIDTH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResultTTL != 720*time.Hour || cfg.SnapshotWidth != 480 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StartBoard != nil || cfg.RedisURL != "" || cfg.DatabaseURL != "" {
		t.Fatalf("optional values should be empty: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTICHESS_WHITE_NAME", " Alice ")
	t.Setenv("RESULT_TTL_HOURS", "2")
	t.Setenv("SNAPSHOT_WIDTH", "nope")
	t.Setenv("ANTICHESS_START", "8/8/8/8/4p3/3P4/8/8 w - - 0 1")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WhiteName != "Alice" {
		t.Fatalf("WhiteName = %q", cfg.WhiteName)
	}
	if cfg.ResultTTL != 2*time.Hour {
		t.Fatalf("ResultTTL = %v", cfg.ResultTTL)
	}
	if cfg.SnapshotWidth != 480 {
		t.Fatalf("invalid width should keep default, got %d", cfg.SnapshotWidth)
	}
	if cfg.StartBoard == nil || cfg.StartBoard.Count(antichess.White) != 1 || cfg.StartBoard.Count(antichess.Black) != 1 {
		t.Fatalf("start board not parsed")
	}
}

func TestLoadRejectsBadStart(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANTICHESS_START", "not-a-board")
	if _, err := Load(); !errors.Is(err, antichess.ErrBadPlacement) {
		t.Fatalf("expected ErrBadPlacement, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("ANTICHESS_BLACK_NAME=Bob\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override variables that exist, so drop the empty one.
	os.Unsetenv("ANTICHESS_BLACK_NAME")
	t.Cleanup(func() { os.Unsetenv("ANTICHESS_BLACK_NAME") })
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BlackName != "Bob" {
		t.Fatalf("BlackName = %q", cfg.BlackName)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("explicit missing file should fail")
	}
}
