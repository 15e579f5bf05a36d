package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
	appcfg "github.com/Amruthacagithub/Antichess-game-cli/internal/config"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/console"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/msgcat"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/obslog"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/render"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/results"
)

func main() {
	history := flag.Int("history", 0, "print the N most recent finished games and exit")
	envFile := flag.String("env", "", "load environment variables from this file (default .env if present)")
	flag.Parse()

	if err := appcfg.LoadDotEnv(*envFile); err != nil {
		log.Fatalf("env error: %v", err)
	}
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer obslog.Sync()

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := results.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("result store error: %v", err)
	}
	defer store.Close()

	if *history > 0 {
		recent, err := store.Recent(ctx, *history)
		if err != nil {
			log.Fatalf("history error: %v", err)
		}
		console.WriteHistory(os.Stdout, cat, recent)
		return
	}

	if err := play(ctx, cfg, cat, store); err != nil && !errors.Is(err, context.Canceled) {
		obslog.L().Error("antichess_exit", zap.Error(err))
		stop()
		obslog.Sync()
		log.Fatalf("game error: %v", err)
	}
}

func play(ctx context.Context, cfg *appcfg.AppConfig, cat *msgcat.Catalog, store results.Store) error {
	term := console.New(os.Stdin, os.Stdout, cat)

	white, black, err := term.ReadNames(ctx)
	if err != nil {
		return fmt.Errorf("read names: %w", err)
	}
	white = firstNonEmpty(white, cfg.WhiteName)
	black = firstNonEmpty(black, cfg.BlackName)

	var opts []antichess.Option
	if cfg.StartBoard != nil {
		opts = append(opts, antichess.WithBoard(cfg.StartBoard))
	}
	game := antichess.NewGame(white, black, opts...)

	outcome, err := game.Run(ctx, term, term)
	if err != nil {
		return err
	}

	// Archiving and the snapshot should still finish if the player hits Ctrl-C now.
	afterCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	var notifier *results.Notifier
	if cfg.ResultWebhookURL != "" {
		notifier = results.NewNotifier(cfg.ResultWebhookURL)
	}
	if _, err := results.Archive(afterCtx, store, notifier, outcome); err != nil {
		obslog.L().Warn("result_archive_failed", zap.String("game_id", outcome.GameID), zap.Error(err))
	}

	if cfg.SnapshotDir != "" {
		if err := writeSnapshot(afterCtx, cfg, game, outcome); err != nil {
			obslog.L().Warn("snapshot_failed", zap.String("game_id", outcome.GameID), zap.Error(err))
		}
	}
	return nil
}

func writeSnapshot(ctx context.Context, cfg *appcfg.AppConfig, game *antichess.Game, o antichess.Outcome) error {
	data, err := render.NewRenderer().RenderPNG(ctx, game.Board(), render.OutcomeOptions(o, cfg.SnapshotWidth))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.SnapshotDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(cfg.SnapshotDir, o.GameID+".png")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	obslog.L().Info("snapshot_written", zap.String("game_id", o.GameID), zap.String("path", path))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
