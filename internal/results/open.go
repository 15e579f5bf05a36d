package results

import (
	"context"
	"fmt"

	"github.com/Amruthacagithub/Antichess-game-cli/internal/antichess"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/config"
	"github.com/Amruthacagithub/Antichess-game-cli/internal/obslog"
	"go.uber.org/zap"
)

// Open picks the store for cfg: Postgres, then Redis, then memory.
func Open(ctx context.Context, cfg *config.AppConfig) (Store, error) {
	switch {
	case cfg.DatabaseURL != "":
		s, err := NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		obslog.L().Info("result_store", zap.String("kind", "postgres"))
		return s, nil
	case cfg.RedisURL != "":
		s, err := NewRedisStore(ctx, cfg.RedisURL, cfg.ResultTTL)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		obslog.L().Info("result_store", zap.String("kind", "redis"), zap.Duration("ttl", cfg.ResultTTL))
		return s, nil
	default:
		obslog.L().Info("result_store", zap.String("kind", "memory"))
		return NewMemoryStore(), nil
	}
}

// Archive saves the finished outcome and then notifies the webhook when n is set.
// A failed notification is logged and does not undo the save.
func Archive(ctx context.Context, store Store, n *Notifier, o antichess.Outcome) (*Record, error) {
	r, err := FromOutcome(o)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, r); err != nil {
		obslog.L().Error("result_save_error", zap.String("game_id", r.ID), zap.Error(err))
		return nil, err
	}
	obslog.L().Info("result_saved",
		zap.String("game_id", r.ID),
		zap.String("method", string(r.Method)),
		zap.String("winner", r.Winner),
	)
	if err := n.Notify(ctx, r); err != nil {
		obslog.L().Warn("result_notify_error", zap.String("game_id", r.ID), zap.Error(err))
	}
	return r, nil
}
