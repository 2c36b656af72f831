package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cityDesk/internal/config"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

type Redis struct {
	Client *redis.Client
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	r := &Redis{Client: rdb}
	if err := r.Ping(ctx); err != nil {
		logger.Error("redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
		if cerr := rdb.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}
	logger.Info("redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	return r, nil
}

// Ping backs the health endpoint as well as the startup check.
func (r *Redis) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
