package redis

import (
	"context"
	"errors"
	"fmt"

	"checky/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ErrDisabled is returned by NewClient when redis.enabled is false.
// Callers run without rate limiting in that case.
var ErrDisabled = errors.New("redis disabled")

// NewClient connects to the Redis described by cfg and pings it once.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr(),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Debug().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("redis ping ok")

	return client, nil
}
