package redis

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"checky/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{
		Host: "redis.example.com",
		Port: 6380,
	}

	assert.Equal(t, "redis.example.com:6380", cfg.Addr())
}

func miniredisConfig(t *testing.T, mr *miniredis.Miniredis) config.RedisConfig {
	t.Helper()
	host, portStr, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return config.RedisConfig{Enabled: true, Host: host, Port: port}
}

func TestNewClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), miniredisConfig(t, mr), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := miniredisConfig(t, mr)
	mr.Close()

	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestHealthCheck_ReportsOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), miniredisConfig(t, mr), zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	assert.Error(t, NewHealthCheck(client).Ping(context.Background()))
}

func TestNewClient_Disabled(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{Host: "localhost", Port: 6379}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, client)
}

func TestNewClient_UsesConfiguredDB(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := miniredisConfig(t, mr)
	cfg.DB = 2
	cfg.DialTimeout = time.Second

	client, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer client.Close()

	limiter := NewRateLimitStore(client)
	res, err := limiter.Allow(context.Background(), "checkout:USER_001", 30, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	assert.Len(t, mr.DB(2).Keys(), 1, "rate limit counters land in the configured db")
	assert.Empty(t, mr.DB(0).Keys())
}

func TestNewClient_UnreachableFailsWithinDialTimeout(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := miniredisConfig(t, mr)
	cfg.DialTimeout = 200 * time.Millisecond
	mr.Close()

	start := time.Now()
	_, err := NewClient(context.Background(), cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.Addr())
	assert.Less(t, time.Since(start), 5*time.Second)
}
