package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, int64(50000), cfg.Wallet.InitialBalance)
	assert.Equal(t, int64(500), cfg.Wallet.MinTopUp)
	assert.Equal(t, 1500*time.Millisecond, cfg.Wallet.Latency)
	assert.True(t, cfg.Wallet.SeedHistory)
	assert.Equal(t, "NGN", cfg.Wallet.Currency)
	assert.Equal(t, time.Second, cfg.Auth.Latency)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 2*time.Second, cfg.Redis.DialTimeout)

	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "checky", cfg.JWT.Issuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
wallet:
  initial_balance: 1000
  min_topup: 100
  latency: "0s"
  seed_history: false
  currency: "NGN"
auth:
  latency: "250ms"
redis:
  enabled: true
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
jwt:
  secret: "my-jwt-secret"
  expiry: "12h"
  issuer: "test-checky"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, int64(1000), cfg.Wallet.InitialBalance)
	assert.Equal(t, int64(100), cfg.Wallet.MinTopUp)
	assert.Equal(t, time.Duration(0), cfg.Wallet.Latency)
	assert.False(t, cfg.Wallet.SeedHistory)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.Latency)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "my-jwt-secret", cfg.JWT.Secret)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "test-checky", cfg.JWT.Issuer)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CHECKY_SERVER_PORT", "3000")
	t.Setenv("CHECKY_WALLET_MIN_TOPUP", "1000")
	t.Setenv("CHECKY_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, int64(1000), cfg.Wallet.MinTopUp)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"negative balance", "CHECKY_WALLET_INITIAL_BALANCE", "-1"},
		{"zero minimum", "CHECKY_WALLET_MIN_TOPUP", "0"},
		{"negative latency", "CHECKY_WALLET_LATENCY", "-1s"},
		{"unknown gin mode", "CHECKY_SERVER_MODE", "production"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: [unclosed"), 0644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestServerConfig_Addr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: 8080}.Addr())
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}
