package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DevJWTSecret is the fallback signing secret. main warns when it is in use.
const DevJWTSecret = "checky-dev-secret"

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type WalletConfig struct {
	InitialBalance int64         `mapstructure:"initial_balance"`
	MinTopUp       int64         `mapstructure:"min_topup"`
	Latency        time.Duration `mapstructure:"latency"`      // simulated settlement delay
	SeedHistory    bool          `mapstructure:"seed_history"` // preload demo transactions
	Currency       string        `mapstructure:"currency"`
}

type AuthConfig struct {
	Latency time.Duration `mapstructure:"latency"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// DialTimeout bounds the startup ping so an unreachable Redis fails fast.
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CHECKY_.
// Nested keys use underscore: CHECKY_WALLET_MIN_TOPUP, CHECKY_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("wallet.initial_balance", 50000)
	v.SetDefault("wallet.min_topup", 500)
	v.SetDefault("wallet.latency", "1500ms")
	v.SetDefault("wallet.seed_history", true)
	v.SetDefault("wallet.currency", "NGN")
	v.SetDefault("auth.latency", "1s")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", "2s")
	v.SetDefault("jwt.secret", DevJWTSecret)
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "checky")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CHECKY_WALLET_MIN_TOPUP -> wallet.min_topup
	v.SetEnvPrefix("CHECKY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Wallet.InitialBalance < 0 {
		return fmt.Errorf("wallet.initial_balance must not be negative")
	}
	if c.Wallet.MinTopUp < 1 {
		return fmt.Errorf("wallet.min_topup must be at least 1")
	}
	if c.Wallet.Latency < 0 || c.Auth.Latency < 0 {
		return fmt.Errorf("latencies must not be negative")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	return nil
}
