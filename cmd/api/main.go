package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checky/config"
	httpHandler "checky/internal/adapter/http/handler"
	"checky/internal/adapter/storage/memory"
	redisStorage "checky/internal/adapter/storage/redis"
	"checky/internal/core/ports"
	"checky/internal/service"
	"checky/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Checky")

	if cfg.JWT.Secret == config.DevJWTSecret {
		log.Warn().Msg("Using the development JWT secret; set CHECKY_JWT_SECRET outside local demos")
	}

	ctx := context.Background()

	// Static demo dataset
	ds := memory.DefaultDataset(time.Now())
	catalogRepo := memory.NewCatalogRepo(ds.Stores, ds.Products)
	orderRepo := memory.NewOrderRepo(ds.Orders)
	staffRepo := memory.NewStaffRepo(ds.Staff)
	userRepo := memory.NewUserRepo(ds.Users)

	// Optional Redis for rate limiting
	var (
		rateLimiter    ports.RateLimiter
		healthCheckers []ports.HealthChecker
	)
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	switch {
	case errors.Is(err, redisStorage.ErrDisabled):
		log.Info().Msg("Redis disabled, rate limiting off")
	case err != nil:
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	default:
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr()).Msg("Redis connected")

		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Core services
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Shopper state is per customer; each gets its own wallet, basket and receipts.
	sessions := service.NewSessionRegistry(catalogRepo, service.WalletOptions{
		InitialBalance: cfg.Wallet.InitialBalance,
		MinTopUp:       cfg.Wallet.MinTopUp,
		Latency:        cfg.Wallet.Latency,
		SeedHistory:    cfg.Wallet.SeedHistory,
	}, logger.Component(log, "sessions"))
	staffSvc := service.NewStaffService(staffRepo, orderRepo, catalogRepo, hashSvc, tokenSvc, logger.Component(log, "staff"))
	authSvc := service.NewAuthService(userRepo, hashSvc, tokenSvc, cfg.Auth.Latency, logger.Component(log, "auth"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		Sessions:       sessions,
		Catalog:        catalogRepo,
		StaffSvc:       staffSvc,
		TokenSvc:       tokenSvc,
		RateLimiter:    rateLimiter,
		HealthCheckers: healthCheckers,
		Currency:       cfg.Wallet.Currency,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	// Allow in-flight settlements to finish before exiting.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
