package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"fundvest-go/internal/config"
	"fundvest-go/internal/fixtures"
	httpserver "fundvest-go/internal/http"
	"fundvest-go/internal/logging"
	"fundvest-go/internal/mockapi"
	"fundvest-go/internal/state"
	"fundvest-go/internal/store"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	catalog, err := fixtures.Load()
	if err != nil {
		log.Fatal("failed to load fixtures: ", err)
	}

	kv, err := buildStore(cfg)
	if err != nil {
		log.Fatal("failed to open key-value store: ", err)
	}

	ctx := context.Background()
	snap, err := store.LoadSnapshot(ctx, kv)
	if err != nil {
		log.Fatal("failed to rehydrate session: ", err)
	}
	app := state.NewApp(state.Boot{
		User:               snap.User,
		Token:              snap.Token,
		OnboardingComplete: snap.OnboardingComplete,
		KYCStatus:          snap.KYCStatus,
	})

	api := mockapi.New(mockapi.Options{
		MinLatency:  cfg.MockMinLatency(),
		MaxLatency:  cfg.MockMaxLatency(),
		FailureRate: cfg.MockFailureRate,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL(),
	}, kv, catalog, logger)

	r := httpserver.NewServer(cfg, logger, api, kv, app)

	logger.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// buildStore opens the postgres-backed store when DB_HOST is set and
// falls back to the in-memory store otherwise.
func buildStore(cfg *config.Config) (store.KV, error) {
	dsn := cfg.DSN()
	if dsn == "" {
		return store.NewMemoryKV(), nil
	}
	return store.Connect(dsn)
}
