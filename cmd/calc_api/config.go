package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/server"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/infix-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
	CalcOptions   eval.Options
}

// loadConfig reads .env first, then logging, server, storage and calculator settings.
func loadConfig() (*CalcApiConfig, error) {
	app := NewAppConfig()
	app.LoadDotEnv()
	env.SetupLogging()

	sCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	cfg, err := app.Load()
	if err != nil {
		return nil, err
	}
	cfg.Server = sCfg
	return cfg, nil
}

// LoadDotEnv populates the process environment from .env. It must run before
// any other configuration is read.
func (as *AppConfig) LoadDotEnv() {
	if err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env"); err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	opts, err := eval.LoadOptions()
	if err != nil {
		slog.Error("Failed to load calculator options from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		StorageConfig: *storageCfg,
		CalcOptions:   opts,
	}, nil
}
