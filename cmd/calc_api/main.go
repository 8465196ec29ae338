// Package main Infix Calc API
// @title Infix Calc API
// @version 1.0
// @description Tokenizes, validates and evaluates infix arithmetic expressions and keeps an evaluation history.
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/infix-calc/docs"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/router"
	"github.com/DjordjeVuckovic/infix-calc/internal/server"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

const storeInitTimeout = 30 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	// the store is created before the server so /health can probe it
	initCtx, cancel := context.WithTimeout(context.Background(), storeInitTimeout)
	store, err := factory.NewStore(initCtx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create evaluation store", "error", err, "type", cfg.StorageConfig.String())
		os.Exit(1)
	}
	slog.Info("Evaluation history enabled", "storage", cfg.StorageConfig.String())

	s := server.New(cfg.Server, store).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Infix Calc API is running")
	})

	calc := eval.NewDefaultCalculator(cfg.CalcOptions)
	router.NewCalcRouter(s.Echo, calc, store).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	store.Close()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
