package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"room-booking/config"
	"room-booking/internal/bootstrap"
	"room-booking/pkg/log"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := newApp(os.Stdout, loadApp)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "roomctl:", err)
		os.Exit(1)
	}
}

// loadApp builds the booking stack from config.yaml (or an explicit file).
func loadApp(ctx context.Context, configPath, logLevel string) (*bootstrap.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    logLevel,
		Mode:     "production",
		Encoding: "console",
	})
	return bootstrap.New(ctx, logger, cfg)
}
