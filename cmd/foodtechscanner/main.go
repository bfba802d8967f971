package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"FoodTechScanner/internal/app"
	"FoodTechScanner/internal/config"
	"FoodTechScanner/internal/logging"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()

	var logSink io.Writer
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Printf("logging: cannot open %s: %v (using stderr)", cfg.Logging.File, err)
		} else {
			defer f.Close()
			logSink = f
		}
	}
	logger := logging.New(cfg.Logging.Level, logSink)

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
