package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/pvukovic/mailpilot/internal/client/cli"
	"github.com/pvukovic/mailpilot/internal/client/config"
	"github.com/pvukovic/mailpilot/internal/logging"
)

func main() {
	// a .env in the working directory is optional
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
