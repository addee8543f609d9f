package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/docbotdev/docbot/internal/buildinfo"
	"github.com/docbotdev/docbot/internal/cli"
	"github.com/docbotdev/docbot/internal/config"
	"github.com/docbotdev/docbot/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
