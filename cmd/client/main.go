package main

import (
	"context"
	"os"

	"bookstall/internal/buildinfo"
	"bookstall/internal/client/cli"
	"bookstall/internal/client/config"
	"bookstall/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
