package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/WayleX/Beerter/internal/buildinfo"
	"github.com/WayleX/Beerter/internal/client/cli"
	"github.com/WayleX/Beerter/internal/client/config"
	"github.com/WayleX/Beerter/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close session database", logging.Err(err))
		}
	}()

	app.Run(ctx)
}
