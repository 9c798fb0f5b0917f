package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/classchat/classchat-server/internal/app"
	"github.com/classchat/classchat-server/internal/config"
	"github.com/classchat/classchat-server/internal/log"
)

func main() {
	// Best-effort .env load; env vars feed the viper loader.
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	addr := flag.String("addr", "", "HTTP listen address")
	teacher := flag.String("teacher", "", "privileged teacher identity")
	flag.Parse()

	bootstrap := log.New("info")

	cfg, cfgPath, err := config.Load(bootstrap, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	// Flags override file and env values.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *teacher != "" {
		cfg.Teacher = *teacher
	}

	logger := log.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(&cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize application")
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Str("default_room", cfg.DefaultRoom).
		Msg("starting classchat server")

	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
