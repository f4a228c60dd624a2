package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"logistics/internal/pkg/config"
	"logistics/internal/pkg/dotenv"
	"logistics/internal/pkg/postgres"
	"logistics/migrations"
	"logistics/pkg/logger"
	"logistics/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var log logger.Logger = zapLogger

	command := pflag.StringP("command", "c", "up", "goose command: up, down, status, redo, reset, version")
	pflag.Parse()

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			log.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	}

	// остальная конфигурация сервиса мигратору не нужна
	dbCfg := config.LoadDatabase()
	if err := config.ValidateDatabase(&dbCfg); err != nil {
		log.Error("invalid database config", logger.NewField("error", err))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &dbCfg)
	if err != nil {
		log.Error("failed to connect to database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	migrateLog := log.With(logger.NewField("command", *command))
	if err := migrations.Run(ctx, pool, *command, pflag.Args()...); err != nil {
		migrateLog.Error("migration failed", logger.NewField("error", err))
		return
	}
	migrateLog.Info("migration finished")
}
