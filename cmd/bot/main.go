package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/app"
	"github.com/aliskhannn/quizzboi/internal/config"
	"github.com/aliskhannn/quizzboi/internal/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := app.New(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to init engine", zap.Error(err))
	}
	defer engine.Close()

	if err := app.RunBot(ctx, cfg, engine, lg); err != nil {
		lg.Error("bot stopped", zap.Error(err))
	}
}
