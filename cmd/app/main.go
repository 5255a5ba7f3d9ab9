package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-planner/internal/config"
	"github.com/BuzzLyutic/task-planner/internal/handler"
	"github.com/BuzzLyutic/task-planner/internal/repo"
	"github.com/BuzzLyutic/task-planner/internal/service"
	"github.com/BuzzLyutic/task-planner/internal/storage"
	"github.com/BuzzLyutic/task-planner/internal/validator"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	// logs go to stderr, the menu owns stdout
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// Ctrl+C cancels ctx, which unblocks a pending prompt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := storage.NewCSVStore(cfg.TasksFile, logger)
	tasks, err := repo.Open(ctx, store)
	if err != nil {
		return handler.Report(os.Stdout, err)
	}

	prompter := validator.NewPrompter(os.Stdin, os.Stdout)
	srv := service.NewTaskService(tasks, logger)
	shell := handler.NewShell(
		handler.NewTaskHandler(srv, prompter, os.Stdout, logger),
		prompter,
		os.Stdout,
		logger,
	)

	err = shell.Run(ctx)
	if err != nil && err != handler.ErrInterrupted {
		logger.Error("session ended with error", zap.Error(err))
	}
	return handler.Report(os.Stdout, err)
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		zcfg.Level = lvl
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
