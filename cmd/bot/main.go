package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	chatimpl "github.com/majlislab/jasoos/external/chat"
	configloader "github.com/majlislab/jasoos/external/config"
	repositoryimpl "github.com/majlislab/jasoos/external/repository"
	chatpkg "github.com/majlislab/jasoos/internal/chat"
	"github.com/majlislab/jasoos/internal/config"
	"github.com/majlislab/jasoos/internal/game"
	"github.com/samber/do/v2"
)

const discordConnectTimeout = 20 * time.Second

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching game bot")
	runBot(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	chatimpl.RegisterDI(injector)
	game.RegisterDI(injector)

	return injector
}

func runBot(injector do.Injector) {
	client, err := do.Invoke[chatpkg.Client](injector)
	if err != nil {
		slog.Error("failed to resolve chat client", "error", err)
		os.Exit(1)
	}
	manager, err := do.Invoke[*game.Manager](injector)
	if err != nil {
		slog.Error("failed to resolve game manager", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordConnectTimeout)
	defer cancel()

	slog.Info("startup: connecting to discord gateway")
	if err := client.Connect(ctx); err != nil {
		slog.Error("discord connect failed", "error", err)
		os.Exit(1)
	}
	slog.Info("startup: discord connected")

	botUserID, err := client.GetBotUserID()
	if err != nil {
		slog.Error("failed to resolve bot user id", "error", err)
		os.Exit(1)
	}
	manager.SetBotUserID(botUserID)

	client.RegisterMessageHandler(manager.HandleMessage)
	slog.Info("message handler registered")
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("discord close failed", "error", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		slog.Info("startup: entering run loop")
		if err := client.Run(); err != nil {
			slog.Error("run loop failed", "error", err)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-done:
	}
}
