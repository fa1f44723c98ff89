package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrewpaige1/flasheng-api/auth"
	"github.com/andrewpaige1/flasheng-api/config"
	"github.com/andrewpaige1/flasheng-api/generation"
	"github.com/andrewpaige1/flasheng-api/handlers"
	"github.com/andrewpaige1/flasheng-api/logging"
	"github.com/andrewpaige1/flasheng-api/middleware"
	"github.com/andrewpaige1/flasheng-api/store"
)

func main() {
	configPath := flag.String("config", "", "path to an optional TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "flasheng-api:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, warning := range cfg.Warnings {
		log.Warn(ctx, "config: unsafe fallback in use", "detail", warning, "environment", cfg.Server.Environment)
	}

	// Initialize database connection
	db, err := config.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer config.Close(db)

	if cfg.Database.SeedDefaults {
		result, err := store.New(db).SeedDefaults(ctx)
		if err != nil {
			return err
		}
		if result.Categories > 0 {
			log.Info(ctx, "seeded default data", "categories", result.Categories, "flashcards", result.Flashcards)
		}
	}

	var gen generation.Generator = generation.StubGenerator{}
	if cfg.OpenAI.APIKey != "" {
		gen = generation.NewOpenAIGenerator(generation.OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
			Timeout: cfg.OpenAI.Timeout,
		})
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	h := handlers.NewDBHandler(db, tokens, gen, log)

	if cfg.Admin.Email != "" {
		created, err := h.Store.Users.EnsureAdmin(ctx, cfg.Admin.FullName, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			log.Info(ctx, "created admin account", "email", cfg.Admin.Email)
		}
	}

	gate := middleware.NewGate(tokens, log)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handlers.NewRouter(h, gate, cfg.Server.Origins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "server running", "addr", srv.Addr, "environment", cfg.Server.Environment)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
