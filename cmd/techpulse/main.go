// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the TechPulse API server.
// It loads configuration, opens the selected storage backend, seeds the
// development content, sets up routing, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techpulse/internal/auth"
	"techpulse/internal/config"
	"techpulse/internal/database"
	"techpulse/internal/handlers"
	"techpulse/internal/kv"
	"techpulse/internal/router"
	"techpulse/internal/session"
	"techpulse/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.StorageBackend,
	)

	backend, cleanup, err := openBackend(cfg)
	if err != nil {
		slog.Error("failed to open storage backend", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// Content store with the configured simulated latency, seeded with the
	// development catalog when the collections are absent.
	contentStore := store.NewContentStore(backend, cfg.MockLatency)
	if err := contentStore.Initialize(context.Background()); err != nil {
		slog.Error("failed to seed content", "error", err)
		os.Exit(1)
	}

	verifier, err := auth.NewStaticVerifier(auth.DefaultAccounts())
	if err != nil {
		slog.Error("failed to initialize verifier", "error", err)
		os.Exit(1)
	}

	// Sessions share the content backend, so they survive restarts on every
	// persistent backend and vanish with the memory one.
	sessionStore := session.NewStore(backend)

	authHandlers := handlers.NewAuth(sessionStore, verifier, verifier)
	contentHandlers := handlers.NewContent(contentStore)

	r, loginLimiter := router.New(sessionStore, authHandlers, contentHandlers)
	defer loginLimiter.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

// openBackend builds the key-value store selected by STORAGE_BACKEND and
// returns it with a cleanup function for any held connections.
func openBackend(cfg *config.Config) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemory(), noop, nil

	case config.BackendFile:
		backend, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return backend, noop, nil

	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, noop, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, noop, err
		}
		return kv.NewPostgres(db), func() { db.Close() }, nil

	case config.BackendValkey:
		backend, err := kv.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, noop, err
		}
		return backend, func() { backend.Close() }, nil
	}

	// config.Load already validated the backend name.
	panic("unreachable")
}
