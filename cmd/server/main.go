package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/dialoguedeck/internal/api"
	"github.com/vytor/dialoguedeck/internal/clipboard"
	"github.com/vytor/dialoguedeck/internal/config"
	"github.com/vytor/dialoguedeck/internal/db"
	"github.com/vytor/dialoguedeck/internal/logger"
	"github.com/vytor/dialoguedeck/internal/services"
	"github.com/vytor/dialoguedeck/internal/store"
	"github.com/vytor/dialoguedeck/internal/store/file"
	"github.com/vytor/dialoguedeck/internal/store/memory"
	"github.com/vytor/dialoguedeck/internal/store/sqlite"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("DialogueDeck Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("store_backend=%s", cfg.StoreBackend)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("store_file=%s", cfg.StoreFile)
	log.Debug("store_key=%s", cfg.StoreKey)
	log.Debug("store_timeout=%s", cfg.StoreTimeout())
	log.Debug("seed_file=%s", cfg.SeedFile)
	log.Debug("clipboard_enabled=%t", cfg.ClipboardEnabled)
	log.Debug("log_level=%s", cfg.LogLevel)

	st, closer, err := openStore(cfg)
	if err != nil {
		log.Error("failed to open store: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing store")
		closer.Close()
	}()

	seed := services.DefaultSeed()
	if cfg.SeedFile != "" {
		seed, err = services.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Error("failed to load seed file: %v", err)
			os.Exit(1)
		}
	}

	var sink clipboard.Sink = clipboard.Discard{}
	switch {
	case !cfg.ClipboardEnabled:
		log.Debug("clipboard disabled")
	case !clipboard.Available():
		log.Warn("system clipboard unavailable, copy requests will be ignored")
	default:
		sink = clipboard.NewSystem(log)
	}

	ctx := logger.NewContext(context.Background(), log)
	session, err := services.Bootstrap(ctx, services.Deps{
		Store:       st,
		Clipboard:   sink,
		SaveTimeout: cfg.StoreTimeout(),
	}, seed)
	if err != nil {
		log.Error("failed to bootstrap session: %v", err)
		os.Exit(1)
	}

	srv := &api.Server{Session: session}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("DialogueDeck Server Stopped")
	log.Info("===========================================")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the configured backend. The returned closer releases
// whatever the backend holds open.
func openStore(cfg config.Config) (store.Store, io.Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.New(database.DB, cfg.StoreKey), database, nil
	case config.BackendFile:
		fileStore := file.New(cfg.StoreFile)
		logger.Default().Info("using file store at %s", fileStore.Path())
		return fileStore, nopCloser{}, nil
	case config.BackendMemory:
		return memory.New(nil), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
