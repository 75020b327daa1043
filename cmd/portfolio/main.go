// ABOUTME: Entry point for the portfolio web server
// ABOUTME: Wires config, store, bootstrap and the HTTP server

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/donovan057/portfolio/internal/auth"
	"github.com/donovan057/portfolio/internal/bootstrap"
	"github.com/donovan057/portfolio/internal/config"
	"github.com/donovan057/portfolio/internal/store"
	"github.com/donovan057/portfolio/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"http_addr", cfg.Server.HTTPAddr,
		"db_path", cfg.Database.Path,
	)
	if cfg.UsingFallbackSecret() {
		slog.Warn("session signing key is the built-in fallback, set PORTFOLIO_SECRET_KEY in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing store", "error", closeErr)
		}
	}()

	// First-run seeding: the schema exists at this point, ensure the
	// default admin credential does too.
	if err := bootstrap.Run(ctx, st, cfg.Admin.DefaultPassword); err != nil {
		return err
	}

	sessions := auth.NewSessionManager([]byte(cfg.Server.SecretKey))
	site := web.New(st, sessions, cfg.Admin.Username)

	mux := http.NewServeMux()
	site.RegisterRoutes(mux)
	handler := web.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
