package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockdesk/internal/backend"
	"stockdesk/internal/config"
	"stockdesk/internal/logger"
	"stockdesk/internal/metrics"
	"stockdesk/internal/session"
	"stockdesk/internal/web"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional, env vars apply either way)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg := logger.New(cfg.App.Env)

	// Auto-generate the session secret if not provided. Sessions will not
	// survive a restart in that case.
	if cfg.Session.Secret == "" {
		secret, err := generateSecret()
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		cfg.Session.Secret = secret
		logg.Warn("session secret auto-generated, sessions will be invalidated on restart")
	}

	client := backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	webRouter, err := web.NewRouter(client, sessions, logg)
	if err != nil {
		log.Fatalf("Failed to set up web router: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", metrics.Handler())
	}
	mux.Handle("/", webRouter)

	handler := web.LoggingMiddleware(logg)(metrics.Middleware(mux))

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: handler,
	}

	go func() {
		logg.Info("server listening", "addr", cfg.HTTP.Addr, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logg.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("shutdown failed", "error", err)
	}
}

// generateSecret creates a random session signing secret.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
