package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/sketchcoach/sketchcoach/internal/auth"
	"github.com/sketchcoach/sketchcoach/internal/collab"
	"github.com/sketchcoach/sketchcoach/internal/config"
	mw "github.com/sketchcoach/sketchcoach/internal/middleware"
	"github.com/sketchcoach/sketchcoach/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	engineCfg := cfg.Engine()
	if err := engineCfg.Validate(); err != nil {
		slog.Error("invalid tutorial config", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)

	sessionService := session.NewService(engineCfg, cfg.FollowupAnswer)
	sessionHandler := session.NewHandler(sessionService, authService)

	hub := collab.NewHub()
	go hub.Run()
	sessionService.OnDelete(hub.Disconnect)

	wsHandler := collab.NewHandler(hub, sessionService.Get, authService.QueryTokenValidator, originPatterns(cfg.AllowedOrigins))

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mux.MiddlewareFunc(mw.CORS(cfg.AllowedOrigins)))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")

	// Protected session routes
	api := r.PathPrefix("/sessions").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/{sessionId}", sessionHandler.Delete).Methods("DELETE")
	api.HandleFunc("/{sessionId}/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")

	// WebSocket endpoint
	r.Handle("/ws/session/{sessionId}", wsHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Close websocket clients before draining HTTP
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr, "followup", cfg.FollowupAnswer != "")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// originPatterns converts allowed origins to the host patterns the websocket
// handshake checks against.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, o := range origins {
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, o)
	}
	return patterns
}
