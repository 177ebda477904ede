package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"event-intake/internal/config"
	"event-intake/internal/httpserver"
	"event-intake/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may drain after a
// shutdown signal.
const shutdownTimeout = 15 * time.Second

// main boots the service: config → logging → HTTP server.
func main() {
	// Load runtime config from environment (ADDR, LOG_LEVEL, LOG_PRETTY).
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init(cfg)

	// Build HTTP router (health + event intake).
	router := httpserver.NewRouter()

	srv := &http.Server{
		Handler:      router,
		ReadTimeout:  8 * time.Second,
		WriteTimeout: 8 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Fatal().Err(err).Msg("listen failed")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Info().Str("addr", cfg.Addr).Msg("server started")
	if err := serve(srv, ln, sigCh); err != nil {
		log.Fatal().Err(err).Msg("http server terminated")
	}
	log.Info().Msg("shutdown complete")
}

// serve runs the HTTP server on ln and blocks until it has fully stopped.
// On the first signal from sigCh the server stops accepting connections
// and drains in-flight requests; serve does not return until that drain
// has completed, so callers may exit as soon as it does.
func serve(srv *http.Server, ln net.Listener, sigCh <-chan os.Signal) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)

		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}()

	// Serve returns ErrServerClosed as soon as Shutdown is called; the
	// drain is only finished once Shutdown itself has returned.
	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-drained
	return nil
}
