package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"church-office-go/internal/app"
	"church-office-go/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run(logger.NewFromEnv()))
}

func run(log logger.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("app: starting")
	application, err := app.New(ctx, log)
	if err != nil {
		log.Critical("app: init failed", "err", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("app: close failed", "err", err)
		}
	}()

	srv := application.HTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		log.Info("http: listening", "addr", srv.Addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http: graceful shutdown failed", "err", err)
		return 1
	}

	log.Info("app: stopped")
	return 0
}
