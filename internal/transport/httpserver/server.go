package httpserver

import (
	"net/http"
	"time"

	"church-office-go/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds the API server. The write deadline leaves headroom over the
// per-request timeout so chi can still answer 503 before the connection drops.
func New(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
