package common

import (
	"context"
	"net/http"
	"time"

	"church-office-go/pkg/logger"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handlers struct {
	db  Pinger
	log logger.Logger
}

func New(db Pinger, log logger.Logger) *Handlers {
	return &Handlers{db: db, log: log}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		WriteData(w, http.StatusOK, healthResponse{Status: "ok", Database: "unknown"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		h.log.InternalError("health: database ping failed", err)
		WriteError(w, http.StatusServiceUnavailable, "unavailable", "database unavailable")
		return
	}
	WriteData(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
}
