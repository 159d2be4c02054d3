package ministries

import (
	"encoding/json"
	"net/http"
	"time"

	ministrydomain "church-office-go/internal/domain/ministry"
	"church-office-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type statRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

type statResponse struct {
	Category  string          `json:"category"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// GetStat responds with null data until the category's stat is first saved.
func (h *Handlers) GetStat(w http.ResponseWriter, r *http.Request) {
	category, err := ministrydomain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		return
	}

	stat, err := h.Ministries.GetStat(r.Context(), category)
	if err != nil {
		h.writeError(w, "ministry_stats.get", "", err)
		return
	}
	if stat == nil {
		common.WriteData(w, http.StatusOK, nil)
		return
	}
	common.WriteData(w, http.StatusOK, mapStat(*stat))
}

func (h *Handlers) SaveStat(w http.ResponseWriter, r *http.Request) {
	category, err := ministrydomain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		return
	}
	var req statRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	stat, err := h.Ministries.SaveStat(r.Context(), category, req.Data)
	if err != nil {
		h.writeError(w, "ministry_stats.save", "", err)
		return
	}
	common.WriteData(w, http.StatusOK, mapStat(*stat))
}

func mapStat(stat ministrydomain.Stat) statResponse {
	return statResponse{
		Category:  string(stat.Category),
		Data:      rawObject(stat.Data),
		UpdatedAt: stat.UpdatedAt,
	}
}
