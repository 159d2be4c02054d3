package newcomers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	newcomerdomain "church-office-go/internal/domain/newcomer"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Newcomers *newcomerdomain.Service
	log       logger.Logger
}

func New(newcomers *newcomerdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Newcomers: newcomers, log: log}
}

type upsertNewcomerRequest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name" validate:"required,max=100"`
	Phone          *string `json:"phone" validate:"omitempty,max=30"`
	RegisteredDate string  `json:"registered_date" validate:"required,datetime=2006-01-02"`
	Introducer     *string `json:"introducer" validate:"omitempty,max=100"`
	Description    *string `json:"description"`
}

type newcomerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          *string   `json:"phone"`
	RegisteredDate string    `json:"registered_date"`
	Introducer     *string   `json:"introducer"`
	Description    *string   `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type upsertNewcomerResponse struct {
	Newcomer         newcomerResponse `json:"newcomer"`
	Created          bool             `json:"created"`
	PromotedMemberID *string          `json:"promoted_member_id"`
}

func (h *Handlers) ListNewcomers(w http.ResponseWriter, r *http.Request) {
	newcomers, err := h.Newcomers.ListNewcomers(r.Context())
	if err != nil {
		h.log.InternalError("newcomers.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]newcomerResponse, 0, len(newcomers))
	for _, newcomer := range newcomers {
		response = append(response, mapNewcomer(newcomer))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) UpsertNewcomer(w http.ResponseWriter, r *http.Request) {
	var req upsertNewcomerRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.Newcomers.UpsertNewcomer(r.Context(), newcomerdomain.UpsertInput{
		ID:             req.ID,
		Name:           req.Name,
		Phone:          req.Phone,
		RegisteredDate: req.RegisteredDate,
		Introducer:     req.Introducer,
		Description:    req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, newcomerdomain.ErrNewcomerNotFound):
			h.log.BusinessError("newcomers.upsert: newcomer not found", err, "newcomer_id", req.ID)
			common.WriteError(w, http.StatusNotFound, "newcomer_not_found", "newcomer not found")
		case errors.Is(err, newcomerdomain.ErrNameRequired), errors.Is(err, newcomerdomain.ErrInvalidRegisteredDate):
			h.log.BusinessError("newcomers.upsert: invalid request", err)
			common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("newcomers.upsert: save failed", err, "newcomer_id", req.ID)
			common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	response := upsertNewcomerResponse{
		Newcomer: mapNewcomer(result.Newcomer),
		Created:  result.Created,
	}
	if result.Promoted != nil {
		response.PromotedMemberID = &result.Promoted.ID
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	common.WriteData(w, status, response)
}

func (h *Handlers) DeleteNewcomer(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	if err := h.Newcomers.DeleteNewcomer(r.Context(), id); err != nil {
		if errors.Is(err, newcomerdomain.ErrNewcomerNotFound) {
			h.log.BusinessError("newcomers.delete: newcomer not found", err, "newcomer_id", id)
			common.WriteError(w, http.StatusNotFound, "newcomer_not_found", "newcomer not found")
			return
		}
		h.log.InternalError("newcomers.delete: delete failed", err, "newcomer_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	common.WriteData(w, http.StatusOK, nil)
}

func mapNewcomer(newcomer newcomerdomain.Newcomer) newcomerResponse {
	return newcomerResponse{
		ID:             newcomer.ID,
		Name:           newcomer.Name,
		Phone:          newcomer.Phone,
		RegisteredDate: newcomer.RegisteredDate,
		Introducer:     newcomer.Introducer,
		Description:    newcomer.Description,
		CreatedAt:      newcomer.CreatedAt,
		UpdatedAt:      newcomer.UpdatedAt,
	}
}
