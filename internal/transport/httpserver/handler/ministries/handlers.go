package ministries

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	ministrydomain "church-office-go/internal/domain/ministry"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Ministries *ministrydomain.Service
	log        logger.Logger
}

func New(ministries *ministrydomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Ministries: ministries, log: log}
}

type ministryRequest struct {
	Category    string          `json:"category"`
	Name        *string         `json:"name" validate:"omitempty,max=100"`
	Description *string         `json:"description"`
	Count       *int            `json:"count" validate:"omitempty,min=0"`
	Location    *string         `json:"location" validate:"omitempty,max=200"`
	RoleInfo    json.RawMessage `json:"role_info"`
	Icon        *string         `json:"icon" validate:"omitempty,max=50"`
}

type ministryResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Count       int             `json:"count"`
	Location    *string         `json:"location"`
	RoleInfo    json.RawMessage `json:"role_info"`
	Icon        *string         `json:"icon"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type upsertResponse struct {
	Created  bool             `json:"created"`
	Ministry ministryResponse `json:"ministry"`
}

func (h *Handlers) ListMinistries(w http.ResponseWriter, r *http.Request) {
	category, err := ministrydomain.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		return
	}

	items, err := h.Ministries.ListMinistries(r.Context(), category)
	if err != nil {
		h.writeError(w, "ministries.list", "", err)
		return
	}

	response := make([]ministryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, mapMinistry(item))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) CreateMinistry(w http.ResponseWriter, r *http.Request) {
	var req ministryRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	category, err := ministrydomain.ParseCategory(req.Category)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		return
	}

	ministry, err := h.Ministries.CreateMinistry(r.Context(), category, req.input())
	if err != nil {
		h.writeError(w, "ministries.create", "", err)
		return
	}
	common.WriteData(w, http.StatusCreated, mapMinistry(*ministry))
}

func (h *Handlers) UpdateMinistry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req ministryRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ministry, err := h.Ministries.UpdateMinistry(r.Context(), id, req.input())
	if err != nil {
		h.writeError(w, "ministries.update", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, mapMinistry(*ministry))
}

func (h *Handlers) DeleteMinistry(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.Ministries.DeleteMinistry(r.Context(), id); err != nil {
		h.writeError(w, "ministries.delete", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

// GetGroup looks a ministry up by category and name, the way the worship
// screen addresses its choirs.
func (h *Handlers) GetGroup(w http.ResponseWriter, r *http.Request) {
	category, name, ok := groupParams(w, r)
	if !ok {
		return
	}

	ministry, err := h.Ministries.FindMinistryByName(r.Context(), category, name)
	if err != nil {
		h.writeError(w, "ministries.group_get", "", err)
		return
	}
	common.WriteData(w, http.StatusOK, mapMinistry(*ministry))
}

func (h *Handlers) SaveGroup(w http.ResponseWriter, r *http.Request) {
	category, name, ok := groupParams(w, r)
	if !ok {
		return
	}
	var req ministryRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	ministry, created, err := h.Ministries.UpsertMinistry(r.Context(), category, name, req.input())
	if err != nil {
		h.writeError(w, "ministries.group_save", "", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	common.WriteData(w, status, upsertResponse{Created: created, Ministry: mapMinistry(*ministry)})
}

func groupParams(w http.ResponseWriter, r *http.Request) (ministrydomain.Category, string, bool) {
	category, err := ministrydomain.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid category")
		return "", "", false
	}
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		// chi matched on the escaped path.
		if name, err = url.PathUnescape(name); err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid name")
			return "", "", false
		}
	}
	return category, name, true
}

func (h *Handlers) writeError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, ministrydomain.ErrMinistryNotFound):
		h.log.BusinessError(op+": ministry not found", err, "ministry_id", id)
		common.WriteError(w, http.StatusNotFound, "ministry_not_found", "ministry not found")
	case errors.Is(err, ministrydomain.ErrInvalidCategory),
		errors.Is(err, ministrydomain.ErrNameRequired),
		errors.Is(err, ministrydomain.ErrInvalidCount),
		errors.Is(err, ministrydomain.ErrInvalidRoleInfo),
		errors.Is(err, ministrydomain.ErrInvalidStatData):
		h.log.BusinessError(op+": invalid request", err, "ministry_id", id)
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "ministry_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req ministryRequest) input() ministrydomain.Input {
	return ministrydomain.Input{
		Name:        req.Name,
		Description: req.Description,
		Count:       req.Count,
		Location:    req.Location,
		RoleInfo:    req.RoleInfo,
		Icon:        req.Icon,
	}
}

func mapMinistry(ministry ministrydomain.Ministry) ministryResponse {
	return ministryResponse{
		ID:          ministry.ID,
		Category:    string(ministry.Category),
		Name:        ministry.Name,
		Description: ministry.Description,
		Count:       ministry.Count,
		Location:    ministry.Location,
		RoleInfo:    rawObject(ministry.RoleInfo),
		Icon:        ministry.Icon,
		CreatedAt:   ministry.CreatedAt,
		UpdatedAt:   ministry.UpdatedAt,
	}
}

func rawObject(value string) json.RawMessage {
	if !json.Valid([]byte(value)) {
		return json.RawMessage("{}")
	}
	return json.RawMessage(value)
}
