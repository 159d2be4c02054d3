package cellleaders

import (
	"errors"
	"net/http"
	"strings"
	"time"

	cellleaderdomain "church-office-go/internal/domain/cellleader"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	CellLeaders *cellleaderdomain.Service
	log         logger.Logger
}

func New(cellLeaders *cellleaderdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{CellLeaders: cellLeaders, log: log}
}

type cellLeaderRequest struct {
	Name          string  `json:"name" validate:"required,max=100"`
	District      *string `json:"district"`
	CellName      *string `json:"cell_name"`
	Region        *string `json:"region"`
	Phone         *string `json:"phone" validate:"omitempty,max=30"`
	AppointedDate string  `json:"appointed_date" validate:"omitempty,datetime=2006-01-02"`
}

type cellLeaderResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	District      *string   `json:"district"`
	CellName      *string   `json:"cell_name"`
	Region        *string   `json:"region"`
	Phone         *string   `json:"phone"`
	AppointedDate *string   `json:"appointed_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *Handlers) ListCellLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.CellLeaders.ListCellLeaders(r.Context())
	if err != nil {
		h.log.InternalError("cell_leaders.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]cellLeaderResponse, 0, len(leaders))
	for _, leader := range leaders {
		response = append(response, mapCellLeader(leader))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) CreateCellLeader(w http.ResponseWriter, r *http.Request) {
	var req cellLeaderRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	leader, err := h.CellLeaders.CreateCellLeader(r.Context(), req.input())
	if err != nil {
		h.writeError(w, "cell_leaders.create", "", err)
		return
	}
	common.WriteData(w, http.StatusCreated, mapCellLeader(*leader))
}

func (h *Handlers) UpdateCellLeader(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req cellLeaderRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	leader, err := h.CellLeaders.UpdateCellLeader(r.Context(), id, req.input())
	if err != nil {
		h.writeError(w, "cell_leaders.update", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, mapCellLeader(*leader))
}

func (h *Handlers) DeleteCellLeader(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.CellLeaders.DeleteCellLeader(r.Context(), id); err != nil {
		h.writeError(w, "cell_leaders.delete", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

func (h *Handlers) writeError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, cellleaderdomain.ErrCellLeaderNotFound):
		h.log.BusinessError(op+": cell leader not found", err, "cell_leader_id", id)
		common.WriteError(w, http.StatusNotFound, "cell_leader_not_found", "cell leader not found")
	case errors.Is(err, cellleaderdomain.ErrNameRequired), errors.Is(err, cellleaderdomain.ErrInvalidAppointedDate):
		h.log.BusinessError(op+": invalid request", err, "cell_leader_id", id)
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "cell_leader_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req cellLeaderRequest) input() cellleaderdomain.Input {
	return cellleaderdomain.Input{
		Name:          req.Name,
		District:      req.District,
		CellName:      req.CellName,
		Region:        req.Region,
		Phone:         req.Phone,
		AppointedDate: req.AppointedDate,
	}
}

func mapCellLeader(leader cellleaderdomain.CellLeader) cellLeaderResponse {
	return cellLeaderResponse{
		ID:            leader.ID,
		Name:          leader.Name,
		District:      leader.District,
		CellName:      leader.CellName,
		Region:        leader.Region,
		Phone:         leader.Phone,
		AppointedDate: common.FormatDate(leader.AppointedDate),
		CreatedAt:     leader.CreatedAt,
	}
}
