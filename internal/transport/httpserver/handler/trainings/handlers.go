package trainings

import (
	"errors"
	"net/http"
	"strings"
	"time"

	trainingdomain "church-office-go/internal/domain/training"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Trainings *trainingdomain.Service
	log       logger.Logger
}

func New(trainings *trainingdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Trainings: trainings, log: log}
}

type weekRequest struct {
	Week    int    `json:"week" validate:"min=1"`
	Content string `json:"content" validate:"required,max=500"`
	Note    string `json:"note" validate:"max=500"`
}

type programRequest struct {
	Term           *string       `json:"term" validate:"omitempty,max=50"`
	Period         *string       `json:"period"`
	Participants   *string       `json:"participants"`
	Curriculum     []weekRequest `json:"curriculum" validate:"omitempty,dive"`
	CompletionRate *string       `json:"completion_rate"`
	Testimony      *string       `json:"testimony"`
	Note           *string       `json:"note"`
}

type weekResponse struct {
	Week    int    `json:"week"`
	Content string `json:"content"`
	Note    string `json:"note"`
}

type programResponse struct {
	ID             string         `json:"id"`
	Term           string         `json:"term"`
	Period         *string        `json:"period"`
	Participants   *string        `json:"participants"`
	Curriculum     []weekResponse `json:"curriculum"`
	CompletionRate *string        `json:"completion_rate"`
	Testimony      *string        `json:"testimony"`
	Note           *string        `json:"note"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (h *Handlers) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.Trainings.ListPrograms(r.Context())
	if err != nil {
		h.log.InternalError("training_programs.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]programResponse, 0, len(programs))
	for _, program := range programs {
		response = append(response, mapProgram(program))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	program, err := h.Trainings.CreateProgram(r.Context(), req.input())
	if err != nil {
		h.writeError(w, "training_programs.create", "", err)
		return
	}
	common.WriteData(w, http.StatusCreated, mapProgram(*program))
}

func (h *Handlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req programRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	program, err := h.Trainings.UpdateProgram(r.Context(), id, req.input())
	if err != nil {
		h.writeError(w, "training_programs.update", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, mapProgram(*program))
}

func (h *Handlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.Trainings.DeleteProgram(r.Context(), id); err != nil {
		h.writeError(w, "training_programs.delete", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

func (h *Handlers) writeError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, trainingdomain.ErrProgramNotFound):
		h.log.BusinessError(op+": program not found", err, "program_id", id)
		common.WriteError(w, http.StatusNotFound, "program_not_found", "training program not found")
	case errors.Is(err, trainingdomain.ErrTermRequired),
		errors.Is(err, trainingdomain.ErrInvalidWeek),
		errors.Is(err, trainingdomain.ErrDuplicateWeek),
		errors.Is(err, trainingdomain.ErrContentRequired):
		h.log.BusinessError(op+": invalid request", err, "program_id", id)
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "program_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req programRequest) input() trainingdomain.Input {
	input := trainingdomain.Input{
		Term:           req.Term,
		Period:         req.Period,
		Participants:   req.Participants,
		CompletionRate: req.CompletionRate,
		Testimony:      req.Testimony,
		Note:           req.Note,
	}
	if req.Curriculum != nil {
		input.Curriculum = make([]trainingdomain.CurriculumWeek, 0, len(req.Curriculum))
		for _, week := range req.Curriculum {
			input.Curriculum = append(input.Curriculum, trainingdomain.CurriculumWeek{
				Week:    week.Week,
				Content: week.Content,
				Note:    week.Note,
			})
		}
	}
	return input
}

func mapProgram(program trainingdomain.Program) programResponse {
	weeks := make([]weekResponse, 0, len(program.Curriculum))
	for _, week := range program.Curriculum {
		weeks = append(weeks, weekResponse{Week: week.Week, Content: week.Content, Note: week.Note})
	}
	return programResponse{
		ID:             program.ID,
		Term:           program.Term,
		Period:         program.Period,
		Participants:   program.Participants,
		Curriculum:     weeks,
		CompletionRate: program.CompletionRate,
		Testimony:      program.Testimony,
		Note:           program.Note,
		CreatedAt:      program.CreatedAt,
		UpdatedAt:      program.UpdatedAt,
	}
}
