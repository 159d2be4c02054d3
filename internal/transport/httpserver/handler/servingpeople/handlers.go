package servingpeople

import (
	"errors"
	"net/http"
	"strings"

	servingdomain "church-office-go/internal/domain/servingpeople"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	People *servingdomain.Service
	seeds  []servingdomain.Seed
	log    logger.Logger
}

func New(people *servingdomain.Service, seeds []servingdomain.Seed, log logger.Logger) *Handlers {
	return &Handlers{People: people, seeds: seeds, log: log}
}

type personRequest struct {
	Category    *string `json:"category"`
	Role        *string `json:"role" validate:"omitempty,max=50"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
	SortOrder   *int    `json:"sort_order"`
}

type personResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Role        string  `json:"role"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	SortOrder   int     `json:"sort_order"`
}

type seedResponse struct {
	Created int `json:"created"`
}

func (h *Handlers) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.People.ListPeople(r.Context())
	if err != nil {
		h.log.InternalError("serving_people.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]personResponse, 0, len(people))
	for _, person := range people {
		response = append(response, mapPerson(person))
	}
	common.WriteData(w, http.StatusOK, response)
}

func (h *Handlers) SeedPeople(w http.ResponseWriter, r *http.Request) {
	created, err := h.People.SeedPeople(r.Context(), h.seeds)
	if err != nil {
		h.log.InternalError("serving_people.seed: seed failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, seedResponse{Created: created})
}

func (h *Handlers) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	person, err := h.People.CreatePerson(r.Context(), req.input())
	if err != nil {
		h.writeError(w, "serving_people.create", "", err)
		return
	}
	common.WriteData(w, http.StatusCreated, mapPerson(*person))
}

func (h *Handlers) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req personRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	person, err := h.People.UpdatePerson(r.Context(), id, req.input())
	if err != nil {
		h.writeError(w, "serving_people.update", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, mapPerson(*person))
}

func (h *Handlers) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.People.DeletePerson(r.Context(), id); err != nil {
		h.writeError(w, "serving_people.delete", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

func (h *Handlers) writeError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, servingdomain.ErrPersonNotFound):
		h.log.BusinessError(op+": person not found", err, "person_id", id)
		common.WriteError(w, http.StatusNotFound, "person_not_found", "serving person not found")
	case errors.Is(err, servingdomain.ErrInvalidCategory),
		errors.Is(err, servingdomain.ErrRoleRequired),
		errors.Is(err, servingdomain.ErrNameRequired),
		errors.Is(err, servingdomain.ErrInvalidImageURL):
		h.log.BusinessError(op+": invalid request", err, "person_id", id)
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "person_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req personRequest) input() servingdomain.Input {
	return servingdomain.Input{
		Category:    req.Category,
		Role:        req.Role,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}
}

func mapPerson(person servingdomain.Person) personResponse {
	return personResponse{
		ID:          person.ID,
		Category:    string(person.Category),
		Role:        person.Role,
		Name:        person.Name,
		Description: person.Description,
		ImageURL:    person.ImageURL,
		SortOrder:   person.SortOrder,
	}
}
