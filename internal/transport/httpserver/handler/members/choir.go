package members

import (
	"errors"
	"net/http"
	"strings"

	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type choirPartRequest struct {
	// Null or blank removes the member from the choir.
	ChoirPart *string `json:"choir_part" validate:"omitempty,max=30"`
}

func (h *Handlers) ListChoirMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.ListChoirMembers(r.Context())
	if err != nil {
		h.log.InternalError("choir.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, mapMembers(members))
}

func (h *Handlers) SearchChoirCandidates(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.SearchNonChoirMembers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.InternalError("choir.candidates: search failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, mapMembers(members))
}

func (h *Handlers) UpdateChoirPart(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req choirPartRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Members.UpdateChoirPart(r.Context(), id, req.ChoirPart); err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			h.log.BusinessError("choir.update: member not found", err, "member_id", id)
			common.WriteError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("choir.update: update failed", err, "member_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}
