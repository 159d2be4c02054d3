package members

import (
	"errors"
	"net/http"
	"strings"
	"time"

	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type memberRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	Role         string  `json:"role" validate:"max=50"`
	District     *string `json:"district"`
	BirthDate    string  `json:"birth_date"`
	Gender       *string `json:"gender"`
	Address      *string `json:"address"`
	ChoirPart    *string `json:"choir_part"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
}

type memberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone"`
	Role         string    `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
	District     *string   `json:"district"`
	BirthDate    *string   `json:"birth_date"`
	Gender       *string   `json:"gender"`
	Address      *string   `json:"address"`
	ChoirPart    *string   `json:"choir_part"`
	DepartmentID *string   `json:"department_id"`
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Members.ListMembers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.log.InternalError("members.list: list failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, mapMembers(members))
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	member, err := h.Members.CreateMember(r.Context(), req.input())
	if err != nil {
		h.writeMemberError(w, "members.create", "", err)
		return
	}
	common.WriteData(w, http.StatusCreated, mapMember(*member))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	var req memberRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	member, err := h.Members.UpdateMember(r.Context(), id, req.input())
	if err != nil {
		h.writeMemberError(w, "members.update", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, mapMember(*member))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.Members.DeleteMember(r.Context(), id); err != nil {
		h.writeMemberError(w, "members.delete", id, err)
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

func (h *Handlers) writeMemberError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, memberdomain.ErrMemberNotFound):
		h.log.BusinessError(op+": member not found", err, "member_id", id)
		common.WriteError(w, http.StatusNotFound, "member_not_found", "member not found")
	case errors.Is(err, memberdomain.ErrDepartmentNotFound):
		h.log.BusinessError(op+": department not found", err, "member_id", id)
		common.WriteError(w, http.StatusNotFound, "department_not_found", "department not found")
	case errors.Is(err, memberdomain.ErrNameRequired):
		h.log.BusinessError(op+": invalid request", err, "member_id", id)
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.log.InternalError(op+": failed", err, "member_id", id)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (req memberRequest) input() memberdomain.MemberInput {
	return memberdomain.MemberInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		District:     req.District,
		BirthDate:    req.BirthDate,
		Gender:       req.Gender,
		Address:      req.Address,
		ChoirPart:    req.ChoirPart,
		DepartmentID: req.DepartmentID,
	}
}

func mapMembers(members []memberdomain.Member) []memberResponse {
	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, mapMember(member))
	}
	return response
}

func mapMember(member memberdomain.Member) memberResponse {
	return memberResponse{
		ID:           member.ID,
		Name:         member.Name,
		Phone:        member.Phone,
		Role:         member.Role,
		RegisteredAt: member.RegisteredAt,
		District:     member.District,
		BirthDate:    common.FormatDate(member.BirthDate),
		Gender:       member.Gender,
		Address:      member.Address,
		ChoirPart:    member.ChoirPart,
		DepartmentID: member.DepartmentID,
	}
}
