package departments

import (
	"errors"
	"net/http"
	"strings"

	departmentdomain "church-office-go/internal/domain/department"
	"church-office-go/internal/transport/httpserver/handler/common"
	"church-office-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Departments *departmentdomain.Service
	log         logger.Logger
}

func New(departments *departmentdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{Departments: departments, log: log}
}

type createDepartmentRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
}

type departmentNodeResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	ParentID    *string                  `json:"parent_id"`
	MemberCount int64                    `json:"member_count"`
	Children    []departmentNodeResponse `json:"children"`
}

type departmentResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id"`
}

func (h *Handlers) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Departments.Tree(r.Context())
	if err != nil {
		h.log.InternalError("departments.tree: build failed", err)
		common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	common.WriteData(w, http.StatusOK, mapNodes(tree))
}

func (h *Handlers) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req createDepartmentRequest
	if err := common.DecodeAndValidate(r, &req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	department, err := h.Departments.CreateDepartment(r.Context(), departmentdomain.CreateInput{
		Name:     req.Name,
		ParentID: req.ParentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, departmentdomain.ErrParentNotFound):
			h.log.BusinessError("departments.create: parent not found", err)
			common.WriteError(w, http.StatusNotFound, "parent_not_found", "parent department not found")
		case errors.Is(err, departmentdomain.ErrNameRequired):
			h.log.BusinessError("departments.create: invalid request", err)
			common.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		default:
			h.log.InternalError("departments.create: create failed", err)
			common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	common.WriteData(w, http.StatusCreated, departmentResponse{
		ID:       department.ID,
		Name:     department.Name,
		ParentID: department.ParentID,
	})
}

func (h *Handlers) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if err := h.Departments.DeleteDepartment(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, departmentdomain.ErrDepartmentHasChildren):
			h.log.BusinessError("departments.delete: has children", err, "department_id", id)
			common.WriteError(w, http.StatusConflict, "department_has_children", "하위 부서가 있어 삭제할 수 없습니다.")
		case errors.Is(err, departmentdomain.ErrDepartmentNotFound):
			h.log.BusinessError("departments.delete: department not found", err, "department_id", id)
			common.WriteError(w, http.StatusNotFound, "department_not_found", "department not found")
		default:
			h.log.InternalError("departments.delete: delete failed", err, "department_id", id)
			common.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}
	common.WriteData(w, http.StatusOK, nil)
}

func mapNodes(nodes []departmentdomain.Node) []departmentNodeResponse {
	response := make([]departmentNodeResponse, 0, len(nodes))
	for _, node := range nodes {
		response = append(response, departmentNodeResponse{
			ID:          node.ID,
			Name:        node.Name,
			ParentID:    node.ParentID,
			MemberCount: node.MemberCount,
			Children:    mapNodes(node.Children),
		})
	}
	return response
}
