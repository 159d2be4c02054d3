package members

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/pkg/logger"
)

const knownDepartmentID = "55555555-5555-5555-5555-555555555555"

type stubRepo struct {
	members     map[string]memberdomain.Member
	departments map[string]bool
}

func (r *stubRepo) checkDepartment(m *memberdomain.Member) error {
	if m.DepartmentID != nil && !r.departments[*m.DepartmentID] {
		return memberdomain.ErrDepartmentNotFound
	}
	return nil
}

func (r *stubRepo) ListMembers(ctx context.Context, query string) ([]memberdomain.Member, error) {
	items := make([]memberdomain.Member, 0)
	for _, m := range r.members {
		items = append(items, m)
	}
	return items, nil
}

func (r *stubRepo) GetMemberByID(ctx context.Context, id string) (*memberdomain.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, memberdomain.ErrMemberNotFound
	}
	return &m, nil
}

func (r *stubRepo) CreateMember(ctx context.Context, m *memberdomain.Member) error {
	if err := r.checkDepartment(m); err != nil {
		return err
	}
	r.members[m.ID] = *m
	return nil
}

func (r *stubRepo) UpdateMember(ctx context.Context, m *memberdomain.Member) error {
	if err := r.checkDepartment(m); err != nil {
		return err
	}
	r.members[m.ID] = *m
	return nil
}

func (r *stubRepo) DeleteMember(ctx context.Context, id string) (bool, error) {
	_, ok := r.members[id]
	delete(r.members, id)
	return ok, nil
}

func (r *stubRepo) ListChoirMembers(ctx context.Context) ([]memberdomain.Member, error) {
	return []memberdomain.Member{}, nil
}

func (r *stubRepo) UpdateChoirPart(ctx context.Context, id string, part *string) (bool, error) {
	m, ok := r.members[id]
	if !ok {
		return false, nil
	}
	m.ChoirPart = part
	r.members[id] = m
	return true, nil
}

func (r *stubRepo) SearchNonChoirMembers(ctx context.Context, query string, limit int) ([]memberdomain.Member, error) {
	return []memberdomain.Member{}, nil
}

func newRouter() (http.Handler, *stubRepo) {
	repo := &stubRepo{
		members:     make(map[string]memberdomain.Member),
		departments: map[string]bool{knownDepartmentID: true},
	}
	h := New(memberdomain.NewService(repo, "성도", logger.NewNop()), logger.NewNop())

	r := chi.NewRouter()
	r.Post("/api/members", h.CreateMember)
	r.Put("/api/members/{id}", h.UpdateMember)
	r.Delete("/api/members/{id}", h.DeleteMember)
	r.Put("/api/choir/members/{id}", h.UpdateChoirPart)
	r.Get("/api/choir/candidates", h.SearchChoirCandidates)
	return r, repo
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestMemberLifecycle(t *testing.T) {
	r, repo := newRouter()

	rec := do(r, http.MethodPost, "/api/members", `{"name":"김철수","birth_date":"1990-05-06"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data memberResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.Role != "성도" || created.Data.BirthDate == nil || *created.Data.BirthDate != "1990-05-06" {
		t.Fatalf("unexpected member: %+v", created.Data)
	}

	rec = do(r, http.MethodPut, "/api/choir/members/"+created.Data.ID, `{"choir_part":"베이스"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if part := repo.members[created.Data.ID].ChoirPart; part == nil || *part != "베이스" {
		t.Fatalf("expected choir part, got %v", part)
	}

	rec = do(r, http.MethodDelete, "/api/members/"+created.Data.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = do(r, http.MethodPut, "/api/members/"+created.Data.ID, `{"name":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateMemberValidation(t *testing.T) {
	r, _ := newRouter()

	if rec := do(r, http.MethodPost, "/api/members", `{"name":""}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if rec := do(r, http.MethodPost, "/api/members", `{"name":"a","department_id":"nope"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSearchChoirCandidatesShortQuery(t *testing.T) {
	r, _ := newRouter()

	rec := do(r, http.MethodGet, "/api/choir/candidates?q=a", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Data []memberResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data == nil || len(body.Data) != 0 {
		t.Fatalf("expected empty list, got %v", body.Data)
	}
}

func TestMemberUnknownDepartmentIsNotFound(t *testing.T) {
	r, repo := newRouter()

	rec := do(r, http.MethodPost, "/api/members", `{"name":"김철수","department_id":"12345678-1234-1234-1234-123456789012"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"department_not_found"`) {
		t.Fatalf("expected department_not_found, got %s", rec.Body.String())
	}
	if len(repo.members) != 0 {
		t.Fatalf("expected no member stored, got %d", len(repo.members))
	}

	rec = do(r, http.MethodPost, "/api/members", `{"name":"김철수","department_id":"`+knownDepartmentID+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}
