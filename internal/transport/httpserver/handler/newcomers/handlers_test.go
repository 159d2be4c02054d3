package newcomers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	memberdomain "church-office-go/internal/domain/member"
	newcomerdomain "church-office-go/internal/domain/newcomer"
	"church-office-go/pkg/logger"
)

type stubRepo struct {
	newcomers map[string]newcomerdomain.Newcomer
	members   []memberdomain.Member
}

func (r *stubRepo) Transaction(ctx context.Context, fn func(newcomerdomain.Repository) error) error {
	return fn(r)
}

func (r *stubRepo) ListNewcomers(ctx context.Context) ([]newcomerdomain.Newcomer, error) {
	items := make([]newcomerdomain.Newcomer, 0, len(r.newcomers))
	for _, n := range r.newcomers {
		items = append(items, n)
	}
	return items, nil
}

func (r *stubRepo) GetNewcomerByID(ctx context.Context, id string) (*newcomerdomain.Newcomer, error) {
	n, ok := r.newcomers[id]
	if !ok {
		return nil, newcomerdomain.ErrNewcomerNotFound
	}
	return &n, nil
}

func (r *stubRepo) CreateNewcomer(ctx context.Context, n *newcomerdomain.Newcomer) error {
	r.newcomers[n.ID] = *n
	return nil
}

func (r *stubRepo) UpdateNewcomer(ctx context.Context, n *newcomerdomain.Newcomer) (bool, error) {
	r.newcomers[n.ID] = *n
	return true, nil
}

func (r *stubRepo) DeleteNewcomer(ctx context.Context, id string) (bool, error) {
	if _, ok := r.newcomers[id]; !ok {
		return false, nil
	}
	delete(r.newcomers, id)
	return true, nil
}

func (r *stubRepo) LockMemberIdentity(ctx context.Context, name string, phone *string) error {
	return nil
}

func (r *stubRepo) FindMemberByIdentity(ctx context.Context, name string, phone *string) (*memberdomain.Member, error) {
	return nil, memberdomain.ErrMemberNotFound
}

func (r *stubRepo) CreateMember(ctx context.Context, m *memberdomain.Member) error {
	r.members = append(r.members, *m)
	return nil
}

func newTestHandlers() (*Handlers, *stubRepo) {
	repo := &stubRepo{newcomers: make(map[string]newcomerdomain.Newcomer)}
	svc := newcomerdomain.NewService(repo, "새가족", nil, logger.NewNop())
	return New(svc, logger.NewNop()), repo
}

func upsert(h *Handlers, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.UpsertNewcomer(rec, httptest.NewRequest(http.MethodPost, "/api/newcomers", strings.NewReader(body)))
	return rec
}

func TestUpsertNewcomerCreateThenUpdate(t *testing.T) {
	h, repo := newTestHandlers()

	rec := upsert(h, `{"name":"Lee","phone":"010-9999-0000","registered_date":"2026-02-01","introducer":"Park"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data upsertNewcomerResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.PromotedMemberID == nil || len(repo.members) != 1 {
		t.Fatalf("expected promotion, got %+v", created.Data)
	}

	rec = upsert(h, `{"id":"`+created.Data.Newcomer.ID+`","name":"Lee2","registered_date":"2026-03-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(repo.members) != 1 {
		t.Fatalf("expected no promotion on update, got %d members", len(repo.members))
	}
}

func TestUpsertNewcomerValidation(t *testing.T) {
	h, _ := newTestHandlers()

	for _, body := range []string{
		`{"registered_date":"2026-02-01"}`,
		`{"name":"Kim","registered_date":"02/01/2026"}`,
		`{"name":"Kim","registered_date":"2026-02-01","unknown":true}`,
	} {
		if rec := upsert(h, body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestDeleteNewcomer(t *testing.T) {
	h, repo := newTestHandlers()
	repo.newcomers["6f1c4f5e-8f7e-4b39-9a55-1f0e0b7d3a11"] = newcomerdomain.Newcomer{ID: "6f1c4f5e-8f7e-4b39-9a55-1f0e0b7d3a11"}

	r := chi.NewRouter()
	r.Delete("/api/newcomers/{id}", h.DeleteNewcomer)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/newcomers/6f1c4f5e-8f7e-4b39-9a55-1f0e0b7d3a11", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("expected success envelope, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/newcomers/6f1c4f5e-8f7e-4b39-9a55-1f0e0b7d3a11", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
