package reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/pkg/logger"
)

const facilityID = "11111111-1111-1111-1111-111111111111"

type stubRepo struct {
	facilities   []reservationdomain.Facility
	reservations []reservationdomain.Reservation
}

func (r *stubRepo) Transaction(ctx context.Context, fn func(reservationdomain.Repository) error) error {
	return fn(r)
}

func (r *stubRepo) Lock(ctx context.Context, key string) error { return nil }

func (r *stubRepo) ListFacilities(ctx context.Context) ([]reservationdomain.Facility, error) {
	return r.facilities, nil
}

func (r *stubRepo) CountFacilities(ctx context.Context) (int64, error) {
	return int64(len(r.facilities)), nil
}

func (r *stubRepo) GetFacilityByID(ctx context.Context, id string) (*reservationdomain.Facility, error) {
	for _, f := range r.facilities {
		if f.ID == id {
			found := f
			return &found, nil
		}
	}
	return nil, reservationdomain.ErrFacilityNotFound
}

func (r *stubRepo) CreateFacility(ctx context.Context, facility *reservationdomain.Facility) error {
	r.facilities = append(r.facilities, *facility)
	return nil
}

func (r *stubRepo) FindBlockingReservation(ctx context.Context, id string, start, end time.Time) (*reservationdomain.Reservation, error) {
	for _, existing := range r.reservations {
		if existing.FacilityID == id && existing.Status.Blocking() && existing.StartTime.Before(end) && existing.EndTime.After(start) {
			found := existing
			return &found, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) CreateReservation(ctx context.Context, reservation *reservationdomain.Reservation) error {
	r.reservations = append(r.reservations, *reservation)
	return nil
}

func (r *stubRepo) ListReservations(ctx context.Context, filter reservationdomain.ListFilter) ([]reservationdomain.Reservation, error) {
	return r.reservations, nil
}

func newTestHandlers() (*Handlers, *stubRepo) {
	repo := &stubRepo{facilities: []reservationdomain.Facility{{ID: facilityID, Name: "비전홀"}}}
	svc := reservationdomain.NewService(repo, nil, nil, logger.NewNop(), reservationdomain.Config{})
	seeds := []reservationdomain.FacilitySeed{{Name: "식당", Location: "비전센터 B1", Capacity: 150}}
	return New(svc, seeds, time.UTC, logger.NewNop()), repo
}

func postReservation(h *Handlers, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateReservation(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestCreateReservationCreatedThenConflict(t *testing.T) {
	h, repo := newTestHandlers()

	rec := postReservation(h, `{"facility_id":"`+facilityID+`","start_time":"2026-05-10T10:00:00Z","end_time":"2026-05-10T11:00:00Z","purpose":"기도회"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	if data["status"] != "APPROVED" {
		t.Fatalf("expected APPROVED, got %v", data["status"])
	}

	rec = postReservation(h, `{"facility_id":"`+facilityID+`","start_time":"2026-05-10T10:30:00Z","end_time":"2026-05-10T11:30:00Z"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	body = decodeBody(t, rec)
	if body["error"] != conflictMessage || body["code"] != "reservation_conflict" {
		t.Fatalf("unexpected conflict body: %v", body)
	}
	if len(repo.reservations) != 1 {
		t.Fatalf("expected 1 reservation, got %d", len(repo.reservations))
	}
}

func TestCreateReservationBadRequests(t *testing.T) {
	h, _ := newTestHandlers()

	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"reversed", `{"facility_id":"` + facilityID + `","start_time":"2026-05-10T11:00:00Z","end_time":"2026-05-10T10:00:00Z"}`, http.StatusBadRequest},
		{"missing facility", `{"start_time":"2026-05-10T10:00:00Z","end_time":"2026-05-10T11:00:00Z"}`, http.StatusBadRequest},
		{"unknown facility", `{"facility_id":"22222222-2222-2222-2222-222222222222","start_time":"2026-05-10T10:00:00Z","end_time":"2026-05-10T11:00:00Z"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postReservation(h, tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestListReservationsRejectsBadFilters(t *testing.T) {
	h, _ := newTestHandlers()

	for _, target := range []string{"/api/reservations?from=2026-13-01", "/api/reservations?facility_id=x", "/api/reservations?status=CANCELLED"} {
		rec := httptest.NewRecorder()
		h.ListReservations(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.ListReservations(rec, httptest.NewRequest(http.MethodGet, "/api/reservations?from=2026-05-01&status=approved", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSeedFacilitiesSkipsWhenPresent(t *testing.T) {
	h, repo := newTestHandlers()

	rec := httptest.NewRecorder()
	h.SeedFacilities(rec, httptest.NewRequest(http.MethodPost, "/api/facilities/seed", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]any)
	if data["created"].(float64) != 0 || len(repo.facilities) != 1 {
		t.Fatalf("expected no seeding, got %v", data)
	}
}
