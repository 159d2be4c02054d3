package reservation

import (
	"context"
	"time"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// Lock takes a transaction-scoped advisory lock on key.
	Lock(ctx context.Context, key string) error
	ListFacilities(ctx context.Context) ([]Facility, error)
	CountFacilities(ctx context.Context) (int64, error)
	GetFacilityByID(ctx context.Context, id string) (*Facility, error)
	CreateFacility(ctx context.Context, facility *Facility) error
	// FindBlockingReservation returns nil when no non-rejected reservation of
	// the facility overlaps [start, end).
	FindBlockingReservation(ctx context.Context, facilityID string, start, end time.Time) (*Reservation, error)
	CreateReservation(ctx context.Context, reservation *Reservation) error
	ListReservations(ctx context.Context, filter ListFilter) ([]Reservation, error)
}

type FacilityCache interface {
	GetFacilities(ctx context.Context) ([]Facility, bool)
	SetFacilities(ctx context.Context, facilities []Facility, ttl time.Duration)
	Clear(ctx context.Context)
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type noopFacilityCache struct{}

func (noopFacilityCache) GetFacilities(context.Context) ([]Facility, bool) { return nil, false }

func (noopFacilityCache) SetFacilities(context.Context, []Facility, time.Duration) {}

func (noopFacilityCache) Clear(context.Context) {}

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, string, any) error { return nil }
