package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"church-office-go/pkg/logger"
	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Config struct {
	// Location decides where "today" starts for the default listing window.
	Location         *time.Location
	FacilityCacheTTL time.Duration
}

type Service struct {
	repo     Repository
	cache    FacilityCache
	cacheTTL time.Duration
	pub      Publisher
	log      logger.Logger
	loc      *time.Location
	now      func() time.Time
}

func NewService(repo Repository, cache FacilityCache, pub Publisher, log logger.Logger, cfg Config) *Service {
	if cache == nil {
		cache = noopFacilityCache{}
	}
	if pub == nil {
		pub = noopPublisher{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		cacheTTL: cfg.FacilityCacheTTL,
		pub:      pub,
		log:      log,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *Service) ListFacilities(ctx context.Context) ([]Facility, error) {
	if cached, ok := s.cache.GetFacilities(ctx); ok {
		return cached, nil
	}
	facilities, err := s.repo.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetFacilities(ctx, facilities, s.cacheTTL)
	return facilities, nil
}

// SeedFacilities inserts seeds only into an empty facility table and returns
// how many rows it created.
func (s *Service) SeedFacilities(ctx context.Context, seeds []FacilitySeed) (int, error) {
	created := 0
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Lock(ctx, facilitySeedLockKey); err != nil {
			return err
		}
		count, err := tx.CountFacilities(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, seed := range seeds {
			name := strings.TrimSpace(seed.Name)
			if name == "" {
				continue
			}
			facility := Facility{
				ID:       uuid.NewString(),
				Name:     name,
				Location: strings.TrimSpace(seed.Location),
				Capacity: seed.Capacity,
			}
			if err := tx.CreateFacility(ctx, &facility); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		s.cache.Clear(ctx)
		s.log.Info("facilities: seeded", "count", created)
	}
	return created, nil
}

func (s *Service) ListReservations(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	if filter.From.IsZero() {
		filter.From = s.startOfToday()
	}
	filter.FacilityID = strings.TrimSpace(filter.FacilityID)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}
	return s.repo.ListReservations(ctx, filter)
}

// CreateReservation books a facility. The overlap check and the insert run
// in one transaction holding the facility lock, so two concurrent requests
// for the same slot cannot both succeed.
func (s *Service) CreateReservation(ctx context.Context, input CreateReservationInput) (*Reservation, error) {
	facilityID := strings.TrimSpace(input.FacilityID)
	if facilityID == "" {
		return nil, ErrFacilityRequired
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() || !input.StartTime.Before(input.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	reservation := Reservation{
		ID:         uuid.NewString(),
		FacilityID: facilityID,
		MemberID:   sanitize.OptionalPlain(input.MemberID),
		StartTime:  input.StartTime.UTC(),
		EndTime:    input.EndTime.UTC(),
		Purpose:    sanitize.Text(input.Purpose),
		Status:     StatusApproved,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Lock(ctx, facilityLockKey(facilityID)); err != nil {
			return err
		}
		if _, err := tx.GetFacilityByID(ctx, facilityID); err != nil {
			return err
		}

		existing, err := tx.FindBlockingReservation(ctx, facilityID, reservation.StartTime, reservation.EndTime)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", ErrReservationConflict, existing.ID)
		}

		return tx.CreateReservation(ctx, &reservation)
	})
	if err != nil {
		return nil, err
	}

	event := createdEvent{
		ReservationID: reservation.ID,
		FacilityID:    reservation.FacilityID,
		MemberID:      reservation.MemberID,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		Status:        reservation.Status,
	}
	if err := s.pub.PublishJSON(ctx, EventReservationCreated, event); err != nil {
		s.log.Warn("reservations.create: publish failed", "reservation_id", reservation.ID, "err", err)
	}

	return &reservation, nil
}

func (s *Service) startOfToday() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}
