package reservation

import (
	"context"
	"errors"
	"time"

	reservationdomain "church-office-go/internal/domain/reservation"
	"church-office-go/internal/repository/postgres/pgerr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(reservationdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Lock(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).
		Error
}

func (r *PostgresRepository) ListFacilities(ctx context.Context) ([]reservationdomain.Facility, error) {
	var facilities []reservationdomain.Facility
	if err := r.db.WithContext(ctx).Order("name asc").Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *PostgresRepository) CountFacilities(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&reservationdomain.Facility{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) GetFacilityByID(ctx context.Context, id string) (*reservationdomain.Facility, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, reservationdomain.ErrFacilityNotFound
	}
	var facility reservationdomain.Facility
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&facility).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reservationdomain.ErrFacilityNotFound
		}
		return nil, err
	}
	return &facility, nil
}

func (r *PostgresRepository) CreateFacility(ctx context.Context, facility *reservationdomain.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

func (r *PostgresRepository) FindBlockingReservation(ctx context.Context, facilityID string, start, end time.Time) (*reservationdomain.Reservation, error) {
	var found []reservationdomain.Reservation
	err := r.db.WithContext(ctx).
		Where("facility_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			facilityID, string(reservationdomain.StatusRejected), end, start).
		Order("start_time asc").
		Limit(1).
		Find(&found).Error
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *PostgresRepository) CreateReservation(ctx context.Context, reservation *reservationdomain.Reservation) error {
	if reservation.MemberID != nil {
		if _, err := uuid.Parse(*reservation.MemberID); err != nil {
			return reservationdomain.ErrMemberNotFound
		}
	}
	err := r.db.WithContext(ctx).Omit("Facility", "Member").Create(reservation).Error
	switch {
	case err == nil:
		return nil
	case pgerr.Is(err, pgerr.ExclusionViolation):
		return reservationdomain.ErrReservationConflict
	case pgerr.Is(err, pgerr.ForeignKeyViolation):
		if pgerr.Constraint(err) == memberForeignKey {
			return reservationdomain.ErrMemberNotFound
		}
		return reservationdomain.ErrFacilityNotFound
	default:
		return err
	}
}

func (r *PostgresRepository) ListReservations(ctx context.Context, filter reservationdomain.ListFilter) ([]reservationdomain.Reservation, error) {
	query := r.db.WithContext(ctx).
		Preload("Facility").
		Preload("Member").
		Where("start_time >= ?", filter.From)
	if filter.FacilityID != "" {
		query = query.Where("facility_id = ?", filter.FacilityID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var reservations []reservationdomain.Reservation
	if err := query.Order("start_time asc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

const memberForeignKey = "reservations_member_id_fkey"
