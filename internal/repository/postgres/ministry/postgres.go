package ministry

import (
	"context"
	"errors"

	ministrydomain "church-office-go/internal/domain/ministry"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(ministrydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Lock(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).
		Error
}

func (r *PostgresRepository) ListMinistries(ctx context.Context, category ministrydomain.Category) ([]ministrydomain.Ministry, error) {
	var ministries []ministrydomain.Ministry
	err := r.db.WithContext(ctx).
		Where("category = ?", string(category)).
		Order("created_at asc").
		Find(&ministries).Error
	if err != nil {
		return nil, err
	}
	return ministries, nil
}

func (r *PostgresRepository) GetMinistryByID(ctx context.Context, id string) (*ministrydomain.Ministry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ministrydomain.ErrMinistryNotFound
	}
	var ministry ministrydomain.Ministry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ministry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ministrydomain.ErrMinistryNotFound
		}
		return nil, err
	}
	return &ministry, nil
}

func (r *PostgresRepository) FindMinistryByName(ctx context.Context, category ministrydomain.Category, name string) (*ministrydomain.Ministry, error) {
	var ministry ministrydomain.Ministry
	err := r.db.WithContext(ctx).
		Where("category = ? AND name = ?", string(category), name).
		Order("created_at asc").
		Take(&ministry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ministrydomain.ErrMinistryNotFound
		}
		return nil, err
	}
	return &ministry, nil
}

func (r *PostgresRepository) CreateMinistry(ctx context.Context, ministry *ministrydomain.Ministry) error {
	return r.db.WithContext(ctx).Create(ministry).Error
}

func (r *PostgresRepository) UpdateMinistry(ctx context.Context, ministry *ministrydomain.Ministry) error {
	return r.db.WithContext(ctx).Save(ministry).Error
}

func (r *PostgresRepository) DeleteMinistry(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ministrydomain.Ministry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) GetStat(ctx context.Context, category ministrydomain.Category) (*ministrydomain.Stat, error) {
	var stat ministrydomain.Stat
	if err := r.db.WithContext(ctx).Where("category = ?", string(category)).Take(&stat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ministrydomain.ErrStatNotFound
		}
		return nil, err
	}
	return &stat, nil
}

func (r *PostgresRepository) CreateStat(ctx context.Context, stat *ministrydomain.Stat) error {
	return r.db.WithContext(ctx).Create(stat).Error
}

func (r *PostgresRepository) UpdateStat(ctx context.Context, stat *ministrydomain.Stat) error {
	return r.db.WithContext(ctx).Save(stat).Error
}
