package newcomer

import (
	"context"
	"errors"

	memberdomain "church-office-go/internal/domain/member"
	newcomerdomain "church-office-go/internal/domain/newcomer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(newcomerdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListNewcomers(ctx context.Context) ([]newcomerdomain.Newcomer, error) {
	var newcomers []newcomerdomain.Newcomer
	if err := r.db.WithContext(ctx).
		Order("registered_date desc, created_at desc").
		Find(&newcomers).Error; err != nil {
		return nil, err
	}
	return newcomers, nil
}

func (r *PostgresRepository) GetNewcomerByID(ctx context.Context, id string) (*newcomerdomain.Newcomer, error) {
	var newcomer newcomerdomain.Newcomer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&newcomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newcomerdomain.ErrNewcomerNotFound
		}
		return nil, err
	}
	return &newcomer, nil
}

func (r *PostgresRepository) CreateNewcomer(ctx context.Context, newcomer *newcomerdomain.Newcomer) error {
	return r.db.WithContext(ctx).Create(newcomer).Error
}

func (r *PostgresRepository) UpdateNewcomer(ctx context.Context, newcomer *newcomerdomain.Newcomer) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&newcomerdomain.Newcomer{}).
		Where("id = ?", newcomer.ID).
		Updates(map[string]any{
			"name":            newcomer.Name,
			"phone":           newcomer.Phone,
			"registered_date": newcomer.RegisteredDate,
			"introducer":      newcomer.Introducer,
			"description":     newcomer.Description,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) DeleteNewcomer(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&newcomerdomain.Newcomer{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) LockMemberIdentity(ctx context.Context, name string, phone *string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", identityLockKey(name, phone)).
		Error
}

func (r *PostgresRepository) FindMemberByIdentity(ctx context.Context, name string, phone *string) (*memberdomain.Member, error) {
	query := r.db.WithContext(ctx).Where("name = ?", name)
	if phone == nil {
		query = query.Where("phone IS NULL OR phone = ''")
	} else {
		query = query.Where("phone = ?", *phone)
	}

	var member memberdomain.Member
	if err := query.Order("registered_at asc").First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *memberdomain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func identityLockKey(name string, phone *string) string {
	key := "member:" + name + "|"
	if phone != nil {
		key += *phone
	}
	return key
}
