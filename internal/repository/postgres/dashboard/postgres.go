package dashboard

import (
	"context"

	memberdomain "church-office-go/internal/domain/member"
	newcomerdomain "church-office-go/internal/domain/newcomer"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&memberdomain.Member{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) ListNewcomersSince(ctx context.Context, date string) ([]newcomerdomain.Newcomer, error) {
	var newcomers []newcomerdomain.Newcomer
	if err := r.db.WithContext(ctx).
		Where("registered_date >= ?", date).
		Order("registered_date desc, created_at desc").
		Find(&newcomers).Error; err != nil {
		return nil, err
	}
	return newcomers, nil
}
