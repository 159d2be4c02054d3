package cellleader

import (
	"context"
	"errors"

	cellleaderdomain "church-office-go/internal/domain/cellleader"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListCellLeaders(ctx context.Context) ([]cellleaderdomain.CellLeader, error) {
	var leaders []cellleaderdomain.CellLeader
	if err := r.db.WithContext(ctx).
		Order("district asc NULLS LAST, cell_name asc NULLS LAST").
		Find(&leaders).Error; err != nil {
		return nil, err
	}
	return leaders, nil
}

func (r *PostgresRepository) GetCellLeaderByID(ctx context.Context, id string) (*cellleaderdomain.CellLeader, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, cellleaderdomain.ErrCellLeaderNotFound
	}
	var leader cellleaderdomain.CellLeader
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&leader).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cellleaderdomain.ErrCellLeaderNotFound
		}
		return nil, err
	}
	return &leader, nil
}

func (r *PostgresRepository) CreateCellLeader(ctx context.Context, leader *cellleaderdomain.CellLeader) error {
	return r.db.WithContext(ctx).Create(leader).Error
}

func (r *PostgresRepository) UpdateCellLeader(ctx context.Context, leader *cellleaderdomain.CellLeader) error {
	return r.db.WithContext(ctx).Save(leader).Error
}

func (r *PostgresRepository) DeleteCellLeader(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&cellleaderdomain.CellLeader{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
