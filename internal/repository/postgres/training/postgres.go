package training

import (
	"context"
	"errors"

	trainingdomain "church-office-go/internal/domain/training"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPrograms(ctx context.Context) ([]trainingdomain.Program, error) {
	var programs []trainingdomain.Program
	if err := r.db.WithContext(ctx).Order("term desc, created_at desc").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *PostgresRepository) GetProgramByID(ctx context.Context, id string) (*trainingdomain.Program, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, trainingdomain.ErrProgramNotFound
	}
	var program trainingdomain.Program
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trainingdomain.ErrProgramNotFound
		}
		return nil, err
	}
	return &program, nil
}

func (r *PostgresRepository) CreateProgram(ctx context.Context, program *trainingdomain.Program) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *PostgresRepository) UpdateProgram(ctx context.Context, program *trainingdomain.Program) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *PostgresRepository) DeleteProgram(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&trainingdomain.Program{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
