package department

import (
	"context"
	"errors"

	departmentdomain "church-office-go/internal/domain/department"
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

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(departmentdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) ListDepartmentsWithCounts(ctx context.Context) ([]departmentdomain.DepartmentCount, error) {
	var rows []departmentdomain.DepartmentCount
	err := r.db.WithContext(ctx).
		Table("departments d").
		Select("d.id, d.name, d.parent_id, d.created_at, COUNT(m.id) AS member_count").
		Joins("LEFT JOIN members m ON m.department_id = d.id").
		Group("d.id, d.name, d.parent_id, d.created_at").
		Order("d.name asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PostgresRepository) GetDepartmentByID(ctx context.Context, id string) (*departmentdomain.Department, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, departmentdomain.ErrDepartmentNotFound
	}
	var department departmentdomain.Department
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmentdomain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}

func (r *PostgresRepository) CreateDepartment(ctx context.Context, department *departmentdomain.Department) error {
	return r.db.WithContext(ctx).Create(department).Error
}

func (r *PostgresRepository) HasChildren(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&departmentdomain.Department{}).
		Where("parent_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&departmentdomain.Department{})
	if result.Error != nil {
		if pgerr.Is(result.Error, pgerr.ForeignKeyViolation) {
			return false, departmentdomain.ErrDepartmentHasChildren
		}
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
