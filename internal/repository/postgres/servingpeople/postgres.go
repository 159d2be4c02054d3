package servingpeople

import (
	"context"
	"errors"

	servingdomain "church-office-go/internal/domain/servingpeople"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(servingdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Lock(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).
		Error
}

func (r *PostgresRepository) ListPeople(ctx context.Context) ([]servingdomain.Person, error) {
	var people []servingdomain.Person
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PostgresRepository) CountPeople(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&servingdomain.Person{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var highest int
	err := r.db.WithContext(ctx).
		Model(&servingdomain.Person{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&highest).Error
	if err != nil {
		return 0, err
	}
	return highest, nil
}

func (r *PostgresRepository) GetPersonByID(ctx context.Context, id string) (*servingdomain.Person, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, servingdomain.ErrPersonNotFound
	}
	var person servingdomain.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, servingdomain.ErrPersonNotFound
		}
		return nil, err
	}
	return &person, nil
}

func (r *PostgresRepository) CreatePerson(ctx context.Context, person *servingdomain.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *PostgresRepository) UpdatePerson(ctx context.Context, person *servingdomain.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

func (r *PostgresRepository) DeletePerson(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&servingdomain.Person{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
