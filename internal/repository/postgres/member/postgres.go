package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	memberdomain "church-office-go/internal/domain/member"
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

func (r *PostgresRepository) ListMembers(ctx context.Context, query string) ([]memberdomain.Member, error) {
	q := r.db.WithContext(ctx).Model(&memberdomain.Member{})
	if query != "" {
		pattern := "%" + escapeLike(query) + "%"
		q = q.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}

	var members []memberdomain.Member
	if err := q.Order("registered_at desc").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, id string) (*memberdomain.Member, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, memberdomain.ErrMemberNotFound
	}
	var member memberdomain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, memberdomain.ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *memberdomain.Member) error {
	return mapWriteError(r.db.WithContext(ctx).Create(member).Error)
}

func (r *PostgresRepository) UpdateMember(ctx context.Context, member *memberdomain.Member) error {
	return mapWriteError(r.db.WithContext(ctx).Save(member).Error)
}

// The only foreign key on members is department_id.
func mapWriteError(err error) error {
	if pgerr.Is(err, pgerr.ForeignKeyViolation) {
		return fmt.Errorf("%w: %s", memberdomain.ErrDepartmentNotFound, pgerr.Constraint(err))
	}
	return err
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&memberdomain.Member{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) ListChoirMembers(ctx context.Context) ([]memberdomain.Member, error) {
	var members []memberdomain.Member
	if err := r.db.WithContext(ctx).
		Where("choir_part IS NOT NULL").
		Order("name asc").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *PostgresRepository) UpdateChoirPart(ctx context.Context, id string, part *string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	result := r.db.WithContext(ctx).
		Model(&memberdomain.Member{}).
		Where("id = ?", id).
		Update("choir_part", part)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PostgresRepository) SearchNonChoirMembers(ctx context.Context, query string, limit int) ([]memberdomain.Member, error) {
	var members []memberdomain.Member
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ? AND choir_part IS NULL", "%"+escapeLike(query)+"%").
		Order("name asc").
		Limit(limit).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
