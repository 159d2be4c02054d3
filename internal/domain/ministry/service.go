package ministry

import (
	"context"
	"errors"
	"fmt"

	"church-office-go/pkg/logger"
	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// ListMinistries returns the category's ministries, oldest first.
func (s *Service) ListMinistries(ctx context.Context, category Category) ([]Ministry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	return s.repo.ListMinistries(ctx, category)
}

func (s *Service) CreateMinistry(ctx context.Context, category Category, input Input) (*Ministry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	ministry := Ministry{ID: uuid.NewString(), Category: category, RoleInfo: emptyObject}
	if err := apply(&ministry, input); err != nil {
		return nil, err
	}
	if err := s.repo.CreateMinistry(ctx, &ministry); err != nil {
		return nil, err
	}
	return &ministry, nil
}

// UpdateMinistry changes only the fields present in input. The category is
// fixed at creation.
func (s *Service) UpdateMinistry(ctx context.Context, id string, input Input) (*Ministry, error) {
	ministry, err := s.repo.GetMinistryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(ministry, input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateMinistry(ctx, ministry); err != nil {
		return nil, err
	}
	return ministry, nil
}

func (s *Service) DeleteMinistry(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMinistry(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMinistryNotFound
	}
	return nil
}

func (s *Service) FindMinistryByName(ctx context.Context, category Category, name string) (*Ministry, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	name = sanitize.Text(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	return s.repo.FindMinistryByName(ctx, category, name)
}

// UpsertMinistry edits the ministry identified by category and name, creating
// it when missing. Worship groups are addressed this way. The lookup and the
// write share a transaction serialized on the name, so concurrent first saves
// create one row. The name in input is ignored.
func (s *Service) UpsertMinistry(ctx context.Context, category Category, name string, input Input) (*Ministry, bool, error) {
	if !category.Valid() {
		return nil, false, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	name = sanitize.Text(name)
	if name == "" {
		return nil, false, ErrNameRequired
	}
	input.Name = nil

	var (
		saved   *Ministry
		created bool
	)
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Lock(ctx, ministryLockKey(category, name)); err != nil {
			return err
		}

		existing, err := tx.FindMinistryByName(ctx, category, name)
		switch {
		case err == nil:
			if err := apply(existing, input); err != nil {
				return err
			}
			if err := tx.UpdateMinistry(ctx, existing); err != nil {
				return err
			}
			saved = existing
			return nil
		case errors.Is(err, ErrMinistryNotFound):
		default:
			return err
		}

		ministry := Ministry{ID: uuid.NewString(), Category: category, Name: name, RoleInfo: emptyObject}
		if err := apply(&ministry, input); err != nil {
			return err
		}
		if err := tx.CreateMinistry(ctx, &ministry); err != nil {
			return err
		}
		saved = &ministry
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		s.log.Info("ministry: created by name", "category", category, "name", name, "ministry_id", saved.ID)
	}
	return saved, created, nil
}

// GetStat returns nil without error when the category has no stat yet.
func (s *Service) GetStat(ctx context.Context, category Category) (*Stat, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	stat, err := s.repo.GetStat(ctx, category)
	if errors.Is(err, ErrStatNotFound) {
		return nil, nil
	}
	return stat, err
}

// SaveStat replaces the category's stat data, creating the row on first save.
func (s *Service) SaveStat(ctx context.Context, category Category, data []byte) (*Stat, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	cleaned, err := sanitize.JSONObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatData, err)
	}

	var saved *Stat
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Lock(ctx, statLockKey(category)); err != nil {
			return err
		}

		stat, err := tx.GetStat(ctx, category)
		switch {
		case err == nil:
			stat.Data = cleaned
			if err := tx.UpdateStat(ctx, stat); err != nil {
				return err
			}
			saved = stat
			return nil
		case errors.Is(err, ErrStatNotFound):
		default:
			return err
		}

		stat = &Stat{ID: uuid.NewString(), Category: category, Data: cleaned}
		if err := tx.CreateStat(ctx, stat); err != nil {
			return err
		}
		saved = stat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func apply(ministry *Ministry, input Input) error {
	if input.Name != nil {
		name := sanitize.Text(*input.Name)
		if name == "" {
			return ErrNameRequired
		}
		ministry.Name = name
	}
	if ministry.Name == "" {
		return ErrNameRequired
	}
	if input.Count != nil {
		if *input.Count < 0 {
			return ErrInvalidCount
		}
		ministry.Count = *input.Count
	}
	if input.RoleInfo != nil {
		roleInfo, err := sanitize.JSONObject(input.RoleInfo)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidRoleInfo, err)
		}
		ministry.RoleInfo = roleInfo
	}
	if input.Description != nil {
		ministry.Description = sanitize.Optional(input.Description)
	}
	if input.Location != nil {
		ministry.Location = sanitize.Optional(input.Location)
	}
	if input.Icon != nil {
		ministry.Icon = sanitize.Optional(input.Icon)
	}
	return nil
}
