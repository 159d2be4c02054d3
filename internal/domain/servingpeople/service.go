package servingpeople

import (
	"context"
	"net/url"
	"strings"

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

func (s *Service) ListPeople(ctx context.Context) ([]Person, error) {
	return s.repo.ListPeople(ctx)
}

// SeedPeople inserts seeds only into an empty table and returns how many rows
// it created. Invalid seeds are skipped.
func (s *Service) SeedPeople(ctx context.Context, seeds []Seed) (int, error) {
	created := 0
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Lock(ctx, seedLockKey); err != nil {
			return err
		}
		count, err := tx.CountPeople(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, seed := range seeds {
			category, err := ParseCategory(seed.Category)
			if err != nil {
				s.log.Warn("serving people: skipping seed", "name", seed.Name, "category", seed.Category)
				continue
			}
			role := strings.TrimSpace(seed.Role)
			name := strings.TrimSpace(seed.Name)
			if role == "" || name == "" {
				continue
			}
			description := strings.TrimSpace(seed.Description)
			person := Person{
				ID:        uuid.NewString(),
				Category:  category,
				Role:      role,
				Name:      name,
				SortOrder: seed.SortOrder,
			}
			if description != "" {
				person.Description = &description
			}
			if err := tx.CreatePerson(ctx, &person); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if created > 0 {
		s.log.Info("serving people: seeded", "count", created)
	}
	return created, nil
}

func (s *Service) CreatePerson(ctx context.Context, input Input) (*Person, error) {
	person := Person{ID: uuid.NewString()}
	if err := apply(&person, input); err != nil {
		return nil, err
	}
	if input.SortOrder == nil {
		last, err := s.repo.MaxSortOrder(ctx)
		if err != nil {
			return nil, err
		}
		person.SortOrder = last + 1
	}
	if err := s.repo.CreatePerson(ctx, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (s *Service) UpdatePerson(ctx context.Context, id string, input Input) (*Person, error) {
	person, err := s.repo.GetPersonByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(person, input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePerson(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *Service) DeletePerson(ctx context.Context, id string) error {
	deleted, err := s.repo.DeletePerson(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPersonNotFound
	}
	return nil
}

func apply(person *Person, input Input) error {
	if input.Category != nil {
		category, err := ParseCategory(*input.Category)
		if err != nil {
			return err
		}
		person.Category = category
	}
	if !person.Category.Valid() {
		return ErrInvalidCategory
	}
	if input.Role != nil {
		person.Role = sanitize.Text(*input.Role)
	}
	if person.Role == "" {
		return ErrRoleRequired
	}
	if input.Name != nil {
		person.Name = sanitize.Text(*input.Name)
	}
	if person.Name == "" {
		return ErrNameRequired
	}
	if input.Description != nil {
		person.Description = sanitize.Optional(input.Description)
	}
	if input.ImageURL != nil {
		imageURL := sanitize.OptionalPlain(input.ImageURL)
		if imageURL != nil && !webURL(*imageURL) {
			return ErrInvalidImageURL
		}
		person.ImageURL = imageURL
	}
	if input.SortOrder != nil {
		person.SortOrder = *input.SortOrder
	}
	return nil
}

func webURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
