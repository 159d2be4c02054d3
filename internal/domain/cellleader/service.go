package cellleader

import (
	"context"
	"strings"
	"time"

	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListCellLeaders returns leaders ordered by district, then cell name.
func (s *Service) ListCellLeaders(ctx context.Context) ([]CellLeader, error) {
	return s.repo.ListCellLeaders(ctx)
}

func (s *Service) CreateCellLeader(ctx context.Context, input Input) (*CellLeader, error) {
	leader := CellLeader{ID: uuid.NewString()}
	if err := apply(&leader, input); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCellLeader(ctx, &leader); err != nil {
		return nil, err
	}
	return &leader, nil
}

func (s *Service) UpdateCellLeader(ctx context.Context, id string, input Input) (*CellLeader, error) {
	leader, err := s.repo.GetCellLeaderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(leader, input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCellLeader(ctx, leader); err != nil {
		return nil, err
	}
	return leader, nil
}

func (s *Service) DeleteCellLeader(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteCellLeader(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCellLeaderNotFound
	}
	return nil
}

func apply(leader *CellLeader, input Input) error {
	name := sanitize.Text(input.Name)
	if name == "" {
		return ErrNameRequired
	}

	var appointed *time.Time
	if value := strings.TrimSpace(input.AppointedDate); value != "" {
		parsed, err := time.Parse(dateLayout, value)
		if err != nil {
			return ErrInvalidAppointedDate
		}
		appointed = &parsed
	}

	leader.Name = name
	leader.District = sanitize.Optional(input.District)
	leader.CellName = sanitize.Optional(input.CellName)
	leader.Region = sanitize.Optional(input.Region)
	leader.Phone = sanitize.OptionalPlain(input.Phone)
	leader.AppointedDate = appointed
	return nil
}
