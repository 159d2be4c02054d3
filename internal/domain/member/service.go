package member

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"church-office-go/pkg/logger"
	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo        Repository
	defaultRole string
	log         logger.Logger
	now         func() time.Time
}

func NewService(repo Repository, defaultRole string, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:        repo,
		defaultRole: defaultRole,
		log:         log,
		now:         time.Now,
	}
}

func (s *Service) ListMembers(ctx context.Context, query string) ([]Member, error) {
	return s.repo.ListMembers(ctx, strings.TrimSpace(query))
}

func (s *Service) GetMember(ctx context.Context, id string) (*Member, error) {
	return s.repo.GetMemberByID(ctx, id)
}

func (s *Service) CreateMember(ctx context.Context, input MemberInput) (*Member, error) {
	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	role := sanitize.Text(input.Role)
	if role == "" {
		role = s.defaultRole
	}

	member := Member{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        sanitize.OptionalPlain(input.Phone),
		Role:         role,
		RegisteredAt: s.now().UTC(),
		District:     sanitize.Optional(input.District),
		BirthDate:    s.parseBirthDate(input.BirthDate),
		Gender:       sanitize.Optional(input.Gender),
		Address:      sanitize.Optional(input.Address),
		ChoirPart:    sanitize.Optional(input.ChoirPart),
		DepartmentID: sanitize.OptionalPlain(input.DepartmentID),
	}
	if err := s.repo.CreateMember(ctx, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, id string, input MemberInput) (*Member, error) {
	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	member, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role := sanitize.Text(input.Role); role != "" {
		member.Role = role
	}
	member.Name = name
	member.Phone = sanitize.OptionalPlain(input.Phone)
	member.District = sanitize.Optional(input.District)
	member.BirthDate = s.parseBirthDate(input.BirthDate)
	member.Gender = sanitize.Optional(input.Gender)
	member.Address = sanitize.Optional(input.Address)
	member.ChoirPart = sanitize.Optional(input.ChoirPart)
	member.DepartmentID = sanitize.OptionalPlain(input.DepartmentID)

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) DeleteMember(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMemberNotFound
	}
	return nil
}

func (s *Service) ListChoirMembers(ctx context.Context) ([]Member, error) {
	return s.repo.ListChoirMembers(ctx)
}

// UpdateChoirPart assigns a part; a nil or blank part removes the member from
// the choir.
func (s *Service) UpdateChoirPart(ctx context.Context, id string, part *string) error {
	updated, err := s.repo.UpdateChoirPart(ctx, id, sanitize.Optional(part))
	if err != nil {
		return err
	}
	if !updated {
		return ErrMemberNotFound
	}
	return nil
}

func (s *Service) SearchNonChoirMembers(ctx context.Context, query string) ([]Member, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minCandidateQueryLen {
		return []Member{}, nil
	}
	return s.repo.SearchNonChoirMembers(ctx, query, candidateSearchLimit)
}

func (s *Service) parseBirthDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		s.log.Warn("members: birth date ignored", "value", value, "err", err)
		return nil
	}
	return &parsed
}
