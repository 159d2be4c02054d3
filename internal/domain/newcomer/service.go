package newcomer

import (
	"context"
	"errors"
	"strings"
	"time"

	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/pkg/logger"
	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo          Repository
	newFamilyRole string
	pub           Publisher
	log           logger.Logger
}

func NewService(repo Repository, newFamilyRole string, pub Publisher, log logger.Logger) *Service {
	if pub == nil {
		pub = noopPublisher{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:          repo,
		newFamilyRole: newFamilyRole,
		pub:           pub,
		log:           log,
	}
}

func (s *Service) ListNewcomers(ctx context.Context) ([]Newcomer, error) {
	return s.repo.ListNewcomers(ctx)
}

// UpsertNewcomer updates the newcomer named by input.ID when it is a UUID and
// otherwise records a new intake. A new intake also enrolls the person as a
// member unless a member with the same name and phone already exists. The
// intake and the enrollment commit together.
func (s *Service) UpsertNewcomer(ctx context.Context, input UpsertInput) (*UpsertResult, error) {
	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	registered, err := time.Parse(DateLayout, strings.TrimSpace(input.RegisteredDate))
	if err != nil {
		return nil, ErrInvalidRegisteredDate
	}

	fields := Newcomer{
		Name:           name,
		Phone:          sanitize.OptionalPlain(input.Phone),
		RegisteredDate: registered.Format(DateLayout),
		Introducer:     sanitize.Optional(input.Introducer),
		Description:    sanitize.Optional(input.Description),
	}

	if id, ok := persistedID(input.ID); ok {
		return s.updateNewcomer(ctx, id, fields)
	}
	return s.createNewcomer(ctx, fields, registered)
}

func (s *Service) updateNewcomer(ctx context.Context, id string, fields Newcomer) (*UpsertResult, error) {
	existing, err := s.repo.GetNewcomerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = fields.Name
	existing.Phone = fields.Phone
	existing.RegisteredDate = fields.RegisteredDate
	existing.Introducer = fields.Introducer
	existing.Description = fields.Description

	updated, err := s.repo.UpdateNewcomer(ctx, existing)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNewcomerNotFound
	}
	return &UpsertResult{Newcomer: *existing}, nil
}

func (s *Service) createNewcomer(ctx context.Context, newcomer Newcomer, registered time.Time) (*UpsertResult, error) {
	newcomer.ID = uuid.NewString()
	result := UpsertResult{Created: true}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateNewcomer(ctx, &newcomer); err != nil {
			return err
		}
		if err := tx.LockMemberIdentity(ctx, newcomer.Name, newcomer.Phone); err != nil {
			return err
		}

		existing, err := tx.FindMemberByIdentity(ctx, newcomer.Name, newcomer.Phone)
		switch {
		case err == nil:
			s.log.Info("newcomers.upsert: member already exists, promotion skipped",
				"newcomer_id", newcomer.ID, "member_id", existing.ID)
			return nil
		case !errors.Is(err, memberdomain.ErrMemberNotFound):
			return err
		}

		member := s.promote(newcomer, registered)
		if err := tx.CreateMember(ctx, &member); err != nil {
			return err
		}
		result.Promoted = &member
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Newcomer = newcomer
	s.publishRegistered(ctx, result)
	return &result, nil
}

func (s *Service) promote(newcomer Newcomer, registered time.Time) memberdomain.Member {
	var district *string
	if newcomer.Introducer != nil {
		value := introducerPrefix + *newcomer.Introducer
		district = &value
	}
	return memberdomain.Member{
		ID:           uuid.NewString(),
		Name:         newcomer.Name,
		Phone:        newcomer.Phone,
		Role:         s.newFamilyRole,
		RegisteredAt: registered,
		District:     district,
	}
}

// DeleteNewcomer removes only the intake record. A member created from it
// stays on the roll.
func (s *Service) DeleteNewcomer(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteNewcomer(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNewcomerNotFound
	}
	return nil
}

func (s *Service) publishRegistered(ctx context.Context, result UpsertResult) {
	event := registeredEvent{
		NewcomerID:     result.Newcomer.ID,
		Name:           result.Newcomer.Name,
		RegisteredDate: result.Newcomer.RegisteredDate,
	}
	if result.Promoted != nil {
		event.MemberID = &result.Promoted.ID
	}
	if err := s.pub.PublishJSON(ctx, EventNewcomerRegistered, event); err != nil {
		s.log.Warn("newcomers.upsert: publish failed", "event", EventNewcomerRegistered, "err", err)
	}

	if result.Promoted == nil {
		return
	}
	promoted := promotedEvent{
		MemberID:   result.Promoted.ID,
		NewcomerID: result.Newcomer.ID,
		Name:       result.Promoted.Name,
		Role:       result.Promoted.Role,
	}
	if err := s.pub.PublishJSON(ctx, EventMemberPromoted, promoted); err != nil {
		s.log.Warn("newcomers.upsert: publish failed", "event", EventMemberPromoted, "err", err)
	}
}

// persistedID reports whether id names a stored newcomer rather than a
// client-side placeholder.
func persistedID(id string) (string, bool) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

type noopPublisher struct{}

func (noopPublisher) PublishJSON(context.Context, string, any) error { return nil }
