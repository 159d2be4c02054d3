package training

import (
	"context"
	"fmt"
	"sort"

	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPrograms(ctx context.Context) ([]Program, error) {
	return s.repo.ListPrograms(ctx)
}

func (s *Service) CreateProgram(ctx context.Context, input Input) (*Program, error) {
	program := Program{ID: uuid.NewString(), Curriculum: []CurriculumWeek{}}
	if err := apply(&program, input); err != nil {
		return nil, err
	}
	if err := s.repo.CreateProgram(ctx, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

func (s *Service) UpdateProgram(ctx context.Context, id string, input Input) (*Program, error) {
	program, err := s.repo.GetProgramByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(program, input); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateProgram(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *Service) DeleteProgram(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteProgram(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProgramNotFound
	}
	return nil
}

func apply(program *Program, input Input) error {
	if input.Term != nil {
		program.Term = sanitize.Text(*input.Term)
	}
	if program.Term == "" {
		return ErrTermRequired
	}
	if input.Curriculum != nil {
		weeks, err := cleanCurriculum(input.Curriculum)
		if err != nil {
			return err
		}
		program.Curriculum = weeks
	}
	if input.Period != nil {
		program.Period = sanitize.Optional(input.Period)
	}
	if input.Participants != nil {
		program.Participants = sanitize.Optional(input.Participants)
	}
	if input.CompletionRate != nil {
		program.CompletionRate = sanitize.Optional(input.CompletionRate)
	}
	if input.Testimony != nil {
		program.Testimony = sanitize.Optional(input.Testimony)
	}
	if input.Note != nil {
		program.Note = sanitize.Optional(input.Note)
	}
	return nil
}

// cleanCurriculum returns the weeks sorted by number with text sanitized.
func cleanCurriculum(weeks []CurriculumWeek) ([]CurriculumWeek, error) {
	seen := make(map[int]struct{}, len(weeks))
	cleaned := make([]CurriculumWeek, 0, len(weeks))
	for _, week := range weeks {
		if week.Week < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeek, week.Week)
		}
		if _, ok := seen[week.Week]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateWeek, week.Week)
		}
		seen[week.Week] = struct{}{}

		content := sanitize.Text(week.Content)
		if content == "" {
			return nil, fmt.Errorf("%w: week %d", ErrContentRequired, week.Week)
		}
		cleaned = append(cleaned, CurriculumWeek{
			Week:    week.Week,
			Content: content,
			Note:    sanitize.Text(week.Note),
		})
	}
	sort.Slice(cleaned, func(i, j int) bool { return cleaned[i].Week < cleaned[j].Week })
	return cleaned, nil
}
