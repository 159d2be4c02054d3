package training

import "context"

type Repository interface {
	// ListPrograms returns programs with the latest term first.
	ListPrograms(ctx context.Context) ([]Program, error)
	GetProgramByID(ctx context.Context, id string) (*Program, error)
	CreateProgram(ctx context.Context, program *Program) error
	UpdateProgram(ctx context.Context, program *Program) error
	DeleteProgram(ctx context.Context, id string) (bool, error)
}
