package newcomer

import (
	"context"

	memberdomain "church-office-go/internal/domain/member"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	ListNewcomers(ctx context.Context) ([]Newcomer, error)
	GetNewcomerByID(ctx context.Context, id string) (*Newcomer, error)
	CreateNewcomer(ctx context.Context, newcomer *Newcomer) error
	UpdateNewcomer(ctx context.Context, newcomer *Newcomer) (bool, error)
	DeleteNewcomer(ctx context.Context, id string) (bool, error)
	// LockMemberIdentity serializes promotion attempts for one (name, phone)
	// pair until the surrounding transaction ends.
	LockMemberIdentity(ctx context.Context, name string, phone *string) error
	// FindMemberByIdentity treats a nil phone as matching both NULL and ''.
	// Returns memberdomain.ErrMemberNotFound when nothing matches.
	FindMemberByIdentity(ctx context.Context, name string, phone *string) (*memberdomain.Member, error)
	CreateMember(ctx context.Context, member *memberdomain.Member) error
}

type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
