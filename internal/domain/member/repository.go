package member

import "context"

type Repository interface {
	ListMembers(ctx context.Context, query string) ([]Member, error)
	GetMemberByID(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id string) (bool, error)
	ListChoirMembers(ctx context.Context) ([]Member, error)
	UpdateChoirPart(ctx context.Context, id string, part *string) (bool, error)
	SearchNonChoirMembers(ctx context.Context, query string, limit int) ([]Member, error)
}
