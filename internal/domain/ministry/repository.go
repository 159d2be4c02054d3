package ministry

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// Lock takes a transaction-scoped advisory lock on key.
	Lock(ctx context.Context, key string) error
	ListMinistries(ctx context.Context, category Category) ([]Ministry, error)
	GetMinistryByID(ctx context.Context, id string) (*Ministry, error)
	// FindMinistryByName returns the oldest ministry with the name, or
	// ErrMinistryNotFound.
	FindMinistryByName(ctx context.Context, category Category, name string) (*Ministry, error)
	CreateMinistry(ctx context.Context, ministry *Ministry) error
	UpdateMinistry(ctx context.Context, ministry *Ministry) error
	DeleteMinistry(ctx context.Context, id string) (bool, error)
	// GetStat returns ErrStatNotFound when the category has no stat yet.
	GetStat(ctx context.Context, category Category) (*Stat, error)
	CreateStat(ctx context.Context, stat *Stat) error
	UpdateStat(ctx context.Context, stat *Stat) error
}
