package servingpeople

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// Lock takes a transaction-scoped advisory lock on key.
	Lock(ctx context.Context, key string) error
	// ListPeople returns people by sort order, then creation time.
	ListPeople(ctx context.Context) ([]Person, error)
	CountPeople(ctx context.Context) (int64, error)
	// MaxSortOrder returns 0 for an empty table.
	MaxSortOrder(ctx context.Context) (int, error)
	GetPersonByID(ctx context.Context, id string) (*Person, error)
	CreatePerson(ctx context.Context, person *Person) error
	UpdatePerson(ctx context.Context, person *Person) error
	DeletePerson(ctx context.Context, id string) (bool, error)
}
