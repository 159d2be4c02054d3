package dashboard

import (
	"context"

	newcomerdomain "church-office-go/internal/domain/newcomer"
)

type Repository interface {
	CountMembers(ctx context.Context) (int64, error)
	// ListNewcomersSince returns newcomers registered on or after date,
	// most recent first.
	ListNewcomersSince(ctx context.Context, date string) ([]newcomerdomain.Newcomer, error)
}
