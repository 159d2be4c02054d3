package cellleader

import "context"

type Repository interface {
	ListCellLeaders(ctx context.Context) ([]CellLeader, error)
	GetCellLeaderByID(ctx context.Context, id string) (*CellLeader, error)
	CreateCellLeader(ctx context.Context, leader *CellLeader) error
	UpdateCellLeader(ctx context.Context, leader *CellLeader) error
	DeleteCellLeader(ctx context.Context, id string) (bool, error)
}
