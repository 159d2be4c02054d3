package department

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// ListDepartmentsWithCounts returns every department ordered by name.
	ListDepartmentsWithCounts(ctx context.Context) ([]DepartmentCount, error)
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)
	CreateDepartment(ctx context.Context, department *Department) error
	HasChildren(ctx context.Context, id string) (bool, error)
	DeleteDepartment(ctx context.Context, id string) (bool, error)
}
