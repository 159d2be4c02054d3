package department

import (
	"context"
	"errors"

	"church-office-go/pkg/sanitize"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Tree returns the root departments with their descendants nested below.
func (s *Service) Tree(ctx context.Context) ([]Node, error) {
	rows, err := s.repo.ListDepartmentsWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		known[row.ID] = struct{}{}
	}

	children := make(map[string][]DepartmentCount)
	var roots []DepartmentCount
	for _, row := range rows {
		if row.ParentID == nil {
			roots = append(roots, row)
			continue
		}
		if _, ok := known[*row.ParentID]; !ok {
			roots = append(roots, row)
			continue
		}
		children[*row.ParentID] = append(children[*row.ParentID], row)
	}

	return buildNodes(roots, children), nil
}

func buildNodes(rows []DepartmentCount, children map[string][]DepartmentCount) []Node {
	nodes := make([]Node, 0, len(rows))
	for _, row := range rows {
		nodes = append(nodes, Node{
			ID:          row.ID,
			Name:        row.Name,
			ParentID:    row.ParentID,
			MemberCount: row.MemberCount,
			Children:    buildNodes(children[row.ID], children),
		})
	}
	return nodes
}

func (s *Service) CreateDepartment(ctx context.Context, input CreateInput) (*Department, error) {
	name := sanitize.Text(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	department := Department{
		ID:       uuid.NewString(),
		Name:     name,
		ParentID: sanitize.OptionalPlain(input.ParentID),
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if department.ParentID != nil {
			if _, err := tx.GetDepartmentByID(ctx, *department.ParentID); err != nil {
				if errors.Is(err, ErrDepartmentNotFound) {
					return ErrParentNotFound
				}
				return err
			}
		}
		return tx.CreateDepartment(ctx, &department)
	})
	if err != nil {
		return nil, err
	}
	return &department, nil
}

// DeleteDepartment refuses while child departments exist. Members of the
// deleted department are left without one.
func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		hasChildren, err := tx.HasChildren(ctx, id)
		if err != nil {
			return err
		}
		if hasChildren {
			return ErrDepartmentHasChildren
		}
		deleted, err := tx.DeleteDepartment(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrDepartmentNotFound
		}
		return nil
	})
}
