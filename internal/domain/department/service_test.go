package department

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type fakeDepartmentRepo struct {
	departments map[string]Department
	counts      map[string]int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments: make(map[string]Department),
		counts:      make(map[string]int64),
	}
}

func (r *fakeDepartmentRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeDepartmentRepo) ListDepartmentsWithCounts(ctx context.Context) ([]DepartmentCount, error) {
	items := make([]DepartmentCount, 0, len(r.departments))
	for _, d := range r.departments {
		items = append(items, DepartmentCount{Department: d, MemberCount: r.counts[d.ID]})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *fakeDepartmentRepo) GetDepartmentByID(ctx context.Context, id string) (*Department, error) {
	d, ok := r.departments[id]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	return &d, nil
}

func (r *fakeDepartmentRepo) CreateDepartment(ctx context.Context, department *Department) error {
	r.departments[department.ID] = *department
	return nil
}

func (r *fakeDepartmentRepo) HasChildren(ctx context.Context, id string) (bool, error) {
	for _, d := range r.departments {
		if d.ParentID != nil && *d.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDepartmentRepo) DeleteDepartment(ctx context.Context, id string) (bool, error) {
	if _, ok := r.departments[id]; !ok {
		return false, nil
	}
	delete(r.departments, id)
	return true, nil
}

func TestTreeNestsChildrenWithCounts(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := NewService(repo)
	ctx := context.Background()

	youth, err := svc.CreateDepartment(ctx, CreateInput{Name: "청년부"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	worship, err := svc.CreateDepartment(ctx, CreateInput{Name: "찬양팀", ParentID: &youth.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.CreateDepartment(ctx, CreateInput{Name: "교육부"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	repo.counts[youth.ID] = 12
	repo.counts[worship.ID] = 4

	tree, err := svc.Tree(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}

	var youthNode *Node
	for i := range tree {
		if tree[i].ID == youth.ID {
			youthNode = &tree[i]
		}
	}
	if youthNode == nil {
		t.Fatalf("expected youth department at root")
	}
	if youthNode.MemberCount != 12 {
		t.Fatalf("expected 12 members, got %d", youthNode.MemberCount)
	}
	if len(youthNode.Children) != 1 || youthNode.Children[0].MemberCount != 4 {
		t.Fatalf("expected worship child with 4 members, got %+v", youthNode.Children)
	}
	if youthNode.Children[0].Children == nil {
		t.Fatalf("expected empty, non-nil children for leaves")
	}
}

func TestCreateDepartmentRequiresExistingParent(t *testing.T) {
	svc := NewService(newFakeDepartmentRepo())
	missing := "33333333-3333-3333-3333-333333333333"

	_, err := svc.CreateDepartment(context.Background(), CreateInput{Name: "x", ParentID: &missing})
	if !errors.Is(err, ErrParentNotFound) {
		t.Fatalf("expected ErrParentNotFound, got %v", err)
	}
	if _, err := svc.CreateDepartment(context.Background(), CreateInput{Name: " "}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestDeleteDepartmentRefusesWithChildren(t *testing.T) {
	repo := newFakeDepartmentRepo()
	svc := NewService(repo)
	ctx := context.Background()

	parent, _ := svc.CreateDepartment(ctx, CreateInput{Name: "장년부"})
	child, _ := svc.CreateDepartment(ctx, CreateInput{Name: "남선교회", ParentID: &parent.ID})

	if err := svc.DeleteDepartment(ctx, parent.ID); !errors.Is(err, ErrDepartmentHasChildren) {
		t.Fatalf("expected ErrDepartmentHasChildren, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, child.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, parent.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteDepartment(ctx, parent.ID); !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}
