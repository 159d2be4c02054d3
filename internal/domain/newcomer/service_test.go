package newcomer

import (
	"context"
	"errors"
	"sort"
	"testing"

	memberdomain "church-office-go/internal/domain/member"
	"church-office-go/pkg/logger"
)

type fakeNewcomerRepo struct {
	newcomers       map[string]Newcomer
	members         map[string]memberdomain.Member
	createMemberErr error
	locks           []string
}

func newFakeNewcomerRepo() *fakeNewcomerRepo {
	return &fakeNewcomerRepo{
		newcomers: make(map[string]Newcomer),
		members:   make(map[string]memberdomain.Member),
	}
}

func (r *fakeNewcomerRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	newcomers := make(map[string]Newcomer, len(r.newcomers))
	for k, v := range r.newcomers {
		newcomers[k] = v
	}
	members := make(map[string]memberdomain.Member, len(r.members))
	for k, v := range r.members {
		members[k] = v
	}
	if err := fn(r); err != nil {
		r.newcomers = newcomers
		r.members = members
		return err
	}
	return nil
}

func (r *fakeNewcomerRepo) ListNewcomers(ctx context.Context) ([]Newcomer, error) {
	items := make([]Newcomer, 0, len(r.newcomers))
	for _, n := range r.newcomers {
		items = append(items, n)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].RegisteredDate > items[j].RegisteredDate })
	return items, nil
}

func (r *fakeNewcomerRepo) GetNewcomerByID(ctx context.Context, id string) (*Newcomer, error) {
	n, ok := r.newcomers[id]
	if !ok {
		return nil, ErrNewcomerNotFound
	}
	return &n, nil
}

func (r *fakeNewcomerRepo) CreateNewcomer(ctx context.Context, newcomer *Newcomer) error {
	r.newcomers[newcomer.ID] = *newcomer
	return nil
}

func (r *fakeNewcomerRepo) UpdateNewcomer(ctx context.Context, newcomer *Newcomer) (bool, error) {
	if _, ok := r.newcomers[newcomer.ID]; !ok {
		return false, nil
	}
	r.newcomers[newcomer.ID] = *newcomer
	return true, nil
}

func (r *fakeNewcomerRepo) DeleteNewcomer(ctx context.Context, id string) (bool, error) {
	if _, ok := r.newcomers[id]; !ok {
		return false, nil
	}
	delete(r.newcomers, id)
	return true, nil
}

func (r *fakeNewcomerRepo) LockMemberIdentity(ctx context.Context, name string, phone *string) error {
	r.locks = append(r.locks, name)
	return nil
}

func (r *fakeNewcomerRepo) FindMemberByIdentity(ctx context.Context, name string, phone *string) (*memberdomain.Member, error) {
	for _, m := range r.members {
		if m.Name != name {
			continue
		}
		if phoneValue(m.Phone) == phoneValue(phone) {
			found := m
			return &found, nil
		}
	}
	return nil, memberdomain.ErrMemberNotFound
}

func (r *fakeNewcomerRepo) CreateMember(ctx context.Context, member *memberdomain.Member) error {
	if r.createMemberErr != nil {
		return r.createMemberErr
	}
	r.members[member.ID] = *member
	return nil
}

func phoneValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

type recordingPublisher struct {
	keys []string
	err  error
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, key string, v any) error {
	p.keys = append(p.keys, key)
	return p.err
}

func strPtr(v string) *string { return &v }

func newTestService(repo Repository, pub Publisher) *Service {
	return NewService(repo, "새가족", pub, logger.NewNop())
}

func TestUpsertCreatesNewcomerWithoutPhone(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, nil)

	result, err := svc.UpsertNewcomer(context.Background(), UpsertInput{Name: "Kim", RegisteredDate: "2026-01-04"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Created {
		t.Fatalf("expected create path")
	}
	if len(repo.newcomers) != 1 {
		t.Fatalf("expected 1 newcomer, got %d", len(repo.newcomers))
	}
	if result.Newcomer.Phone != nil {
		t.Fatalf("expected nil phone, got %q", *result.Newcomer.Phone)
	}
}

func TestUpsertSkipsPromotionForExistingMember(t *testing.T) {
	repo := newFakeNewcomerRepo()
	repo.members["m1"] = memberdomain.Member{ID: "m1", Name: "Kim", Phone: strPtr("010-1111-2222"), Role: "성도"}
	svc := newTestService(repo, nil)

	result, err := svc.UpsertNewcomer(context.Background(), UpsertInput{
		Name:           "Kim",
		Phone:          strPtr("010-1111-2222"),
		RegisteredDate: "2026-02-01",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.newcomers) != 1 {
		t.Fatalf("expected newcomer to be created, got %d", len(repo.newcomers))
	}
	if len(repo.members) != 1 {
		t.Fatalf("expected no second member, got %d", len(repo.members))
	}
	if result.Promoted != nil {
		t.Fatalf("expected no promotion")
	}
}

func TestUpsertPromotesOnFirstSighting(t *testing.T) {
	repo := newFakeNewcomerRepo()
	pub := &recordingPublisher{}
	svc := newTestService(repo, pub)

	result, err := svc.UpsertNewcomer(context.Background(), UpsertInput{
		Name:           "Lee",
		Phone:          strPtr("010-9999-0000"),
		RegisteredDate: "2026-02-01",
		Introducer:     strPtr("Park"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.newcomers) != 1 || len(repo.members) != 1 {
		t.Fatalf("expected one newcomer and one member, got %d/%d", len(repo.newcomers), len(repo.members))
	}
	if result.Promoted == nil {
		t.Fatalf("expected promoted member")
	}
	member := repo.members[result.Promoted.ID]
	if member.Role != "새가족" {
		t.Fatalf("expected new family role, got %q", member.Role)
	}
	if member.District == nil || *member.District != "인도자: Park" {
		t.Fatalf("expected introducer district, got %v", member.District)
	}
	if member.RegisteredAt.Format(DateLayout) != "2026-02-01" {
		t.Fatalf("expected registered at from intake date, got %v", member.RegisteredAt)
	}
	if len(repo.locks) != 1 {
		t.Fatalf("expected identity lock, got %v", repo.locks)
	}
	if len(pub.keys) != 2 || pub.keys[0] != EventNewcomerRegistered || pub.keys[1] != EventMemberPromoted {
		t.Fatalf("unexpected events: %v", pub.keys)
	}
}

func TestUpsertPromotedMemberWithoutIntroducerHasNoDistrict(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, nil)

	result, err := svc.UpsertNewcomer(context.Background(), UpsertInput{Name: "Choi", RegisteredDate: "2026-02-01", Introducer: strPtr("  ")})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Promoted == nil || result.Promoted.District != nil {
		t.Fatalf("expected promotion without district, got %+v", result.Promoted)
	}
}

func TestUpsertTreatsBlankPhoneAsAbsent(t *testing.T) {
	repo := newFakeNewcomerRepo()
	repo.members["m1"] = memberdomain.Member{ID: "m1", Name: "Kim", Role: "성도"}
	svc := newTestService(repo, nil)

	for _, phone := range []*string{nil, strPtr(""), strPtr("   ")} {
		if _, err := svc.UpsertNewcomer(context.Background(), UpsertInput{Name: "Kim", Phone: phone, RegisteredDate: "2026-02-01"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if len(repo.members) != 1 {
		t.Fatalf("expected absent phones to match the existing member, got %d members", len(repo.members))
	}
	if len(repo.newcomers) != 3 {
		t.Fatalf("expected 3 newcomers, got %d", len(repo.newcomers))
	}
}

func TestUpsertUpdateSkipsPromotion(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	created, err := svc.UpsertNewcomer(ctx, UpsertInput{Name: "Lee", RegisteredDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	repo.members = make(map[string]memberdomain.Member)

	updated, err := svc.UpsertNewcomer(ctx, UpsertInput{ID: created.Newcomer.ID, Name: "Lee2", RegisteredDate: "2026-03-01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.Created {
		t.Fatalf("expected update path")
	}
	if len(repo.members) != 0 {
		t.Fatalf("expected no member on update, got %d", len(repo.members))
	}
	stored := repo.newcomers[created.Newcomer.ID]
	if stored.Name != "Lee2" || stored.RegisteredDate != "2026-03-01" {
		t.Fatalf("expected newcomer to be updated, got %+v", stored)
	}
	if len(repo.newcomers) != 1 {
		t.Fatalf("expected no new row, got %d", len(repo.newcomers))
	}
}

func TestUpsertUpdateUnknownID(t *testing.T) {
	svc := newTestService(newFakeNewcomerRepo(), nil)

	_, err := svc.UpsertNewcomer(context.Background(), UpsertInput{
		ID:             "6f1c4f5e-8f7e-4b39-9a55-1f0e0b7d3a11",
		Name:           "Lee",
		RegisteredDate: "2026-03-01",
	})
	if !errors.Is(err, ErrNewcomerNotFound) {
		t.Fatalf("expected ErrNewcomerNotFound, got %v", err)
	}
}

func TestUpsertPlaceholderIDCreates(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, nil)

	result, err := svc.UpsertNewcomer(context.Background(), UpsertInput{ID: "temp-1712345678", Name: "Han", RegisteredDate: "2026-03-01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Created || result.Newcomer.ID == "temp-1712345678" {
		t.Fatalf("expected a fresh newcomer, got %+v", result.Newcomer)
	}
}

func TestUpsertRollsBackWhenPromotionFails(t *testing.T) {
	repo := newFakeNewcomerRepo()
	repo.createMemberErr = errors.New("insert failed")
	pub := &recordingPublisher{}
	svc := newTestService(repo, pub)

	_, err := svc.UpsertNewcomer(context.Background(), UpsertInput{Name: "Yoon", RegisteredDate: "2026-02-01"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.newcomers) != 0 {
		t.Fatalf("expected newcomer insert to roll back, got %d", len(repo.newcomers))
	}
	if len(pub.keys) != 0 {
		t.Fatalf("expected no events after rollback, got %v", pub.keys)
	}
}

func TestUpsertPublishFailureDoesNotFail(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, &recordingPublisher{err: errors.New("broker down")})

	if _, err := svc.UpsertNewcomer(context.Background(), UpsertInput{Name: "Jung", RegisteredDate: "2026-02-01"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := newTestService(newFakeNewcomerRepo(), nil)
	ctx := context.Background()

	if _, err := svc.UpsertNewcomer(ctx, UpsertInput{Name: " ", RegisteredDate: "2026-02-01"}); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := svc.UpsertNewcomer(ctx, UpsertInput{Name: "Kim", RegisteredDate: "2026/02/01"}); !errors.Is(err, ErrInvalidRegisteredDate) {
		t.Fatalf("expected ErrInvalidRegisteredDate, got %v", err)
	}
}

func TestDeleteLeavesPromotedMember(t *testing.T) {
	repo := newFakeNewcomerRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	result, err := svc.UpsertNewcomer(ctx, UpsertInput{Name: "Lee", Phone: strPtr("010-9999-0000"), RegisteredDate: "2026-02-01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := svc.DeleteNewcomer(ctx, result.Newcomer.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.newcomers) != 0 {
		t.Fatalf("expected newcomer to be deleted")
	}
	if _, ok := repo.members[result.Promoted.ID]; !ok {
		t.Fatalf("expected promoted member to remain")
	}
	if err := svc.DeleteNewcomer(ctx, result.Newcomer.ID); !errors.Is(err, ErrNewcomerNotFound) {
		t.Fatalf("expected ErrNewcomerNotFound on second delete, got %v", err)
	}
}
