package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/auth"
)

type fakeStaffRepo struct {
	staff   map[int64]*models.StaffMember
	nextID  int64
	listErr error
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: map[int64]*models.StaffMember{}, nextID: 1}
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff *models.StaffMember) (int64, error) {
	for _, m := range f.staff {
		if m.Username == staff.Username {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
	}
	staff.ID = f.nextID
	f.staff[staff.ID] = staff
	f.nextID++
	return staff.ID, nil
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffRepo) GetAll(ctx context.Context) ([]*models.StaffMember, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.StaffMember{}
	for _, m := range f.staff {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(ctx context.Context, staff *models.StaffMember) error {
	if _, ok := f.staff[staff.ID]; !ok {
		return apperrors.ErrStaffNotFound
	}
	f.staff[staff.ID] = staff
	return nil
}

func (f *fakeStaffRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.staff[id]; !ok {
		return apperrors.ErrStaffNotFound
	}
	delete(f.staff, id)
	return nil
}

func TestCreateStaffHashesPassword(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewStaffService(repo)

	id, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:     "Kaya",
		Username: "kaya",
		Password: "secret123",
		Role:     "STAFF",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	member := repo.staff[id]
	if member.PasswordHash == "secret123" {
		t.Fatal("password must not be stored in plain text")
	}
	if !auth.CheckPassword(member.PasswordHash, "secret123") {
		t.Error("stored hash should verify against the original password")
	}
	if member.Role != models.RoleStaff {
		t.Errorf("expected STAFF role, got %q", member.Role)
	}
}

func TestCreateStaffRejectsAdminRole(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())

	_, err := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:     "Impostor",
		Username: "impostor",
		Password: "secret123",
		Role:     "ADMIN",
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for admin role request, got %v", err)
	}
}

func TestCreateStaffDuplicateUsername(t *testing.T) {
	svc := NewStaffService(newFakeStaffRepo())

	req := &dto.CreateStaffRequest{Name: "Kaya", Username: "kaya", Password: "secret123", Role: "STAFF"}
	if _, err := svc.CreateStaff(context.Background(), req); err != nil {
		t.Fatalf("first create should succeed: %v", err)
	}

	_, err := svc.CreateStaff(context.Background(), req)
	if !errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
		t.Fatalf("expected username conflict, got %v", err)
	}
}

func TestUpdateStaffEmptyPasswordKeepsHash(t *testing.T) {
	repo := newFakeStaffRepo()
	svc := NewStaffService(repo)

	id, _ := svc.CreateStaff(context.Background(), &dto.CreateStaffRequest{
		Name:     "Kaya",
		Username: "kaya",
		Password: "secret123",
		Role:     "STAFF",
	})
	originalHash := repo.staff[id].PasswordHash

	err := svc.UpdateStaff(context.Background(), id, &dto.UpdateStaffRequest{
		Name:     "Kaya Updated",
		Username: "kaya",
		Role:     "STAFF",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.staff[id].PasswordHash != originalHash {
		t.Error("empty password must keep the stored hash")
	}
	if repo.staff[id].Name != "Kaya Updated" {
		t.Errorf("expected name updated, got %q", repo.staff[id].Name)
	}

	// A non-empty password replaces the hash
	err = svc.UpdateStaff(context.Background(), id, &dto.UpdateStaffRequest{
		Name:     "Kaya Updated",
		Username: "kaya",
		Password: "newsecret",
		Role:     "STAFF",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.staff[id].PasswordHash == originalHash {
		t.Error("new password must replace the stored hash")
	}
	if !auth.CheckPassword(repo.staff[id].PasswordHash, "newsecret") {
		t.Error("new hash should verify against the new password")
	}
}

func TestDeleteStaffProtectsAdmin(t *testing.T) {
	repo := newFakeStaffRepo()
	repo.staff[1] = &models.StaffMember{ID: 1, Username: "admin", Role: models.RoleAdmin}
	repo.nextID = 2
	svc := NewStaffService(repo)

	err := svc.DeleteStaff(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected admin deletion to be forbidden, got %v", err)
	}
}

func TestGetRosterDegradesToEmptyOnFailure(t *testing.T) {
	repo := newFakeStaffRepo()
	repo.listErr = errors.New("query failed")
	svc := NewStaffService(repo)

	roster, err := svc.GetRoster(context.Background())
	if err != nil {
		t.Fatalf("expected no error on roster failure, got %v", err)
	}
	if len(roster) != 0 {
		t.Errorf("expected empty roster, got %d", len(roster))
	}
}
