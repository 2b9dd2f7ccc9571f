package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
)

type fakeUpdateRepo struct {
	updates map[int64]*models.Update
	nextID  int64
	listErr error
}

func newFakeUpdateRepo() *fakeUpdateRepo {
	return &fakeUpdateRepo{updates: map[int64]*models.Update{}, nextID: 1}
}

func (f *fakeUpdateRepo) Create(ctx context.Context, update *models.Update) (int64, error) {
	update.ID = f.nextID
	f.updates[update.ID] = update
	f.nextID++
	return update.ID, nil
}

func (f *fakeUpdateRepo) GetByID(ctx context.Context, id int64) (*models.Update, error) {
	update, ok := f.updates[id]
	if !ok {
		return nil, apperrors.ErrUpdateNotFound
	}
	return update, nil
}

func (f *fakeUpdateRepo) List(ctx context.Context, page, pageSize int) ([]*models.Update, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	out := []*models.Update{}
	for _, u := range f.updates {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUpdateRepo) ListFeatured(ctx context.Context) ([]*models.Update, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Update{}
	for _, u := range f.updates {
		if u.IsFeatured {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUpdateRepo) Update(ctx context.Context, update *models.Update) error {
	if _, ok := f.updates[update.ID]; !ok {
		return apperrors.ErrUpdateNotFound
	}
	f.updates[update.ID] = update
	return nil
}

func (f *fakeUpdateRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.updates[id]; !ok {
		return apperrors.ErrUpdateNotFound
	}
	delete(f.updates, id)
	return nil
}

func TestCreateUpdateRecordsAuthor(t *testing.T) {
	repo := newFakeUpdateRepo()
	staffRepo := &fakeStaffReader{staff: map[int64]*models.StaffMember{
		1: {ID: 1, Name: "Administrator", Role: models.RoleAdmin},
	}}
	svc := NewUpdateService(repo, staffRepo)

	id, err := svc.CreateUpdate(context.Background(), &dto.CreateUpdateRequest{
		Title:      "v2.1 release",
		Content:    "Changelog body",
		Version:    "2.1.0",
		Category:   "release",
		Priority:   "high",
		IsFeatured: true,
	}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update := repo.updates[id]
	if update.AuthorID != 1 || update.AuthorName != "Administrator" {
		t.Errorf("expected author recorded, got id=%d name=%q", update.AuthorID, update.AuthorName)
	}
	if !update.IsFeatured {
		t.Error("expected featured flag preserved")
	}
}

func TestCreateUpdateRejectsUnknownPriority(t *testing.T) {
	svc := NewUpdateService(newFakeUpdateRepo(), &fakeStaffReader{staff: map[int64]*models.StaffMember{
		1: {ID: 1, Name: "Administrator", Role: models.RoleAdmin},
	}})

	_, err := svc.CreateUpdate(context.Background(), &dto.CreateUpdateRequest{
		Title:    "Title",
		Content:  "Body",
		Category: "release",
		Priority: "urgent",
	}, 1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}

func TestUpdateUpdatePreservesAuthorship(t *testing.T) {
	repo := newFakeUpdateRepo()
	repo.updates[1] = &models.Update{
		ID: 1, Title: "Original", Content: "Body", Category: "release",
		Priority: models.UpdatePriorityLow, AuthorID: 1, AuthorName: "Administrator",
	}
	repo.nextID = 2
	svc := NewUpdateService(repo, &fakeStaffReader{})

	err := svc.UpdateUpdate(context.Background(), 1, &dto.UpdateUpdateRequest{
		Title:    "Edited",
		Content:  "New body",
		Category: "release",
		Priority: "medium",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	update := repo.updates[1]
	if update.Title != "Edited" {
		t.Errorf("expected edited title, got %q", update.Title)
	}
	if update.AuthorID != 1 || update.AuthorName != "Administrator" {
		t.Error("editing must not change authorship")
	}
}

func TestListFeaturedUpdatesDegradesToEmptyOnFailure(t *testing.T) {
	repo := newFakeUpdateRepo()
	repo.listErr = errors.New("query failed")
	svc := NewUpdateService(repo, &fakeStaffReader{})

	updates, err := svc.ListFeaturedUpdates(context.Background())
	if err != nil {
		t.Fatalf("expected no error on list failure, got %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("expected empty list, got %d", len(updates))
	}
}
