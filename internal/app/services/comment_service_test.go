package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
)

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
	likes    map[string]bool
	postIDs  map[int64]bool
	listErr  error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: map[int64]*models.Comment{},
		nextID:   1,
		likes:    map[string]bool{},
		postIDs:  map[int64]bool{1: true},
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	if !f.postIDs[comment.PostID] {
		return 0, apperrors.ErrPostNotFound
	}
	comment.ID = f.nextID
	f.comments[comment.ID] = comment
	f.nextID++
	return comment.ID, nil
}

func (f *fakeCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.comments[id]; !ok {
		return apperrors.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) Like(ctx context.Context, commentID int64, userIdentifier string) (int, error) {
	comment, ok := f.comments[commentID]
	if !ok {
		return 0, apperrors.ErrCommentNotFound
	}
	key := fmt.Sprintf("%d:%s", commentID, userIdentifier)
	if f.likes[key] {
		return 0, apperrors.ErrAlreadyLiked
	}
	f.likes[key] = true
	comment.LikesCount++
	return comment.LikesCount, nil
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo())

	_, err := svc.CreateComment(context.Background(), 99, &dto.CreateCommentRequest{
		UserName:       "Visitor",
		UserIdentifier: "visitor-a",
		Content:        "Nice post",
	})
	if !errors.Is(err, apperrors.ErrPostNotFound) {
		t.Fatalf("expected post-not-found, got %v", err)
	}
}

func TestLikeCommentDuplicateLeavesCounter(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo)

	id, err := svc.CreateComment(context.Background(), 1, &dto.CreateCommentRequest{
		UserName:       "Visitor",
		UserIdentifier: "visitor-a",
		Content:        "Nice post",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := svc.LikeComment(context.Background(), id, "visitor-b")
	if !first.Success || first.LikesCount != 1 {
		t.Fatalf("first like should succeed with count 1: %+v", first)
	}

	second := svc.LikeComment(context.Background(), id, "visitor-b")
	if second.Success {
		t.Fatal("duplicate like should be rejected")
	}
	if repo.comments[id].LikesCount != 1 {
		t.Errorf("duplicate like must not change the counter, got %d", repo.comments[id].LikesCount)
	}
}

func TestListCommentsDegradesToEmptyOnFailure(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.listErr = errors.New("query failed")
	svc := NewCommentService(repo)

	comments, err := svc.ListComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error on list failure, got %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("expected empty list, got %d", len(comments))
	}
}
