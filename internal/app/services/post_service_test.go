package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
)

type fakePostRepo struct {
	posts     map[int64]*models.Post
	nextID    int64
	likes     map[string]bool
	likeErr   error
	listErr   error
	deletedID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:  map[int64]*models.Post{},
		nextID: 1,
		likes:  map[string]bool{},
	}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	post.ID = f.nextID
	f.posts[post.ID] = post
	f.nextID++
	return post.ID, nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostRepo) List(ctx context.Context, page, pageSize int) ([]*models.Post, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	out := []*models.Post{}
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePostRepo) ListTrending(ctx context.Context) ([]*models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []*models.Post{}
	for _, p := range f.posts {
		if p.IsTrending() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(ctx context.Context, post *models.Post) error {
	if _, ok := f.posts[post.ID]; !ok {
		return apperrors.ErrPostNotFound
	}
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return apperrors.ErrPostNotFound
	}
	delete(f.posts, id)
	f.deletedID = id
	return nil
}

func (f *fakePostRepo) Like(ctx context.Context, postID int64, userIdentifier string) (int, error) {
	if f.likeErr != nil {
		return 0, f.likeErr
	}
	post, ok := f.posts[postID]
	if !ok {
		return 0, apperrors.ErrPostNotFound
	}
	key := fmt.Sprintf("%d:%s", postID, userIdentifier)
	if f.likes[key] {
		return 0, apperrors.ErrAlreadyLiked
	}
	f.likes[key] = true
	post.LikesCount++
	return post.LikesCount, nil
}

type fakeStaffReader struct {
	staff      map[int64]*models.StaffMember
	increments []int64
	incrErr    error
}

func (f *fakeStaffReader) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	member, ok := f.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeStaffReader) IncrementPostCount(ctx context.Context, id int64) error {
	if f.incrErr != nil {
		return f.incrErr
	}
	f.increments = append(f.increments, id)
	return nil
}

type fakeImageRemover struct {
	deleted   []string
	deleteErr error
}

func (f *fakeImageRemover) DeleteFile(filePath string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, filePath)
	return nil
}

func testPostService() (PostService, *fakePostRepo, *fakeStaffReader, *fakeImageRemover) {
	postRepo := newFakePostRepo()
	staffRepo := &fakeStaffReader{staff: map[int64]*models.StaffMember{
		1: {ID: 1, Name: "Admin", Role: models.RoleAdmin},
		2: {ID: 2, Name: "Kaya", Role: models.RoleStaff, Avatar: "http://img/kaya.png"},
	}}
	images := &fakeImageRemover{}
	return NewPostService(postRepo, staffRepo, images), postRepo, staffRepo, images
}

func TestDeriveExcerpt(t *testing.T) {
	short := "a short post body"
	if got := deriveExcerpt(short); got != short {
		t.Errorf("short content should be its own excerpt, got %q", got)
	}

	long := strings.Repeat("word ", 100)
	got := deriveExcerpt(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long content excerpt should end with ellipsis, got %q", got)
	}
	if utf8.RuneCountInString(got) > excerptLength+3 {
		t.Errorf("excerpt too long: %d runes", utf8.RuneCountInString(got))
	}
}

func TestCreatePostDenormalizesAuthor(t *testing.T) {
	svc, postRepo, staffRepo, _ := testPostService()

	id, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:   "Patch notes",
		Content: "The content of the patch notes post.",
	}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	post := postRepo.posts[id]
	if post.AuthorName != "Kaya" {
		t.Errorf("expected author name denormalized, got %q", post.AuthorName)
	}
	if post.AuthorType != models.AuthorStaff {
		t.Errorf("expected staff author type, got %q", post.AuthorType)
	}
	if post.Excerpt == "" {
		t.Error("expected excerpt derived from content")
	}
	if len(staffRepo.increments) != 1 || staffRepo.increments[0] != 2 {
		t.Errorf("expected one post-count increment for staff 2, got %v", staffRepo.increments)
	}
}

func TestCreatePostSurvivesCounterFailure(t *testing.T) {
	svc, _, staffRepo, _ := testPostService()
	staffRepo.incrErr = errors.New("counter update failed")

	if _, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		Title:   "Title",
		Content: "Body",
	}, 1); err != nil {
		t.Fatalf("post creation should not fail on counter error, got %v", err)
	}
}

func TestLikePostDuplicateIsRejectedNotError(t *testing.T) {
	svc, postRepo, _, _ := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, Title: "Hello"}
	postRepo.nextID = 2

	first := svc.LikePost(context.Background(), 1, "visitor-a")
	if !first.Success {
		t.Fatalf("first like should succeed: %+v", first)
	}
	if first.LikesCount != 1 {
		t.Errorf("expected likes count 1, got %d", first.LikesCount)
	}

	second := svc.LikePost(context.Background(), 1, "visitor-a")
	if second.Success {
		t.Fatal("duplicate like should be rejected")
	}
	if postRepo.posts[1].LikesCount != 1 {
		t.Errorf("duplicate like must not change the counter, got %d", postRepo.posts[1].LikesCount)
	}
}

func TestLikePostFailureDegradesToRejection(t *testing.T) {
	svc, postRepo, _, _ := testPostService()
	postRepo.likeErr = errors.New("database down")

	resp := svc.LikePost(context.Background(), 1, "visitor-a")
	if resp.Success {
		t.Fatal("like against a failing store should be rejected")
	}
	if resp.Message == "" {
		t.Error("rejection should carry a message")
	}
}

func TestUpdatePostOwnership(t *testing.T) {
	svc, postRepo, _, _ := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, Title: "Original", Content: "Body", AuthorID: 2}
	postRepo.nextID = 2

	req := &dto.UpdatePostRequest{Title: "Edited", Content: "New body"}

	// A different staff member cannot edit
	err := svc.UpdatePost(context.Background(), 1, req, 3, models.RoleStaff)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for non-author, got %v", err)
	}

	// The author can edit
	if err := svc.UpdatePost(context.Background(), 1, req, 2, models.RoleStaff); err != nil {
		t.Fatalf("author edit should succeed, got %v", err)
	}

	// The admin can edit regardless of authorship
	if err := svc.UpdatePost(context.Background(), 1, req, 1, models.RoleAdmin); err != nil {
		t.Fatalf("admin edit should succeed, got %v", err)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	svc, postRepo, _, _ := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, AuthorID: 2}
	postRepo.nextID = 2

	err := svc.DeletePost(context.Background(), 1, 3, models.RoleStaff)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for non-author, got %v", err)
	}

	if err := svc.DeletePost(context.Background(), 1, 2, models.RoleStaff); err != nil {
		t.Fatalf("author delete should succeed, got %v", err)
	}
	if postRepo.deletedID != 1 {
		t.Error("expected post 1 to be deleted")
	}
}

func TestDeletePostRemovesStoredImage(t *testing.T) {
	svc, postRepo, _, images := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, AuthorID: 2, ImageURL: "http://localhost:8080/uploads/abc.png"}
	postRepo.nextID = 2

	if err := svc.DeletePost(context.Background(), 1, 2, models.RoleStaff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images.deleted) != 1 || images.deleted[0] != "http://localhost:8080/uploads/abc.png" {
		t.Errorf("expected the stored image removed, got %v", images.deleted)
	}
}

func TestDeletePostSurvivesImageRemovalFailure(t *testing.T) {
	svc, postRepo, _, images := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, AuthorID: 2, ImageURL: "http://localhost:8080/uploads/abc.png"}
	postRepo.nextID = 2
	images.deleteErr = errors.New("disk failure")

	if err := svc.DeletePost(context.Background(), 1, 2, models.RoleStaff); err != nil {
		t.Fatalf("image cleanup failure must not fail the delete, got %v", err)
	}
	if _, ok := postRepo.posts[1]; ok {
		t.Error("expected the post removed despite the storage failure")
	}
}

func TestDeletePostWithoutImageSkipsStorage(t *testing.T) {
	svc, postRepo, _, images := testPostService()
	postRepo.posts[1] = &models.Post{ID: 1, AuthorID: 2}
	postRepo.nextID = 2

	if err := svc.DeletePost(context.Background(), 1, 2, models.RoleStaff); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(images.deleted) != 0 {
		t.Errorf("expected no storage calls for an image-less post, got %v", images.deleted)
	}
}

func TestListPostsDegradesToEmptyOnFailure(t *testing.T) {
	svc, postRepo, _, _ := testPostService()
	postRepo.listErr = errors.New("query failed")

	posts, total, err := svc.ListPosts(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("expected no error on list failure, got %v", err)
	}
	if len(posts) != 0 || total != 0 {
		t.Errorf("expected empty page, got %d posts / total %d", len(posts), total)
	}
}
