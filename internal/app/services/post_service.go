package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// excerptLength is the number of runes kept when deriving an excerpt from
// post content.
const excerptLength = 150

// PostService defines the interface for community post operations
type PostService interface {
	CreatePost(ctx context.Context, req *dto.CreatePostRequest, authorID int64) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context, page, pageSize int) ([]*models.Post, int64, error)
	ListTrendingPosts(ctx context.Context) ([]*models.Post, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest, actorID int64, actorRole models.RoleType) error
	DeletePost(ctx context.Context, id int64, actorID int64, actorRole models.RoleType) error
	LikePost(ctx context.Context, id int64, userIdentifier string) *dto.LikeResponse
}

// postRepository is the data access needed by the post service
type postRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Post, int64, error)
	ListTrending(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, postID int64, userIdentifier string) (int, error)
}

// postAuthorReader resolves and updates the author side of a post
type postAuthorReader interface {
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
	IncrementPostCount(ctx context.Context, id int64) error
}

// storedImageRemover deletes a post's uploaded image from storage
type storedImageRemover interface {
	DeleteFile(filePath string) error
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postRepo  postRepository
	staffRepo postAuthorReader
	images    storedImageRemover
}

// NewPostService creates a new post service instance
func NewPostService(postRepo postRepository, staffRepo postAuthorReader, images storedImageRemover) PostService {
	return &postServiceImpl{
		postRepo:  postRepo,
		staffRepo: staffRepo,
		images:    images,
	}
}

// deriveExcerpt produces a short preview from post content when the author
// did not supply one.
func deriveExcerpt(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= excerptLength {
		return content
	}
	runes := []rune(content)
	return strings.TrimSpace(string(runes[:excerptLength])) + "..."
}

// CreatePost publishes a post on behalf of the authenticated author. Author
// identity is denormalized onto the post so it survives roster changes, and
// the author's post counter is bumped.
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest, authorID int64) (int64, error) {
	author, err := s.staffRepo.GetByID(ctx, authorID)
	if err != nil {
		return 0, err
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = deriveExcerpt(req.Content)
	}

	authorType := models.AuthorStaff
	if author.Role == models.RoleAdmin {
		authorType = models.AuthorAdmin
	}

	post := &models.Post{
		Title:        req.Title,
		Content:      req.Content,
		Excerpt:      excerpt,
		ImageURL:     req.ImageURL,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		AuthorType:   authorType,
	}

	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	if err := s.staffRepo.IncrementPostCount(ctx, author.ID); err != nil {
		logger.Error().Err(err).Int64("staffID", author.ID).Msg("Failed to bump author post counter")
	}

	return id, nil
}

// GetPostByID retrieves a post by id
func (s *postServiceImpl) GetPostByID(ctx context.Context, id int64) (*models.Post, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts retrieves a page of posts, newest first. A repository failure
// degrades to an empty page.
func (s *postServiceImpl) ListPosts(ctx context.Context, page, pageSize int) ([]*models.Post, int64, error) {
	posts, total, err := s.postRepo.List(ctx, page, pageSize)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list posts, returning empty list")
		return []*models.Post{}, 0, nil
	}
	return posts, total, nil
}

// ListTrendingPosts retrieves the posts above the trending threshold, with
// the same degrade-to-empty behavior as ListPosts.
func (s *postServiceImpl) ListTrendingPosts(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.ListTrending(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list trending posts, returning empty list")
		return []*models.Post{}, nil
	}
	return posts, nil
}

// canEditPost reports whether the actor may modify the post. The author may,
// and the admin may regardless of authorship.
func canEditPost(post *models.Post, actorID int64, actorRole models.RoleType) bool {
	return actorRole == models.RoleAdmin || post.AuthorID == actorID
}

// UpdatePost edits a post. Only the author or the admin may edit.
func (s *postServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdatePostRequest, actorID int64, actorRole models.RoleType) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canEditPost(post, actorID, actorRole) {
		return apperrors.NewForbiddenError("only the author or an admin can edit this post")
	}

	post.Title = req.Title
	post.Content = req.Content
	post.ImageURL = req.ImageURL

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = deriveExcerpt(req.Content)
	}
	post.Excerpt = excerpt

	return s.postRepo.Update(ctx, post)
}

// DeletePost deletes a post. Only the author or the admin may delete.
func (s *postServiceImpl) DeletePost(ctx context.Context, id int64, actorID int64, actorRole models.RoleType) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canEditPost(post, actorID, actorRole) {
		return apperrors.NewForbiddenError("only the author or an admin can delete this post")
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	// The stored image goes with the post; a storage failure only leaks a file
	if post.ImageURL != "" {
		if err := s.images.DeleteFile(post.ImageURL); err != nil {
			logger.Error().Err(err).Int64("postID", id).Msg("Failed to delete stored post image")
		}
	}

	return nil
}

// LikePost records a like from a returning browser. A duplicate like is a
// structured rejection rather than an error; repository failures degrade to
// the same rejection shape so the page keeps rendering.
func (s *postServiceImpl) LikePost(ctx context.Context, id int64, userIdentifier string) *dto.LikeResponse {
	likesCount, err := s.postRepo.Like(ctx, id, userIdentifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyLiked) {
			return &dto.LikeResponse{
				Success: false,
				Message: "already liked",
			}
		}
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return &dto.LikeResponse{
				Success: false,
				Message: "post not found",
			}
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Failed to record post like")
		return &dto.LikeResponse{
			Success: false,
			Message: "could not record like",
		}
	}

	return &dto.LikeResponse{
		Success:    true,
		LikesCount: likesCount,
	}
}
