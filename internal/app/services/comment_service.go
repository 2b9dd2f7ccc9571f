package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// CommentService defines the interface for post comment operations
type CommentService interface {
	CreateComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (int64, error)
	ListComments(ctx context.Context, postID int64) ([]*models.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
	LikeComment(ctx context.Context, id int64, userIdentifier string) *dto.LikeResponse
}

// commentRepository is the data access needed by the comment service
type commentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, commentID int64, userIdentifier string) (int, error)
}

// commentServiceImpl implements the CommentService interface
type commentServiceImpl struct {
	commentRepo commentRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo commentRepository) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
	}
}

// CreateComment adds a visitor comment to a post
func (s *commentServiceImpl) CreateComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (int64, error) {
	if postID <= 0 {
		return 0, fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	comment := &models.Comment{
		PostID:         postID,
		UserName:       req.UserName,
		UserIdentifier: req.UserIdentifier,
		Content:        req.Content,
	}

	id, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		if errors.Is(err, apperrors.ErrPostNotFound) {
			return 0, apperrors.ErrPostNotFound
		}
		return 0, fmt.Errorf("error creating comment: %w", err)
	}
	return id, nil
}

// ListComments retrieves the comments of a post in creation order, degrading
// to an empty list on failure.
func (s *commentServiceImpl) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("%w: invalid post ID", apperrors.ErrValidationFailed)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Failed to list comments, returning empty list")
		return []*models.Comment{}, nil
	}
	return comments, nil
}

// DeleteComment deletes a comment by id. Moderation only, so the route is
// admin gated.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid comment ID", apperrors.ErrValidationFailed)
	}
	return s.commentRepo.Delete(ctx, id)
}

// LikeComment records a like from a returning browser, with the same
// structured rejection contract as PostService.LikePost.
func (s *commentServiceImpl) LikeComment(ctx context.Context, id int64, userIdentifier string) *dto.LikeResponse {
	likesCount, err := s.commentRepo.Like(ctx, id, userIdentifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyLiked) {
			return &dto.LikeResponse{
				Success: false,
				Message: "already liked",
			}
		}
		if errors.Is(err, apperrors.ErrCommentNotFound) {
			return &dto.LikeResponse{
				Success: false,
				Message: "comment not found",
			}
		}
		logger.Error().Err(err).Int64("commentID", id).Msg("Failed to record comment like")
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
