package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/db"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/dberrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// CommentRepository handles comment and comment-like database operations
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const commentColumns = "id, post_id, user_name, user_identifier, content, likes_count, created_at"

func scanComment(row pgx.Row) (*models.Comment, error) {
	c := &models.Comment{}
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.UserName,
		&c.UserIdentifier,
		&c.Content,
		&c.LikesCount,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new comment and returns its id
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (int64, error) {
	sql, args, err := r.sb.Insert("comments").
		Columns("post_id", "user_name", "user_identifier", "content").
		Values(comment.PostID, comment.UserName, comment.UserIdentifier, comment.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create comment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Msg("Error executing create comment query")
		return 0, fmt.Errorf("error creating comment: %w", err)
	}

	return id, nil
}

// ListByPost retrieves the comments of a post in creation order
func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	sql, args, err := r.sb.Select(commentColumns).
		From("comments").
		Where(squirrel.Eq{"post_id": postID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list comments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list comments query")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []*models.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning comment row during list")
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

// Delete deletes a comment by id
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete comment query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("commentID", id).Msg("Error executing delete comment query")
		return fmt.Errorf("error deleting comment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}

	return nil
}

// Like records a like for a comment on behalf of a user identifier. Same
// contract as PostRepository.Like: the unique marker constraint decides, and
// a duplicate never changes the counter.
func (r *CommentRepository) Like(ctx context.Context, commentID int64, userIdentifier string) (int, error) {
	var likesCount int

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSql, insertArgs, err := r.sb.Insert("comment_likes").
			Columns("comment_id", "user_identifier").
			Values(commentID, userIdentifier).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build like insert query: %w", err)
		}

		if _, err := tx.Exec(ctx, insertSql, insertArgs...); err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrAlreadyLiked
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCommentNotFound
			}
			return fmt.Errorf("error inserting like marker: %w", err)
		}

		updateSql, updateArgs, err := r.sb.Update("comments").
			Set("likes_count", squirrel.Expr("likes_count + 1")).
			Where(squirrel.Eq{"id": commentID}).
			Suffix("RETURNING likes_count").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build like counter query: %w", err)
		}

		if err := tx.QueryRow(ctx, updateSql, updateArgs...).Scan(&likesCount); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrCommentNotFound
			}
			return fmt.Errorf("error incrementing like counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return likesCount, nil
}
