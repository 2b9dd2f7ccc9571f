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
	"github.com/kaan/gamerhub/internal/pkg/helpers"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// PostRepository handles post and post-like database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const postColumns = "id, title, content, excerpt, image_url, author_id, author_name, author_avatar, author_type, likes_count, created_at"

func scanPost(row pgx.Row, extra ...interface{}) (*models.Post, error) {
	p := &models.Post{}
	dest := []interface{}{
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.ImageURL,
		&p.AuthorID,
		&p.AuthorName,
		&p.AuthorAvatar,
		&p.AuthorType,
		&p.LikesCount,
		&p.CreatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post and returns its id
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	sql, args, err := r.sb.Insert("posts").
		Columns("title", "content", "excerpt", "image_url", "author_id", "author_name", "author_avatar", "author_type").
		Values(post.Title, post.Content, post.Excerpt, post.ImageURL,
			post.AuthorID, post.AuthorName, post.AuthorAvatar, post.AuthorType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create post query")
		return 0, fmt.Errorf("error creating post: %w", err)
	}

	return id, nil
}

// GetByID retrieves a post by id
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	sql, args, err := r.sb.Select(postColumns).
		From("posts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	post, err := scanPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error scanning post row")
		return nil, fmt.Errorf("error getting post by ID: %w", err)
	}

	return post, nil
}

// List retrieves a page of posts, newest first, with the total row count.
func (r *PostRepository) List(ctx context.Context, page, pageSize int) ([]*models.Post, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select(postColumns + ", COUNT(*) OVER() AS total_count").
		From("posts").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list posts query")
		return nil, 0, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	var total int64
	for rows.Next() {
		post, err := scanPost(rows, &total)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning post row during list")
			return nil, 0, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating post rows: %w", err)
	}

	// An empty page carries no window count; fetch the total separately so
	// out-of-range pages still report correct pagination.
	if len(posts) == 0 {
		countSql, countArgs, err := r.sb.Select("COUNT(*)").From("posts").ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to build count posts query: %w", err)
		}
		if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error counting posts: %w", err)
		}
	}

	return posts, total, nil
}

// ListTrending retrieves posts at or above the trending like threshold,
// most liked first.
func (r *PostRepository) ListTrending(ctx context.Context) ([]*models.Post, error) {
	sql, args, err := r.sb.Select(postColumns).
		From("posts").
		Where(squirrel.GtOrEq{"likes_count": models.TrendingThreshold}).
		OrderBy("likes_count DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build trending posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing trending posts query")
		return nil, fmt.Errorf("error querying trending posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// Update updates an existing post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	sql, args, err := r.sb.Update("posts").
		SetMap(map[string]interface{}{
			"title":     post.Title,
			"content":   post.Content,
			"excerpt":   post.Excerpt,
			"image_url": post.ImageURL,
		}).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", post.ID).Msg("Error executing update post query")
		return fmt.Errorf("error updating post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete deletes a post by id. Comments and like markers go with it via
// cascading foreign keys.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", id).Msg("Error executing delete post query")
		return fmt.Errorf("error deleting post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Like records a like for a post on behalf of a user identifier. The marker
// insert and the counter increment run in one transaction, so the unique
// constraint on (post_id, user_identifier) is the only arbiter: a duplicate
// attempt returns apperrors.ErrAlreadyLiked and never bumps the counter.
func (r *PostRepository) Like(ctx context.Context, postID int64, userIdentifier string) (int, error) {
	var likesCount int

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSql, insertArgs, err := r.sb.Insert("post_likes").
			Columns("post_id", "user_identifier").
			Values(postID, userIdentifier).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build like insert query: %w", err)
		}

		if _, err := tx.Exec(ctx, insertSql, insertArgs...); err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrAlreadyLiked
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrPostNotFound
			}
			return fmt.Errorf("error inserting like marker: %w", err)
		}

		updateSql, updateArgs, err := r.sb.Update("posts").
			Set("likes_count", squirrel.Expr("likes_count + 1")).
			Where(squirrel.Eq{"id": postID}).
			Suffix("RETURNING likes_count").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build like counter query: %w", err)
		}

		if err := tx.QueryRow(ctx, updateSql, updateArgs...).Scan(&likesCount); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrPostNotFound
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
