package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/helpers"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// UpdateRepository handles site update database operations
type UpdateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUpdateRepository creates a new UpdateRepository
func NewUpdateRepository(db *pgxpool.Pool) *UpdateRepository {
	return &UpdateRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const updateColumns = "id, title, content, version, category, priority, is_featured, author_id, author_name, created_at, updated_at"

func scanUpdate(row pgx.Row, extra ...interface{}) (*models.Update, error) {
	u := &models.Update{}
	dest := []interface{}{
		&u.ID,
		&u.Title,
		&u.Content,
		&u.Version,
		&u.Category,
		&u.Priority,
		&u.IsFeatured,
		&u.AuthorID,
		&u.AuthorName,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new site update and returns its id
func (r *UpdateRepository) Create(ctx context.Context, update *models.Update) (int64, error) {
	sql, args, err := r.sb.Insert("updates").
		Columns("title", "content", "version", "category", "priority", "is_featured", "author_id", "author_name").
		Values(update.Title, update.Content, update.Version, update.Category,
			update.Priority, update.IsFeatured, update.AuthorID, update.AuthorName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create update query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create update query")
		return 0, fmt.Errorf("error creating update: %w", err)
	}

	return id, nil
}

// GetByID retrieves a site update by id
func (r *UpdateRepository) GetByID(ctx context.Context, id int64) (*models.Update, error) {
	sql, args, err := r.sb.Select(updateColumns).
		From("updates").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get update query: %w", err)
	}

	update, err := scanUpdate(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUpdateNotFound
		}
		logger.Error().Err(err).Int64("updateID", id).Msg("Error scanning update row")
		return nil, fmt.Errorf("error getting update by ID: %w", err)
	}

	return update, nil
}

// List retrieves a page of site updates, newest first, with the total count.
func (r *UpdateRepository) List(ctx context.Context, page, pageSize int) ([]*models.Update, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select(updateColumns + ", COUNT(*) OVER() AS total_count").
		From("updates").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list updates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list updates query")
		return nil, 0, fmt.Errorf("error querying updates: %w", err)
	}
	defer rows.Close()

	updates := []*models.Update{}
	var total int64
	for rows.Next() {
		update, err := scanUpdate(rows, &total)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning update row during list")
			return nil, 0, fmt.Errorf("error scanning update row: %w", err)
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating update rows: %w", err)
	}

	if len(updates) == 0 {
		countSql, countArgs, err := r.sb.Select("COUNT(*)").From("updates").ToSql()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to build count updates query: %w", err)
		}
		if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("error counting updates: %w", err)
		}
	}

	return updates, total, nil
}

// ListFeatured retrieves the updates flagged for the featured view
func (r *UpdateRepository) ListFeatured(ctx context.Context) ([]*models.Update, error) {
	sql, args, err := r.sb.Select(updateColumns).
		From("updates").
		Where(squirrel.Eq{"is_featured": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build featured updates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing featured updates query")
		return nil, fmt.Errorf("error querying featured updates: %w", err)
	}
	defer rows.Close()

	updates := []*models.Update{}
	for rows.Next() {
		update, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning update row: %w", err)
		}
		updates = append(updates, update)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating update rows: %w", err)
	}

	return updates, nil
}

// Update updates an existing site update
func (r *UpdateRepository) Update(ctx context.Context, update *models.Update) error {
	sql, args, err := r.sb.Update("updates").
		SetMap(map[string]interface{}{
			"title":       update.Title,
			"content":     update.Content,
			"version":     update.Version,
			"category":    update.Category,
			"priority":    update.Priority,
			"is_featured": update.IsFeatured,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": update.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update site update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("updateID", update.ID).Msg("Error executing update site update query")
		return fmt.Errorf("error updating site update: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUpdateNotFound
	}

	return nil
}

// Delete deletes a site update by id
func (r *UpdateRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("updates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("updateID", id).Msg("Error executing delete update query")
		return fmt.Errorf("error deleting update: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUpdateNotFound
	}

	return nil
}
