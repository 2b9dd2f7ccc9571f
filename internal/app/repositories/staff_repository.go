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
	"github.com/kaan/gamerhub/internal/pkg/dberrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// StaffRepository handles staff roster database operations
type StaffRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const staffColumns = "id, name, username, password_hash, role, avatar, joined, posts, likes, points, hits, created_at"

func scanStaff(row pgx.Row) (*models.StaffMember, error) {
	m := &models.StaffMember{}
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Username,
		&m.PasswordHash,
		&m.Role,
		&m.Avatar,
		&m.Joined,
		&m.Posts,
		&m.Likes,
		&m.Points,
		&m.Hits,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new staff member. A duplicate username surfaces as
// apperrors.ErrUsernameAlreadyUsed via the unique constraint.
func (r *StaffRepository) Create(ctx context.Context, staff *models.StaffMember) (int64, error) {
	sql, args, err := r.sb.Insert("staff").
		Columns("name", "username", "password_hash", "role", "avatar", "joined").
		Values(staff.Name, staff.Username, staff.PasswordHash, staff.Role, staff.Avatar, staff.Joined).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create staff query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
		logger.Error().Err(err).Msg("Error executing create staff query")
		return 0, fmt.Errorf("error creating staff member: %w", err)
	}

	return id, nil
}

// GetByID retrieves a staff member by id
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	sql, args, err := r.sb.Select(staffColumns).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff query: %w", err)
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Int64("staffID", id).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff member by ID: %w", err)
	}

	return staff, nil
}

// GetByUsername retrieves a staff member by username, used for login
func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*models.StaffMember, error) {
	sql, args, err := r.sb.Select(staffColumns).
		From("staff").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get staff by username query: %w", err)
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning staff row")
		return nil, fmt.Errorf("error getting staff member by username: %w", err)
	}

	return staff, nil
}

// GetAll retrieves the full roster in creation order
func (r *StaffRepository) GetAll(ctx context.Context) ([]*models.StaffMember, error) {
	sql, args, err := r.sb.Select(staffColumns).
		From("staff").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list staff query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list staff query")
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	roster := []*models.StaffMember{}
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning staff row during list")
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		roster = append(roster, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}

	return roster, nil
}

// Update updates an existing staff member
func (r *StaffRepository) Update(ctx context.Context, staff *models.StaffMember) error {
	sql, args, err := r.sb.Update("staff").
		SetMap(map[string]interface{}{
			"name":          staff.Name,
			"username":      staff.Username,
			"password_hash": staff.PasswordHash,
			"role":          staff.Role,
			"avatar":        staff.Avatar,
			"joined":        staff.Joined,
			"posts":         staff.Posts,
			"likes":         staff.Likes,
			"points":        staff.Points,
			"hits":          staff.Hits,
		}).
		Where(squirrel.Eq{"id": staff.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		logger.Error().Err(err).Int64("staffID", staff.ID).Msg("Error executing update staff query")
		return fmt.Errorf("error updating staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// IncrementPostCount bumps the posts counter for a staff member
func (r *StaffRepository) IncrementPostCount(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("staff").
		Set("posts", squirrel.Expr("posts + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build increment post count query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error incrementing post count")
		return fmt.Errorf("error incrementing post count: %w", err)
	}

	return nil
}

// Delete deletes a staff member by id
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete staff query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("staffID", id).Msg("Error executing delete staff query")
		return fmt.Errorf("error deleting staff member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
