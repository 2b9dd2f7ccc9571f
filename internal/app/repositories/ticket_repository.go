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
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// TicketRepository handles support ticket database operations
type TicketRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const ticketColumns = "id, title, description, category, priority, user_name, user_email, user_identifier, status, admin_response, resolved_by, created_at, resolved_at"

func scanTicket(row pgx.Row) (*models.SupportTicket, error) {
	t := &models.SupportTicket{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Category,
		&t.Priority,
		&t.UserName,
		&t.UserEmail,
		&t.UserIdentifier,
		&t.Status,
		&t.AdminResponse,
		&t.ResolvedBy,
		&t.CreatedAt,
		&t.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new pending ticket and returns its id
func (r *TicketRepository) Create(ctx context.Context, ticket *models.SupportTicket) (int64, error) {
	sql, args, err := r.sb.Insert("support_tickets").
		Columns("title", "description", "category", "priority", "user_name", "user_email", "user_identifier", "status").
		Values(ticket.Title, ticket.Description, ticket.Category, ticket.Priority,
			ticket.UserName, ticket.UserEmail, ticket.UserIdentifier, models.TicketPending).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create ticket query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create ticket query")
		return 0, fmt.Errorf("error creating ticket: %w", err)
	}

	return id, nil
}

// GetByID retrieves a ticket by id
func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	sql, args, err := r.sb.Select(ticketColumns).
		From("support_tickets").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get ticket query: %w", err)
	}

	ticket, err := scanTicket(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTicketNotFound
		}
		logger.Error().Err(err).Int64("ticketID", id).Msg("Error scanning ticket row")
		return nil, fmt.Errorf("error getting ticket by ID: %w", err)
	}

	return ticket, nil
}

// ListByStatus retrieves tickets with the given status in creation order
func (r *TicketRepository) ListByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error) {
	return r.list(ctx, squirrel.Eq{"status": status})
}

// ListByUserIdentifier retrieves the tickets submitted by a returning browser
func (r *TicketRepository) ListByUserIdentifier(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error) {
	return r.list(ctx, squirrel.Eq{"user_identifier": userIdentifier})
}

func (r *TicketRepository) list(ctx context.Context, where interface{}) ([]*models.SupportTicket, error) {
	sql, args, err := r.sb.Select(ticketColumns).
		From("support_tickets").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list tickets query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list tickets query")
		return nil, fmt.Errorf("error querying tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*models.SupportTicket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning ticket row during list")
			return nil, fmt.Errorf("error scanning ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ticket rows: %w", err)
	}

	return tickets, nil
}

// Resolve moves a pending ticket to resolved, recording the resolver and an
// optional response. The status guard in the WHERE clause makes the
// transition one-way.
func (r *TicketRepository) Resolve(ctx context.Context, id int64, adminResponse *string, resolvedBy string) error {
	sql, args, err := r.sb.Update("support_tickets").
		SetMap(map[string]interface{}{
			"status":         models.TicketResolved,
			"admin_response": adminResponse,
			"resolved_by":    resolvedBy,
			"resolved_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id, "status": models.TicketPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build resolve ticket query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("ticketID", id).Msg("Error executing resolve ticket query")
		return fmt.Errorf("error resolving ticket: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing ticket from one already resolved
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return apperrors.ErrTicketAlreadyResolved
	}

	return nil
}

// Delete deletes a ticket by id. Deletion is permitted from either status.
func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("support_tickets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete ticket query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("ticketID", id).Msg("Error executing delete ticket query")
		return fmt.Errorf("error deleting ticket: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTicketNotFound
	}

	return nil
}
