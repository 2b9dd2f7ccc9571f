package services

import (
	"context"
	"fmt"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/email"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// TicketService defines the interface for support ticket operations
type TicketService interface {
	CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (int64, error)
	GetTicketByID(ctx context.Context, id int64) (*models.SupportTicket, error)
	ListMyTickets(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error)
	ListTicketsByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error)
	ResolveTicket(ctx context.Context, id int64, req *dto.ResolveTicketRequest, resolvedBy string) (*models.SupportTicket, error)
	DeleteTicket(ctx context.Context, id int64) error
}

// ticketRepository is the data access needed by the ticket service
type ticketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SupportTicket, error)
	ListByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error)
	ListByUserIdentifier(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error)
	Resolve(ctx context.Context, id int64, adminResponse *string, resolvedBy string) error
	Delete(ctx context.Context, id int64) error
}

// ticketServiceImpl implements the TicketService interface
type ticketServiceImpl struct {
	ticketRepo ticketRepository
	notifier   email.Notifier
}

// NewTicketService creates a new ticket service instance
func NewTicketService(ticketRepo ticketRepository, notifier email.Notifier) TicketService {
	return &ticketServiceImpl{
		ticketRepo: ticketRepo,
		notifier:   notifier,
	}
}

// CreateTicket records a new pending ticket from an anonymous visitor
func (s *ticketServiceImpl) CreateTicket(ctx context.Context, req *dto.CreateTicketRequest) (int64, error) {
	priority := models.TicketPriority(req.Priority)
	if !models.ValidTicketPriority(priority) {
		return 0, fmt.Errorf("%w: unknown ticket priority %q", apperrors.ErrValidationFailed, req.Priority)
	}

	ticket := &models.SupportTicket{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Priority:       priority,
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		UserIdentifier: req.UserIdentifier,
		Status:         models.TicketPending,
	}

	id, err := s.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return 0, fmt.Errorf("error creating ticket: %w", err)
	}
	return id, nil
}

// GetTicketByID retrieves a ticket by id
func (s *ticketServiceImpl) GetTicketByID(ctx context.Context, id int64) (*models.SupportTicket, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid ticket ID", apperrors.ErrValidationFailed)
	}
	return s.ticketRepo.GetByID(ctx, id)
}

// ListMyTickets retrieves the tickets submitted under a user identifier,
// degrading to an empty list on failure.
func (s *ticketServiceImpl) ListMyTickets(ctx context.Context, userIdentifier string) ([]*models.SupportTicket, error) {
	if userIdentifier == "" {
		return []*models.SupportTicket{}, nil
	}

	tickets, err := s.ticketRepo.ListByUserIdentifier(ctx, userIdentifier)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list visitor tickets, returning empty list")
		return []*models.SupportTicket{}, nil
	}
	return tickets, nil
}

// ListTicketsByStatus retrieves tickets for the admin panel queue, degrading
// to an empty list on failure.
func (s *ticketServiceImpl) ListTicketsByStatus(ctx context.Context, status models.TicketStatus) ([]*models.SupportTicket, error) {
	if status != models.TicketPending && status != models.TicketResolved {
		return nil, fmt.Errorf("%w: unknown ticket status %q", apperrors.ErrValidationFailed, status)
	}

	tickets, err := s.ticketRepo.ListByStatus(ctx, status)
	if err != nil {
		logger.Error().Err(err).Str("status", string(status)).Msg("Failed to list tickets, returning empty list")
		return []*models.SupportTicket{}, nil
	}
	return tickets, nil
}

// ResolveTicket moves a pending ticket to resolved and notifies the submitter
// by email. A mail failure is logged but never rolls back the resolution.
func (s *ticketServiceImpl) ResolveTicket(ctx context.Context, id int64, req *dto.ResolveTicketRequest, resolvedBy string) (*models.SupportTicket, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid ticket ID", apperrors.ErrValidationFailed)
	}

	var adminResponse *string
	if req.AdminResponse != "" {
		adminResponse = &req.AdminResponse
	}

	if err := s.ticketRepo.Resolve(ctx, id, adminResponse, resolvedBy); err != nil {
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.SendTicketResolvedEmail(ticket.UserEmail, ticket.UserName, ticket.Title, req.AdminResponse); err != nil {
		logger.Error().Err(err).Int64("ticketID", id).Msg("Failed to send ticket resolution email")
	}

	return ticket, nil
}

// DeleteTicket deletes a ticket by id
func (s *ticketServiceImpl) DeleteTicket(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid ticket ID", apperrors.ErrValidationFailed)
	}
	return s.ticketRepo.Delete(ctx, id)
}
