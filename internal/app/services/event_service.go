package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) (int64, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	GetSliderEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}

// eventRepository is the data access needed by the event service
type eventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	GetSlider(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo eventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo eventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

// validateEvent validates event data before database operations
func validateEvent(event *models.Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(event.Date) == "" {
		return fmt.Errorf("%w: date cannot be empty", apperrors.ErrValidationFailed)
	}

	if !models.ValidEventStatus(event.Status) {
		return fmt.Errorf("%w: unknown event status %q", apperrors.ErrValidationFailed, event.Status)
	}

	return nil
}

// CreateEvent creates a new event
func (s *eventServiceImpl) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	if err := validateEvent(event); err != nil {
		return 0, err
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return id, nil
}

// GetEventByID retrieves an event by id
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// GetAllEvents retrieves all events. A repository failure degrades to an
// empty list so the events page still renders.
func (s *eventServiceImpl) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list events, returning empty list")
		return []*models.Event{}, nil
	}
	return events, nil
}

// GetSliderEvents retrieves the upcoming and ongoing events for the home
// slider, with the same degrade-to-empty behavior as GetAllEvents.
func (s *eventServiceImpl) GetSliderEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.GetSlider(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list slider events, returning empty list")
		return []*models.Event{}, nil
	}
	return events, nil
}

// UpdateEvent updates an existing event
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, event *models.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	if event.ID <= 0 {
		return fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return err
	}
	return nil
}

// DeleteEvent deletes an event by id
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
