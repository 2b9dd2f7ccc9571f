package services

import (
	"context"
	"fmt"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// UpdateService defines the interface for site update operations
type UpdateService interface {
	CreateUpdate(ctx context.Context, req *dto.CreateUpdateRequest, authorID int64) (int64, error)
	GetUpdateByID(ctx context.Context, id int64) (*models.Update, error)
	ListUpdates(ctx context.Context, page, pageSize int) ([]*models.Update, int64, error)
	ListFeaturedUpdates(ctx context.Context) ([]*models.Update, error)
	UpdateUpdate(ctx context.Context, id int64, req *dto.UpdateUpdateRequest) error
	DeleteUpdate(ctx context.Context, id int64) error
}

// updateRepository is the data access needed by the update service
type updateRepository interface {
	Create(ctx context.Context, update *models.Update) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Update, error)
	List(ctx context.Context, page, pageSize int) ([]*models.Update, int64, error)
	ListFeatured(ctx context.Context) ([]*models.Update, error)
	Update(ctx context.Context, update *models.Update) error
	Delete(ctx context.Context, id int64) error
}

// updateAuthorReader resolves the publishing operator
type updateAuthorReader interface {
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
}

// updateServiceImpl implements the UpdateService interface
type updateServiceImpl struct {
	updateRepo updateRepository
	staffRepo  updateAuthorReader
}

// NewUpdateService creates a new update service instance
func NewUpdateService(updateRepo updateRepository, staffRepo updateAuthorReader) UpdateService {
	return &updateServiceImpl{
		updateRepo: updateRepo,
		staffRepo:  staffRepo,
	}
}

// CreateUpdate publishes a site update under the authenticated operator's name
func (s *updateServiceImpl) CreateUpdate(ctx context.Context, req *dto.CreateUpdateRequest, authorID int64) (int64, error) {
	priority := models.UpdatePriority(req.Priority)
	if !models.ValidUpdatePriority(priority) {
		return 0, fmt.Errorf("%w: unknown update priority %q", apperrors.ErrValidationFailed, req.Priority)
	}

	author, err := s.staffRepo.GetByID(ctx, authorID)
	if err != nil {
		return 0, err
	}

	update := &models.Update{
		Title:      req.Title,
		Content:    req.Content,
		Version:    req.Version,
		Category:   req.Category,
		Priority:   priority,
		IsFeatured: req.IsFeatured,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}

	id, err := s.updateRepo.Create(ctx, update)
	if err != nil {
		return 0, fmt.Errorf("error creating update: %w", err)
	}
	return id, nil
}

// GetUpdateByID retrieves a site update by id
func (s *updateServiceImpl) GetUpdateByID(ctx context.Context, id int64) (*models.Update, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid update ID", apperrors.ErrValidationFailed)
	}
	return s.updateRepo.GetByID(ctx, id)
}

// ListUpdates retrieves a page of site updates, newest first, degrading to an
// empty page on failure.
func (s *updateServiceImpl) ListUpdates(ctx context.Context, page, pageSize int) ([]*models.Update, int64, error) {
	updates, total, err := s.updateRepo.List(ctx, page, pageSize)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list updates, returning empty list")
		return []*models.Update{}, 0, nil
	}
	return updates, total, nil
}

// ListFeaturedUpdates retrieves the featured updates, degrading to an empty
// list on failure.
func (s *updateServiceImpl) ListFeaturedUpdates(ctx context.Context) ([]*models.Update, error) {
	updates, err := s.updateRepo.ListFeatured(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list featured updates, returning empty list")
		return []*models.Update{}, nil
	}
	return updates, nil
}

// UpdateUpdate edits an existing site update. Authorship is preserved.
func (s *updateServiceImpl) UpdateUpdate(ctx context.Context, id int64, req *dto.UpdateUpdateRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid update ID", apperrors.ErrValidationFailed)
	}

	priority := models.UpdatePriority(req.Priority)
	if !models.ValidUpdatePriority(priority) {
		return fmt.Errorf("%w: unknown update priority %q", apperrors.ErrValidationFailed, req.Priority)
	}

	update, err := s.updateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	update.Title = req.Title
	update.Content = req.Content
	update.Version = req.Version
	update.Category = req.Category
	update.Priority = priority
	update.IsFeatured = req.IsFeatured

	return s.updateRepo.Update(ctx, update)
}

// DeleteUpdate deletes a site update by id
func (s *updateServiceImpl) DeleteUpdate(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid update ID", apperrors.ErrValidationFailed)
	}
	return s.updateRepo.Delete(ctx, id)
}
