package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/auth"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// StaffService defines the interface for staff roster operations
type StaffService interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (int64, error)
	GetStaffByID(ctx context.Context, id int64) (*models.StaffMember, error)
	GetRoster(ctx context.Context) ([]*models.StaffMember, error)
	UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) error
	DeleteStaff(ctx context.Context, id int64) error
}

// staffRepository is the data access needed by the staff service
type staffRepository interface {
	Create(ctx context.Context, staff *models.StaffMember) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
	GetAll(ctx context.Context) ([]*models.StaffMember, error)
	Update(ctx context.Context, staff *models.StaffMember) error
	Delete(ctx context.Context, id int64) error
}

// staffServiceImpl implements the StaffService interface
type staffServiceImpl struct {
	staffRepo staffRepository
}

// NewStaffService creates a new staff service instance
func NewStaffService(staffRepo staffRepository) StaffService {
	return &staffServiceImpl{
		staffRepo: staffRepo,
	}
}

// rosterRole validates a requested role. ADMIN is reserved for the seeded
// account and cannot be assigned through the panel.
func rosterRole(requested string) (models.RoleType, error) {
	role := models.RoleType(strings.ToUpper(strings.TrimSpace(requested)))
	if role == models.RoleAdmin {
		return "", apperrors.NewForbiddenError("the admin role cannot be assigned")
	}
	if role != models.RoleStaff {
		return "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, requested)
	}
	return role, nil
}

// CreateStaff creates a new roster member. Passwords are stored only as
// bcrypt hashes; a taken username surfaces as ErrUsernameAlreadyUsed.
func (s *staffServiceImpl) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (int64, error) {
	if strings.TrimSpace(req.Username) == "" {
		return 0, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	role, err := rosterRole(req.Role)
	if err != nil {
		return 0, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	staff := &models.StaffMember{
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
		Role:         role,
		Avatar:       req.Avatar,
		Joined:       req.Joined,
	}

	id, err := s.staffRepo.Create(ctx, staff)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
			return 0, apperrors.ErrUsernameAlreadyUsed
		}
		return 0, fmt.Errorf("error creating staff member: %w", err)
	}
	return id, nil
}

// GetStaffByID retrieves a roster member by id
func (s *staffServiceImpl) GetStaffByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}
	return s.staffRepo.GetByID(ctx, id)
}

// GetRoster retrieves the full roster, degrading to an empty list on failure
func (s *staffServiceImpl) GetRoster(ctx context.Context) ([]*models.StaffMember, error) {
	roster, err := s.staffRepo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list staff roster, returning empty list")
		return []*models.StaffMember{}, nil
	}
	return roster, nil
}

// UpdateStaff updates an existing roster member. An empty password keeps the
// stored hash; a non-empty one replaces it.
func (s *staffServiceImpl) UpdateStaff(ctx context.Context, id int64, req *dto.UpdateStaffRequest) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The seeded admin keeps its role; roster members stay non-admin
	if staff.Role != models.RoleAdmin {
		role, err := rosterRole(req.Role)
		if err != nil {
			return err
		}
		staff.Role = role
	}

	staff.Name = strings.TrimSpace(req.Name)
	staff.Username = strings.TrimSpace(req.Username)
	staff.Avatar = req.Avatar
	staff.Joined = req.Joined
	staff.Posts = req.Posts
	staff.Likes = req.Likes
	staff.Points = req.Points
	staff.Hits = req.Hits

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}
		staff.PasswordHash = hash
	}

	if err := s.staffRepo.Update(ctx, staff); err != nil {
		if errors.Is(err, apperrors.ErrUsernameAlreadyUsed) {
			return apperrors.ErrUsernameAlreadyUsed
		}
		return err
	}
	return nil
}

// DeleteStaff deletes a roster member by id
func (s *staffServiceImpl) DeleteStaff(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid staff ID", apperrors.ErrValidationFailed)
	}

	staff, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// The seeded admin account is not deletable
	if staff.Role == models.RoleAdmin {
		return apperrors.NewForbiddenError("the admin account cannot be deleted")
	}

	return s.staffRepo.Delete(ctx, id)
}
