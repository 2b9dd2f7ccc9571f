package services

import (
	"context"
	"errors"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/auth"
	"github.com/kaan/gamerhub/internal/pkg/logger"
)

// AuthService defines the interface for panel authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, staffID int64) (*dto.MeResponse, error)
}

// staffCredentialReader is the data access needed by the auth service
type staffCredentialReader interface {
	GetByID(ctx context.Context, id int64) (*models.StaffMember, error)
	GetByUsername(ctx context.Context, username string) (*models.StaffMember, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	staffRepo  staffCredentialReader
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(staffRepo staffCredentialReader, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials against the stored bcrypt hash and issues an
// access token. A missing account and a wrong password are indistinguishable
// to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(staff.PasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(staff)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		ID:          staff.ID,
		Name:        staff.Name,
		Username:    staff.Username,
		Role:        string(staff.Role),
		Avatar:      staff.Avatar,
	}, nil
}

// Me returns the profile behind a validated token's staff ID
func (s *authServiceImpl) Me(ctx context.Context, staffID int64) (*dto.MeResponse, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		ID:       staff.ID,
		Name:     staff.Name,
		Username: staff.Username,
		Role:     string(staff.Role),
		Avatar:   staff.Avatar,
	}, nil
}
