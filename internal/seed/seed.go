package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/kaan/gamerhub/internal/app/models"
	appRepos "github.com/kaan/gamerhub/internal/app/repositories"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminName     = "Administrator"
)

// CreateDefaultData seeds the admin account if it doesn't exist. The initial
// password comes from ADMIN_INITIAL_PASSWORD; without it the seeding is
// skipped so no account ever ships with a known credential.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	staffRepo := appRepos.NewStaffRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	if _, err := staffRepo.GetByUsername(ctx, defaultAdminUsername); err == nil {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	} else if !errors.Is(err, apperrors.ErrStaffNotFound) {
		lgr.Error().Err(err).Msg("Error checking for existing admin account")
		return err
	}

	initialPassword := os.Getenv("ADMIN_INITIAL_PASSWORD")
	if initialPassword == "" {
		lgr.Warn().Msg("ADMIN_INITIAL_PASSWORD not set - admin account not seeded")
		return nil
	}

	hash, err := auth.HashPassword(initialPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.StaffMember{
		Name:         defaultAdminName,
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Role:         appModels.RoleAdmin,
	}

	adminID, err := staffRepo.Create(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin account created successfully")
	return nil
}
