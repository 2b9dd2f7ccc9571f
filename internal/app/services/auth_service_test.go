package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kaan/gamerhub/internal/app/models"
	"github.com/kaan/gamerhub/internal/app/models/dto"
	"github.com/kaan/gamerhub/internal/pkg/apperrors"
	"github.com/kaan/gamerhub/internal/pkg/auth"
)

type fakeCredentialReader struct {
	members map[string]*models.StaffMember
}

func (f *fakeCredentialReader) GetByUsername(ctx context.Context, username string) (*models.StaffMember, error) {
	member, ok := f.members[username]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	return member, nil
}

func (f *fakeCredentialReader) GetByID(ctx context.Context, id int64) (*models.StaffMember, error) {
	for _, member := range f.members {
		if member.ID == id {
			return member, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo := &fakeCredentialReader{members: map[string]*models.StaffMember{
		"admin": {ID: 1, Name: "Administrator", Username: "admin", PasswordHash: hash, Role: models.RoleAdmin},
	}}
	svc := NewAuthService(repo, testJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("login should succeed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.Role != string(models.RoleAdmin) {
		t.Errorf("expected ADMIN role in response, got %q", resp.Role)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected 3600s expiry, got %d", resp.ExpiresIn)
	}

	// Issued token must validate and carry the operator identity
	claims, err := testJWTService().ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if claims.StaffID != 1 || claims.Role != string(models.RoleAdmin) {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := auth.HashPassword("secret123")
	repo := &fakeCredentialReader{members: map[string]*models.StaffMember{
		"admin": {ID: 1, Username: "admin", PasswordHash: hash, Role: models.RoleAdmin},
	}}
	svc := NewAuthService(repo, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestMeExcludesCredentials(t *testing.T) {
	hash, _ := auth.HashPassword("secret123")
	repo := &fakeCredentialReader{members: map[string]*models.StaffMember{
		"admin": {ID: 1, Name: "Administrator", Username: "admin", PasswordHash: hash, Role: models.RoleAdmin, Avatar: "https://example.com/a.png"},
	}}
	svc := NewAuthService(repo, testJWTService())

	profile, err := svc.Me(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID != 1 || profile.Username != "admin" || profile.Role != string(models.RoleAdmin) {
		t.Errorf("unexpected profile: %+v", profile)
	}

	_, err = svc.Me(context.Background(), 99)
	if !errors.Is(err, apperrors.ErrStaffNotFound) {
		t.Fatalf("expected not-found for unknown id, got %v", err)
	}
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	repo := &fakeCredentialReader{members: map[string]*models.StaffMember{}}
	svc := NewAuthService(repo, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("missing account must look like wrong password, got %v", err)
	}
}
