package usecase

import (
	"context"
	"errors"

	"housnkuh/internal/domain/vendor"
	"housnkuh/internal/pkg/jwt"
	"housnkuh/internal/pkg/password"
	"housnkuh/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVendorNotFound       = errors.New("vendor not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrVendorNotConfirmed   = errors.New("vendor email is not confirmed")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

// AuthenticatedVendor is the read model returned on login and /me.
type AuthenticatedVendor struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      string
	Confirmed bool
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *AuthenticatedVendor, error)
	GetCurrentVendor(ctx context.Context, vendorID uuid.UUID) (*AuthenticatedVendor, error)
	ValidateToken(tokenString string) (uuid.UUID, vendor.Role, error)
}

type authUseCaseImpl struct {
	reads      shared.CommandReads
	jwtService *jwt.Service
}

func NewAuthUseCase(reads shared.CommandReads, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		reads:      reads,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *AuthenticatedVendor, error) {
	normalized, err := vendor.NewEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	snapshot, err := a.reads.VendorByEmail(ctx, normalized.Value())
	if err != nil || snapshot == nil {
		return "", nil, ErrVendorNotFound
	}

	if err := password.ComparePassword(snapshot.PasswordHash, plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !snapshot.Confirmed {
		return "", nil, ErrVendorNotConfirmed
	}

	role, err := vendor.NewRole(snapshot.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(snapshot.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, authenticatedVendorFrom(snapshot), nil
}

func (a *authUseCaseImpl) GetCurrentVendor(ctx context.Context, vendorID uuid.UUID) (*AuthenticatedVendor, error) {
	snapshot, err := a.reads.VendorByID(ctx, vendorID)
	if err != nil || snapshot == nil {
		return nil, ErrVendorNotFound
	}
	return authenticatedVendorFrom(snapshot), nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, vendor.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := vendor.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}

func authenticatedVendorFrom(s *shared.VendorSnapshot) *AuthenticatedVendor {
	return &AuthenticatedVendor{
		ID:        s.ID,
		Email:     s.Email,
		Name:      s.Name,
		Role:      s.Role,
		Confirmed: s.Confirmed,
	}
}
