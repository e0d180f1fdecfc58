package services

import (
	"context"
	"errors"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

// CredentialValidator checks an email and password against the user directory.
type CredentialValidator struct {
	directory ports.UserDirectory
	hasher    ports.PasswordHasher
	logger    ports.LoggerPort

	// dummyHash is compared against when the user does not exist so that an
	// unknown email costs one bcrypt comparison, like a wrong password does.
	dummyHash string
}

func NewCredentialValidator(
	directory ports.UserDirectory,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
) (*CredentialValidator, error) {
	dummyHash, err := hasher.Hash("directory-miss-placeholder")
	if err != nil {
		return nil, err
	}

	return &CredentialValidator{
		directory: directory,
		hasher:    hasher,
		logger:    logger,
		dummyHash: dummyHash,
	}, nil
}

// Verify returns domain.ErrInvalidCredentials for an unknown email and for a
// wrong password alike. Directory failures come back as *domain.TransportError.
func (v *CredentialValidator) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	record, err := v.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			v.hasher.Verify(password, v.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !v.hasher.Verify(password, record.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	roles := make([]domain.UserRole, len(record.Roles))
	copy(roles, record.Roles)

	return &domain.Identity{
		Subject: record.Email,
		Roles:   roles,
	}, nil
}

var _ ports.CredentialValidator = (*CredentialValidator)(nil)
