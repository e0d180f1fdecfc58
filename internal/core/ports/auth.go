package ports

import (
	"context"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
)

type TokenService interface {
	CreateToken(subject string, roles []domain.UserRole) (string, *domain.TokenPayload, error)
	// VerifyToken fails with *domain.TokenError.
	VerifyToken(token string) (*domain.TokenPayload, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports false for a mismatch and for a malformed hash alike.
	Verify(password, hash string) bool
}

// UserDirectory looks up credential records in the service that owns them.
// FindByEmail returns domain.ErrUserNotFound when the directory has no such user
// and a *domain.TransportError when the directory could not answer.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}

type CredentialValidator interface {
	Verify(ctx context.Context, email, password string) (*domain.Identity, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.TokenPayload, error)
	CheckCredentials(ctx context.Context, email, password string) bool
}
