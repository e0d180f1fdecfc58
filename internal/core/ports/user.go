package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserUpdate carries optional fields; nil means unchanged.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Roles    []domain.UserRole
}

type UserService interface {
	Register(ctx context.Context, user *domain.User, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
