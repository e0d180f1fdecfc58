package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "user"
)

// swagger:model domain.User
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name" validate:"required,min=2,max=50"`
	Email        string     `json:"email" validate:"required,email"`
	PasswordHash string     `json:"-"`
	Roles        []UserRole `json:"roles" validate:"dive,oneof=admin user"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserRecord is the credential view of a user served by the directory.
// PasswordHash is always a PasswordHasher output, never a plaintext password.
type UserRecord struct {
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	Roles        []UserRole `json:"roles"`
}

func (u *User) Record() *UserRecord {
	roles := make([]UserRole, len(u.Roles))
	copy(roles, u.Roles)
	return &UserRecord{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Roles:        roles,
	}
}

func HasRole(roles []UserRole, role UserRole) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
