package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const (
	userCacheTTL    = 15 * time.Minute
	defaultPageSize = 50
	maxPageSize     = 200
)

type UserService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *UserService {
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (us *UserService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	user.Email = strings.TrimSpace(user.Email)
	if len(user.Roles) == 0 {
		user.Roles = []domain.UserRole{domain.AppUser}
	}

	if err := us.validateUser(user); err != nil {
		us.logger.Error("Validation failed", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}

	hashedPassword, err := us.hashPassword(password)
	if err != nil {
		us.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	user.PasswordHash = hashedPassword

	created, err := us.repo.CreateUser(ctx, user)
	if err != nil {
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}

	us.logger.Info("User registered", map[string]interface{}{
		"id":    created.ID.String(),
		"email": domain.MaskEmail(created.Email),
	})
	return created, nil
}

func (us *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		us.logger.Error("Invalid UUID format", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	// Tries to take from cache
	cacheKey := ports.UserIDCacheKey(userID.String())
	cachedData, err := us.cache.Get(ctx, cacheKey)
	if err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			us.logger.Debug("User found in cache", map[string]interface{}{
				"id": id,
			})
			return &cachedUser, nil
		}
	}

	// Going to db
	user, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	us.cacheUser(ctx, cacheKey, user)
	return user, nil
}

// GetUserByEmail serves the auth service lookup. It always reads the
// repository so the returned hash is current.
func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	user, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			us.logger.Error("Failed to get user by email", map[string]interface{}{
				"email": domain.MaskEmail(email),
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return user, nil
}

func (us *UserService) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	users, err := us.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		us.logger.Error("Failed to list users", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return users, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	existing, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		us.logger.Error("Failed to get user before update", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}
	previousEmail := existing.Email

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Email != nil {
		existing.Email = strings.TrimSpace(*update.Email)
	}
	if update.Roles != nil {
		existing.Roles = update.Roles
	}
	if err := us.validateUser(existing); err != nil {
		return nil, err
	}

	if update.Password != nil {
		hashedPassword, err := us.hashPassword(*update.Password)
		if err != nil {
			us.logger.Error("Error during hashing", map[string]interface{}{
				"error":  err.Error(),
				"method": "UpdateUser",
			})
			return nil, err
		}
		existing.PasswordHash = hashedPassword
	}

	updatedUser, err := us.repo.UpdateUser(ctx, existing)
	if err != nil {
		us.logger.Error("Failed to update user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}

	us.invalidate(ctx, userID.String(), previousEmail, updatedUser.Email)
	return updatedUser, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseUserID(id)
	if err != nil {
		us.logger.Error("Invalid UUID format", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	user, err := us.repo.GetUserByID(ctx, userID)
	if err != nil {
		us.logger.Error("Failed to get user before deletion", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	if err := us.repo.DeleteUser(ctx, userID); err != nil {
		us.logger.Error("Failed to delete user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return err
	}

	us.invalidate(ctx, userID.String(), user.Email)

	us.logger.Info("User deleted", map[string]interface{}{
		"id": id,
	})
	return nil
}

func (us *UserService) hashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	return us.hasher.Hash(password)
}

func (us *UserService) cacheUser(ctx context.Context, key string, user *domain.User) {
	userData, err := json.Marshal(user)
	if err != nil {
		us.logger.Warn("Failed to marshal user for cache", map[string]interface{}{
			"error": err.Error(),
			"id":    user.ID.String(),
		})
		return
	}
	if err := us.cache.Set(ctx, key, userData, userCacheTTL); err != nil {
		us.logger.Warn("Failed to cache user", map[string]interface{}{
			"error": err.Error(),
			"id":    user.ID.String(),
		})
	}
}

// invalidate drops the canonical id entry and every email entry, including the auth
// service lookup cache that shares the email key.
func (us *UserService) invalidate(ctx context.Context, id string, emails ...string) {
	keys := []string{ports.UserIDCacheKey(id)}
	for _, email := range emails {
		keys = append(keys, ports.UserEmailCacheKey(email))
	}
	if err := us.cache.Delete(ctx, keys...); err != nil {
		us.logger.Warn("Failed to invalidate user cache", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
	}
}

func (us *UserService) validateUser(user *domain.User) error {
	if err := us.validate.Struct(user); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	return nil
}

func parseUserID(id string) (uuid.UUID, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid ID format: %s", domain.ErrValidation, err.Error())
	}
	return userID, nil
}

var _ ports.UserService = (*UserService)(nil)
