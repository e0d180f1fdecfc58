package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const userColumns = `id, name, email, password_hash, roles, created_at, updated_at`

type PostgresUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var roles pq.StringArray
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&roles,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Roles = make([]domain.UserRole, len(roles))
	for i, r := range roles {
		user.Roles[i] = domain.UserRole(r)
	}
	return user, nil
}

func rolesArray(roles []domain.UserRole) pq.StringArray {
	out := make(pq.StringArray, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// mapError translates driver errors into domain errors.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return domain.ErrEmailExists
		case "23502":
			return fmt.Errorf("%s: required field is missing: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	const op = "PostgresUserRepository.CreateUser"

	query := `INSERT INTO users (name, email, password_hash, roles)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, rolesArray(user.Roles)))
	if err != nil {
		return nil, mapError(op, err)
	}
	return created, nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const op = "PostgresUserRepository.GetUserByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(op, err)
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "PostgresUserRepository.GetUserByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(op, err)
	}
	return user, nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	const op = "PostgresUserRepository.ListUsers"

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, email LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0, limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	const op = "PostgresUserRepository.UpdateUser"

	query := `UPDATE users
        SET
        name = $1,
        email = $2,
        password_hash = $3,
        roles = $4,
        updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
        RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.PasswordHash, rolesArray(user.Roles), user.ID))
	if err != nil {
		return nil, mapError(op, err)
	}
	return updated, nil
}

func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "PostgresUserRepository.DeleteUser"

	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

var _ ports.UserRepository = (*PostgresUserRepository)(nil)
