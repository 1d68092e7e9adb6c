package repository

import (
	"context"

	"github.com/SamDTech/realtor-api/internal/domain"
)

// UserRepository defines persistence access for credential records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, phone, password_hash, role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, email, phone, password_hash, role, created_at, updated_at
        FROM users WHERE id=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, phone, password_hash, role, created_at, updated_at
        FROM users WHERE email=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
