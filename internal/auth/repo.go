package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/partydrop/partydrop/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, passwordHash, role string) (*User, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByEmail fetches a user by normalized email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	const query = `SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`

	var user User
	err := r.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// Create inserts a new user. A unique violation on email maps to ErrEmailInUse
// so a concurrent duplicate registration cannot slip past the pre-check.
func (r *PGRepository) Create(ctx context.Context, email, passwordHash, role string) (*User, error) {
	const query = `
		INSERT INTO users (id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password_hash, role, created_at`

	now := time.Now().UTC()
	var user User
	err := r.pool.QueryRow(ctx, query, uuid.NewString(), email, passwordHash, role, now).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, shared.ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

var _ Repository = (*PGRepository)(nil)
