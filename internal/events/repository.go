package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/partydrop/partydrop/internal/shared"
)

// Repository defines persistence operations for the events module.
type Repository interface {
	Create(ctx context.Context, name, createdBy string) (*Event, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Event, error)
	SetUploadsOpen(ctx context.Context, id, ownerID string, open bool) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new event with uploads open.
func (r *PGRepository) Create(ctx context.Context, name, createdBy string) (*Event, error) {
	const query = `
		INSERT INTO events (id, name, uploads_open, created_by, created_at)
		VALUES ($1, $2, TRUE, $3, $4)
		RETURNING id, name, uploads_open, created_by, created_at`

	now := time.Now().UTC()
	var event Event
	err := r.pool.QueryRow(ctx, query, uuid.NewString(), name, createdBy, now).
		Scan(&event.ID, &event.Name, &event.UploadsOpen, &event.CreatedBy, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return &event, nil
}

// ListByOwner fetches all events owned by ownerID, newest first.
func (r *PGRepository) ListByOwner(ctx context.Context, ownerID string) ([]Event, error) {
	const query = `
		SELECT id, name, uploads_open, created_by, created_at
		FROM events
		WHERE created_by = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Name, &event.UploadsOpen, &event.CreatedBy, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// SetUploadsOpen applies the toggle as a single conditional write: the filter
// covers both the id and the expected owner, so a non-owner's attempt and a
// nonexistent id are indistinguishable.
func (r *PGRepository) SetUploadsOpen(ctx context.Context, id, ownerID string, open bool) (*Event, error) {
	const query = `
		UPDATE events
		SET uploads_open = $3
		WHERE id = $1 AND created_by = $2
		RETURNING id, name, uploads_open, created_by, created_at`

	var event Event
	err := r.pool.QueryRow(ctx, query, id, ownerID, open).
		Scan(&event.ID, &event.Name, &event.UploadsOpen, &event.CreatedBy, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("set uploads open: %w", err)
	}
	return &event, nil
}

// GetByID fetches a single event regardless of owner.
func (r *PGRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	const query = `
		SELECT id, name, uploads_open, created_by, created_at
		FROM events
		WHERE id = $1`

	var event Event
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&event.ID, &event.Name, &event.UploadsOpen, &event.CreatedBy, &event.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

var _ Repository = (*PGRepository)(nil)
