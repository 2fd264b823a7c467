package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/partydrop/partydrop/internal/shared"
)

const maxNameLength = 80

// Service wraps event business rules.
type Service struct {
	repo       Repository
	cache      *PublicCache
	webBaseURL string
}

// NewService constructs a new Service. webBaseURL is the public front-end
// origin used to build share links; cache may be nil.
func NewService(repo Repository, cache *PublicCache, webBaseURL string) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		webBaseURL: strings.TrimRight(webBaseURL, "/"),
	}
}

// ShareURL builds the public link for an event id.
func (s *Service) ShareURL(id string) string {
	return s.webBaseURL + "/e/" + id
}

// validID rejects identifiers that cannot name a stored event. Malformed ids
// are conflated with missing ones before the store is consulted.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Create persists a new event owned by the caller with uploads open.
func (s *Service) Create(ctx context.Context, callerID, name string) (*Event, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}
	if len(trimmed) > maxNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", shared.ErrInvalidInput, maxNameLength)
	}

	event, err := s.repo.Create(ctx, trimmed, callerID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// ListMine returns the caller's events, newest first, as dashboard summaries.
func (s *Service) ListMine(ctx context.Context, callerID string) ([]Summary, error) {
	events, err := s.repo.ListByOwner(ctx, callerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, Summary{
			ID:          event.ID,
			Name:        event.Name,
			UploadsOpen: event.UploadsOpen,
			CreatedAt:   event.CreatedAt,
			ShareURL:    s.ShareURL(event.ID),
		})
	}
	return summaries, nil
}

// SetUploadsOpen toggles the upload flag through a single ownership-conditioned
// write. Non-owner, nonexistent and malformed ids all report ErrNotFound.
func (s *Service) SetUploadsOpen(ctx context.Context, callerID, eventID string, open bool) (*Event, error) {
	if !validID(eventID) {
		return nil, shared.ErrNotFound
	}

	event, err := s.repo.SetUploadsOpen(ctx, eventID, callerID, open)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, event.ID)
	return event, nil
}

// GetPublic returns the guest-facing event metadata.
func (s *Service) GetPublic(ctx context.Context, eventID string) (*PublicEvent, error) {
	if !validID(eventID) {
		return nil, shared.ErrNotFound
	}

	return s.cache.Fetch(ctx, eventID, func(ctx context.Context) (*PublicEvent, error) {
		event, err := s.repo.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return &PublicEvent{
			ID:          event.ID,
			Name:        event.Name,
			UploadsOpen: event.UploadsOpen,
			CreatedAt:   event.CreatedAt,
		}, nil
	})
}
