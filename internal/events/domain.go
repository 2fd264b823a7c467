package events

import "time"

// Event represents a host-owned event. The owner is set at creation and never
// reassigned; uploadsOpen is the only mutable field.
type Event struct {
	ID          string
	Name        string
	UploadsOpen bool
	CreatedBy   string
	CreatedAt   time.Time
}

// Summary is the owner-facing representation returned by the dashboard list.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UploadsOpen bool      `json:"uploadsOpen"`
	CreatedAt   time.Time `json:"createdAt"`
	ShareURL    string    `json:"shareUrl"`
}

// PublicEvent is the unauthenticated view served to guests following a share
// link. It deliberately carries no owner-identifying field.
type PublicEvent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	UploadsOpen bool      `json:"uploadsOpen"`
	CreatedAt   time.Time `json:"createdAt"`
}
