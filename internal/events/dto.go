package events

// CreateEventRequest is the body for event creation.
type CreateEventRequest struct {
	Name string `json:"name" validate:"required"`
}

// SetUploadsOpenRequest is the body for the uploads toggle. The pointer
// distinguishes a missing field from an explicit false.
type SetUploadsOpenRequest struct {
	UploadsOpen *bool `json:"uploadsOpen" validate:"required"`
}

// CreatedResponse is returned on successful event creation.
type CreatedResponse struct {
	EventID  string `json:"eventId"`
	ShareURL string `json:"shareUrl"`
}

// ToggleResponse is returned after an uploads toggle.
type ToggleResponse struct {
	ID          string `json:"id"`
	UploadsOpen bool   `json:"uploadsOpen"`
}
