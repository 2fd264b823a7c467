package auth

import "time"

// DefaultRole is the only role in the system; every host is a plain user.
const DefaultRole = "user"

// User represents a registered host account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Account is the public view of a User. The password hash is never serialized.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PublicView returns the response representation of the user.
func (u *User) PublicView() Account {
	return Account{ID: u.ID, Email: u.Email, Role: u.Role}
}
