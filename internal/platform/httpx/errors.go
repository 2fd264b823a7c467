package httpx

import (
	"errors"
	"net/http"

	"github.com/partydrop/partydrop/internal/shared"
)

// RespondError maps domain errors to HTTP responses. Unexpected errors
// collapse to a generic 500 body so internals never leak to the client.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrEmailInUse):
		Error(w, http.StatusConflict, "Email already in use")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, shared.ErrAuthRequired):
		Error(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, shared.ErrInvalidSession):
		Error(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, "Not found")
	default:
		Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
