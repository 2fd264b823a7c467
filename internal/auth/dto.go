package auth

// credentialsRequest is the body for both register and login. Decoding into
// string fields rejects non-string JSON values before the store is touched.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
