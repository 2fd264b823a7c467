package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/partydrop/partydrop/internal/platform/httpx"
	"github.com/partydrop/partydrop/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	sessions *shared.SessionManager
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		sessions: sessions,
		validate: validator.New(),
	}
}

// MountRoutes registers auth routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)

	// Not mounted behind the guard: this handler owns the full token check so
	// it can clear a bad cookie, which the guard deliberately never does.
	r.Get("/me", h.handleMe)
}

func (h *Handler) decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return req, shared.ErrInvalidInput
	}
	if err := h.validate.Struct(req); err != nil {
		return req, shared.ErrInvalidInput
	}
	return req, nil
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "email and password required (and must be strings)")
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, shared.ErrEmailInUse) {
			h.logger.Error("register failed", "error", err)
		}
		httpx.RespondError(w, err)
		return
	}

	if err := h.sessions.Issue(w, user.ID, user.Email, user.Role); err != nil {
		h.logger.Error("issue session failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSON(w, http.StatusCreated, user.PublicView())
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "email and password required (and must be strings)")
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			h.logger.Debug("login rejected", "email", req.Email)
		} else {
			h.logger.Error("login failed", "error", err)
		}
		httpx.RespondError(w, err)
		return
	}

	if err := h.sessions.Issue(w, user.ID, user.Email, user.Role); err != nil {
		h.logger.Error("issue session failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, user.PublicView())
}

// handleLogout clears the session cookie unconditionally; no identity check.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// handleMe verifies the raw cookie token itself rather than trusting any
// previously attached identity, so a token that went bad since the last check
// still results in cookie cleanup.
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	raw, err := h.sessions.Token(r)
	if err != nil {
		httpx.RespondError(w, shared.ErrAuthRequired)
		return
	}

	claims, err := h.sessions.Verify(raw)
	if err != nil {
		h.sessions.Clear(w)
		httpx.RespondError(w, shared.ErrInvalidSession)
		return
	}

	httpx.JSON(w, http.StatusOK, claims)
}
