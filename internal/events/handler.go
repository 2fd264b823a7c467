package events

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/partydrop/partydrop/internal/auth"
	"github.com/partydrop/partydrop/internal/platform/httpx"
	"github.com/partydrop/partydrop/internal/shared"
)

// Handler wires HTTP endpoints for event management.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	guard    auth.Middleware
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, guard auth.Middleware) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		guard:    guard,
		validate: validator.New(),
	}
}

// MountRoutes registers event routes on the provided router. The public
// metadata endpoint is mounted outside the guard.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireAuth)
		r.Post("/", h.handleCreate)
		r.Get("/mine", h.handleListMine)
		r.Patch("/{id}/uploads", h.handleSetUploadsOpen)
	})
	r.Get("/{id}", h.handleGetPublic)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	claims := shared.ClaimsFromContext(r.Context())

	var req CreateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	event, err := h.service.Create(r.Context(), claims.UserID, req.Name)
	if err != nil {
		if !errors.Is(err, shared.ErrInvalidInput) {
			h.logger.Error("create event failed", "error", err)
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, CreatedResponse{
		EventID:  event.ID,
		ShareURL: h.service.ShareURL(event.ID),
	})
}

func (h *Handler) handleListMine(w http.ResponseWriter, r *http.Request) {
	claims := shared.ClaimsFromContext(r.Context())

	summaries, err := h.service.ListMine(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list events failed", "error", err)
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleSetUploadsOpen(w http.ResponseWriter, r *http.Request) {
	claims := shared.ClaimsFromContext(r.Context())
	eventID := chi.URLParam(r, "id")

	var req SetUploadsOpenRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "uploadsOpen must be a boolean")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "uploadsOpen must be a boolean")
		return
	}

	event, err := h.service.SetUploadsOpen(r.Context(), claims.UserID, eventID, *req.UploadsOpen)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("set uploads open failed", "error", err)
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToggleResponse{ID: event.ID, UploadsOpen: event.UploadsOpen})
}

func (h *Handler) handleGetPublic(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")

	event, err := h.service.GetPublic(r.Context(), eventID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("get public event failed", "error", err)
		}
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, event)
}
