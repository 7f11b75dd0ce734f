package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/user"
)

type userService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePreferences(ctx context.Context, input user.UpdatePreferencesInput) (*domain.User, error)
}

// UserHandler serves /users.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username     string  `json:"username"`
	DisplayName  string  `json:"display_name"`
	ReminderTime *string `json:"reminder_time"`
	Timezone     *string `json:"timezone"`
}

type updatePreferencesRequest struct {
	DisplayName  *string `json:"display_name"`
	ReminderTime *string `json:"reminder_time"`
	Timezone     *string `json:"timezone"`
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		ReminderTime: req.ReminderTime,
		Timezone:     req.Timezone,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdatePreferences handles PUT /users/{id}/preferences.
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updatePreferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdatePreferences(r.Context(), user.UpdatePreferencesInput{
		UserID:       id,
		DisplayName:  req.DisplayName,
		ReminderTime: req.ReminderTime,
		Timezone:     req.Timezone,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}
