package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/goal"
)

type goalService interface {
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	DeactivateGoal(ctx context.Context, id uuid.UUID) error
}

// GoalHandler serves /goals.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

type createGoalRequest struct {
	UserID      string            `json:"user_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Frequency   *domain.Frequency `json:"frequency"`
	TargetCount *int              `json:"target_count"`
}

type updateGoalRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	Frequency   *domain.Frequency `json:"frequency"`
	TargetCount *int              `json:"target_count"`
	IsActive    *bool             `json:"is_active"`
}

// Create handles POST /goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), goal.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

// List handles GET /goals?user_id=.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID("user_id", r.URL.Query().Get("user_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponses(goals))
}

// Get handles GET /goals/{id}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "goal_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	g, err := h.svc.GetGoal(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Update handles PUT /goals/{id}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "goal_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updateGoalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	g, err := h.svc.UpdateGoal(r.Context(), goal.UpdateGoalInput{
		GoalID:      id,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Deactivate handles DELETE /goals/{id}.
func (h *GoalHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "goal_id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeactivateGoal(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
