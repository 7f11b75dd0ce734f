package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/reminder"
)

type reminderService interface {
	GenerateReminder(ctx context.Context, input reminder.GenerateReminderInput) (*reminder.Reminder, error)
	BatchReminders(ctx context.Context, userID uuid.UUID) ([]reminder.BatchItem, error)
	ListAIMessages(ctx context.Context, input reminder.ListAIMessagesInput) ([]domain.AIMessage, error)
}

// ReminderHandler serves reminder generation and the AI message log.
type ReminderHandler struct {
	svc reminderService
	log *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, log: logger.With("handler", "reminder")}
}

type generateReminderRequest struct {
	UserID string `json:"user_id"`
	GoalID string `json:"goal_id"`
}

// Generate handles POST /generate-reminder.
func (h *ReminderHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateReminderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	goalID, err := parseID("goal_id", req.GoalID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.svc.GenerateReminder(r.Context(), reminder.GenerateReminderInput{UserID: userID, GoalID: goalID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(res))
}

// Batch handles GET /batch-reminders?user_id=.
func (h *ReminderHandler) Batch(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID("user_id", r.URL.Query().Get("user_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	items, err := h.svc.BatchReminders(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBatchResponses(items))
}

// ListAIMessages handles GET /ai-messages?user_id=&goal_id=&limit=.
func (h *ReminderHandler) ListAIMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := parseID("user_id", q.Get("user_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	goalID, err := parseOptionalID("goal_id", q.Get("goal_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	msgs, err := h.svc.ListAIMessages(r.Context(), reminder.ListAIMessagesInput{UserID: userID, GoalID: goalID, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAIMessageResponses(msgs))
}
