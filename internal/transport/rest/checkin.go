package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/checkin"
)

type checkInService interface {
	CreateCheckIn(ctx context.Context, input checkin.CreateCheckInInput) (*checkin.CreateResult, error)
	ListCheckIns(ctx context.Context, input checkin.ListCheckInsInput) ([]domain.CheckIn, error)
	Stats(ctx context.Context, input checkin.StatsInput) (*checkin.Stats, error)
}

// CheckInHandler serves /checkins and /checkin-stats.
type CheckInHandler struct {
	svc checkInService
	log *slog.Logger
}

// NewCheckInHandler creates a CheckInHandler.
func NewCheckInHandler(svc checkInService, logger *slog.Logger) *CheckInHandler {
	return &CheckInHandler{svc: svc, log: logger.With("handler", "checkin")}
}

type createCheckInRequest struct {
	UserID      string  `json:"user_id"`
	GoalID      string  `json:"goal_id"`
	CheckInDate *string `json:"check_in_date"`
	Notes       string  `json:"notes"`
	MoodScore   *int    `json:"mood_score"`
}

// Create handles POST /checkins. The response carries the motivational
// message generated for the new check-in.
func (h *CheckInHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCheckInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CreateCheckIn(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createCheckInResponse{
		CheckIn:   toCheckInResponse(res.CheckIn),
		AIMessage: res.AIMessage,
	})
}

func (req createCheckInRequest) toInput() (checkin.CreateCheckInInput, error) {
	userID, err := parseID("user_id", req.UserID)
	if err != nil {
		return checkin.CreateCheckInInput{}, err
	}
	goalID, err := parseID("goal_id", req.GoalID)
	if err != nil {
		return checkin.CreateCheckInInput{}, err
	}

	var date *time.Time
	if req.CheckInDate != nil && *req.CheckInDate != "" {
		d, err := domain.ParseDate(*req.CheckInDate)
		if err != nil {
			return checkin.CreateCheckInInput{}, domain.NewValidationError("check_in_date", "must be YYYY-MM-DD")
		}
		date = &d
	}

	return checkin.CreateCheckInInput{
		UserID:      userID,
		GoalID:      goalID,
		CheckInDate: date,
		Notes:       req.Notes,
		MoodScore:   req.MoodScore,
	}, nil
}

// List handles GET /checkins?user_id=&goal_id=&limit=.
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.svc.ListCheckIns(r.Context(), checkin.ListCheckInsInput{UserID: userID, GoalID: goalID, Limit: limit})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckInResponses(list))
}

// Stats handles GET /checkin-stats?user_id=&goal_id=.
func (h *CheckInHandler) Stats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.svc.Stats(r.Context(), checkin.StatsInput{UserID: userID, GoalID: goalID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
