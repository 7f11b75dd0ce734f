package checkin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// duplicateError is returned for a second check-in of the same goal on the
// same date, whether caught by the pre-check or by the unique index.
func duplicateError(date time.Time) error {
	return domain.NewValidationError("check_in_date", "already checked in on "+domain.FormatDate(date))
}

// CreateCheckIn records a check-in and returns it with a motivational
// message. The duplicate check and the insert share one transaction; the
// message is generated after commit and never fails the request.
func (s *Service) CreateCheckIn(ctx context.Context, input CreateCheckInInput) (*CreateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	g, err := s.ownedGoal(ctx, u.ID, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if !g.IsActive {
		return nil, domain.NewValidationError("goal_id", "goal is not active")
	}

	date := s.today(u)
	if input.CheckInDate != nil {
		date = domain.TruncateDate(*input.CheckInDate)
	}

	var created *domain.CheckIn
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.checkins.ExistsOnDate(ctx, u.ID, g.ID, date)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return duplicateError(date)
		}

		created, err = s.checkins.Create(ctx, &domain.CheckIn{
			ID:          uuid.New(),
			UserID:      u.ID,
			GoalID:      g.ID,
			CheckInDate: date,
			Notes:       strings.TrimSpace(input.Notes),
			MoodScore:   input.MoodScore,
			CreatedAt:   s.now().UTC(),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return duplicateError(date)
		}
		if err != nil {
			return fmt.Errorf("create checkin: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "checkin created",
		slog.String("user_id", u.ID.String()),
		slog.String("goal_id", g.ID.String()),
		slog.String("date", domain.FormatDate(date)),
	)

	return &CreateResult{
		CheckIn:   created,
		AIMessage: s.coach.GenerateMotivational(ctx, u, g, created),
	}, nil
}
