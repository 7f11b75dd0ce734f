package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// CreateGoal creates an active goal for an existing user.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := time.Now().UTC()
	g := &domain.Goal{
		ID:          uuid.New(),
		UserID:      input.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Frequency:   domain.FrequencyDaily,
		TargetCount: 1,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Frequency != nil {
		g.Frequency = *input.Frequency
	}
	if input.TargetCount != nil {
		g.TargetCount = *input.TargetCount
	}

	created, err := s.goals.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("user_id", created.UserID.String()),
		slog.String("goal_id", created.ID.String()),
		slog.String("frequency", created.Frequency.String()),
	)
	return created, nil
}

// GetGoal returns a goal whether active or not.
func (s *Service) GetGoal(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("goal_id", "required")
	}

	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// ListGoals returns the user's active goals, oldest first.
func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	goals, err := s.goals.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal applies a partial update.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.GoalUpdateParams{
		Frequency:   input.Frequency,
		TargetCount: input.TargetCount,
		IsActive:    input.IsActive,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		params.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
	}

	g, err := s.goals.Update(ctx, input.GoalID, params)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal updated", slog.String("goal_id", g.ID.String()))
	return g, nil
}

// DeactivateGoal soft-deletes a goal. Its check-ins and AI messages stay.
func (s *Service) DeactivateGoal(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("goal_id", "required")
	}

	if err := s.goals.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal deactivated", slog.String("goal_id", id.String()))
	return nil
}
