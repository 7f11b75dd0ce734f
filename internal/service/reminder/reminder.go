package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
)

// GenerateReminder produces a reminder for one of the user's goals.
func (s *Service) GenerateReminder(ctx context.Context, input GenerateReminderInput) (*Reminder, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	goal, err := s.goals.GetByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if goal.UserID != user.ID {
		return nil, fmt.Errorf("get goal: %w", domain.ErrNotFound)
	}

	msg := s.coach.GenerateReminder(ctx, user, goal)

	s.log.InfoContext(ctx, "reminder generated",
		slog.String("user_id", user.ID.String()),
		slog.String("goal_id", goal.ID.String()),
	)
	return &Reminder{User: user, Goal: goal, Message: msg}, nil
}

// BatchReminders builds one entry per active goal of the user. Goals already
// checked today get a congratulation; the rest get a generated reminder.
// Generations run concurrently, bounded by the configured concurrency.
func (s *Service) BatchReminders(ctx context.Context, userID uuid.UUID) ([]BatchItem, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	goals, err := s.goals.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	today := domain.DateIn(s.now(), user.Location())
	items := make([]BatchItem, len(goals))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range goals {
		goal := &goals[i]
		g.Go(func() error {
			checked, err := s.checkins.ExistsOnDate(gctx, userID, goal.ID, today)
			if err != nil {
				return fmt.Errorf("check goal %s: %w", goal.ID, err)
			}

			item := BatchItem{GoalID: goal.ID, Title: goal.Title, Checked: checked}
			if checked {
				item.Message = coaching.CheckedTodayMessage(goal)
			} else {
				item.Message = s.coach.GenerateReminder(gctx, user, goal)
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "batch reminders generated",
		slog.String("user_id", userID.String()),
		slog.Int("goals", len(goals)),
	)
	return items, nil
}

// ListAIMessages returns the user's generated messages, newest first.
func (s *Service) ListAIMessages(ctx context.Context, input ListAIMessagesInput) ([]domain.AIMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	msgs, err := s.messages.List(ctx, input.UserID, input.GoalID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list ai messages: %w", err)
	}
	return msgs, nil
}
