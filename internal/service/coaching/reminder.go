package coaching

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// ReminderFallback is returned when reminder generation fails unexpectedly.
func ReminderFallback(user *domain.User, goal *domain.Goal) string {
	return fmt.Sprintf("Hi %s, remember to %s today! You can do it!", user.Username, goal.Title)
}

// CheckedTodayMessage is used instead of a reminder when the goal is
// already checked in today.
func CheckedTodayMessage(goal *domain.Goal) string {
	return fmt.Sprintf("Great, you already completed %s today, keep it up!", goal.Title)
}

// GenerateReminder produces a reminder for a goal with no check-in yet and
// records it with an ad hoc prompt. It never fails: unexpected errors and
// panics return ReminderFallback without persisting anything.
func (s *Service) GenerateReminder(ctx context.Context, user *domain.User, goal *domain.Goal) (text string) {
	defer s.recoverTo(ctx, KindReminder, &text, func() string { return ReminderFallback(user, goal) })

	text, err := s.generateReminder(ctx, user, goal)
	if err != nil {
		s.log.ErrorContext(ctx, "reminder generation failed, returning fallback",
			slog.String("user_id", user.ID.String()),
			slog.String("goal_id", goal.ID.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.ObserveGeneration(KindReminder, "none", OutcomeFallback)
		return ReminderFallback(user, goal)
	}
	return text
}

func (s *Service) generateReminder(ctx context.Context, user *domain.User, goal *domain.Goal) (string, error) {
	recent, err := s.history.ListRecent(ctx, user.ID, goal.ID, s.cfg.ReminderWindow)
	if err != nil {
		return "", fmt.Errorf("list recent checkins: %w", err)
	}

	history := s.historySummary(recent)
	prompt := reminderPrompt(user, goal, history)

	text, source := s.produce(ctx, KindReminder, prompt, true)

	_, err = s.messages.Create(ctx, &domain.AIMessage{
		ID:           uuid.New(),
		UserID:       user.ID,
		GoalID:       goal.ID,
		FilledPrompt: prompt,
		AIResponse:   text,
		ContextData: Bundle{
			KeyUsername:  user.Username,
			KeyGoalTitle: goal.Title,
			KeyHistory:   history,
		},
		Source:    source,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("save ai message: %w", err)
	}

	s.log.InfoContext(ctx, "reminder generated",
		slog.String("user_id", user.ID.String()),
		slog.String("goal_id", goal.ID.String()),
		slog.String("source", string(source)),
	)
	return text, nil
}

// historySummary describes the dates of the most recent check-ins.
func (s *Service) historySummary(recent []domain.CheckIn) string {
	if len(recent) == 0 {
		return fmt.Sprintf("no check-ins in the last %d days", s.cfg.ReminderWindow)
	}
	dates := make([]string, 0, len(recent))
	for _, c := range recent {
		dates = append(dates, domain.FormatDate(c.CheckInDate))
	}
	return "checked in recently on " + strings.Join(dates, ", ")
}

func reminderPrompt(user *domain.User, goal *domain.Goal, history string) string {
	return fmt.Sprintf(`As a friendly habit coach, write a warm reminder for the user.
%s set the goal "%s".
Recent check-ins: %s.
Reply with one encouraging sentence under 30 words.`, user.Username, goal.Title, history)
}
