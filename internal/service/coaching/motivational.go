package coaching

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// MotivationalFallback is returned when motivational generation fails unexpectedly.
func MotivationalFallback(user *domain.User, goal *domain.Goal) string {
	return fmt.Sprintf("Great job %s! You completed %s again, keep it up!", user.Username, goal.Title)
}

// GenerateMotivational produces a congratulation for a fresh check-in from
// the motivational_message template and records it. It never fails:
// unexpected errors and panics return MotivationalFallback without
// persisting anything.
func (s *Service) GenerateMotivational(ctx context.Context, user *domain.User, goal *domain.Goal, checkin *domain.CheckIn) (text string) {
	defer s.recoverTo(ctx, KindMotivational, &text, func() string { return MotivationalFallback(user, goal) })

	text, err := s.generateMotivational(ctx, user, goal, checkin)
	if err != nil {
		s.log.ErrorContext(ctx, "motivational generation failed, returning fallback",
			slog.String("user_id", user.ID.String()),
			slog.String("goal_id", goal.ID.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.ObserveGeneration(KindMotivational, "none", OutcomeFallback)
		return MotivationalFallback(user, goal)
	}
	return text
}

func (s *Service) generateMotivational(ctx context.Context, user *domain.User, goal *domain.Goal, checkin *domain.CheckIn) (string, error) {
	bundle, err := s.context.Build(ctx, user, goal, s.Today(user))
	if err != nil {
		return "", fmt.Errorf("build context: %w", err)
	}
	bundle[KeyMoodScore] = moodValue(checkin.MoodScore)
	bundle[KeyCheckInNotes] = checkin.Notes

	tpl, err := s.templates.Resolve(ctx, MotivationalTemplate)
	if err != nil {
		return "", fmt.Errorf("resolve template: %w", err)
	}

	prompt := Fill(*tpl, bundle)
	text, source := s.produce(ctx, KindMotivational, prompt, s.cfg.ExternalFirst)

	_, err = s.messages.Create(ctx, &domain.AIMessage{
		ID:               uuid.New(),
		UserID:           user.ID,
		GoalID:           goal.ID,
		PromptTemplateID: &tpl.ID,
		FilledPrompt:     prompt,
		AIResponse:       text,
		ContextData:      bundle,
		Source:           source,
		CreatedAt:        s.now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("save ai message: %w", err)
	}

	s.log.InfoContext(ctx, "motivational message generated",
		slog.String("user_id", user.ID.String()),
		slog.String("goal_id", goal.ID.String()),
		slog.String("template_id", tpl.ID.String()),
		slog.String("source", string(source)),
	)
	return text, nil
}
