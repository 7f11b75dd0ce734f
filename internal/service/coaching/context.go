package coaching

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// Bundle is the flat variable-name-to-value mapping that feeds template
// filling and is persisted as the AI message context snapshot.
type Bundle map[string]any

// Bundle keys.
const (
	KeyUsername             = "username"
	KeyDisplayName          = "display_name"
	KeyGoalTitle            = "goal_title"
	KeyGoalDescription      = "goal_description"
	KeyConsecutiveDays      = "consecutive_days"
	KeyStreak               = "streak"
	KeyDaysSinceLastCheckIn = "days_since_last_checkin"
	KeyRecentCheckInsCount  = "recent_checkins_count"
	KeyRecentCheckIns       = "recent_checkins"
	KeyAvgSentiment         = "avg_sentiment"
	KeyToday                = "today"
	KeyMoodScore            = "mood_score"
	KeyCheckInNotes         = "checkin_notes"
	KeyHistory              = "history"
)

// ContextBuilder assembles a Bundle from a user's goal history.
type ContextBuilder struct {
	history         historyStore
	sentiment       sentimentStore
	recentWindow    int
	sentimentWindow int
}

// NewContextBuilder creates a ContextBuilder. recentWindow bounds the
// check-in list, sentimentWindow the messages averaged for mood trend.
func NewContextBuilder(history historyStore, sentiment sentimentStore, recentWindow, sentimentWindow int) *ContextBuilder {
	return &ContextBuilder{
		history:         history,
		sentiment:       sentiment,
		recentWindow:    recentWindow,
		sentimentWindow: sentimentWindow,
	}
}

// Build computes the context bundle of (user, goal) as of today, a date in
// the user's timezone carried as UTC midnight.
func (b *ContextBuilder) Build(ctx context.Context, user *domain.User, goal *domain.Goal, today time.Time) (Bundle, error) {
	streak, err := b.Streak(ctx, user.ID, goal.ID, today)
	if err != nil {
		return nil, err
	}

	recent, err := b.history.ListRecent(ctx, user.ID, goal.ID, b.recentWindow)
	if err != nil {
		return nil, fmt.Errorf("list recent checkins: %w", err)
	}

	// Reported as 0 when there is no check-in at all.
	daysSince := 0
	if len(recent) > 0 {
		daysSince = max(domain.DaysBetween(recent[0].CheckInDate, today), 0)
	}

	avg, err := b.averageSentiment(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return Bundle{
		KeyUsername:             user.Username,
		KeyDisplayName:          user.Name(),
		KeyGoalTitle:            goal.Title,
		KeyGoalDescription:      goal.Description,
		KeyConsecutiveDays:      streak,
		KeyStreak:               streak,
		KeyDaysSinceLastCheckIn: daysSince,
		KeyRecentCheckInsCount:  len(recent),
		KeyRecentCheckIns:       recentEntries(recent),
		KeyAvgSentiment:         avg,
		KeyToday:                domain.FormatDate(today),
	}, nil
}

// Streak counts consecutive days with a check-in on goal, walking back
// from today and stopping at the first gap.
func (b *ContextBuilder) Streak(ctx context.Context, userID, goalID uuid.UUID, today time.Time) (int, error) {
	return CountStreak(ctx, today, func(ctx context.Context, date time.Time) (bool, error) {
		return b.history.ExistsOnDate(ctx, userID, goalID, date)
	})
}

// CountStreak walks backward one day at a time from today while exists
// reports a check-in. There is no lookback limit.
func CountStreak(ctx context.Context, today time.Time, exists func(ctx context.Context, date time.Time) (bool, error)) (int, error) {
	streak := 0
	for date := domain.TruncateDate(today); ; date = date.AddDate(0, 0, -1) {
		if err := ctx.Err(); err != nil {
			return streak, err
		}

		ok, err := exists(ctx, date)
		if err != nil {
			return streak, fmt.Errorf("check streak day %s: %w", domain.FormatDate(date), err)
		}
		if !ok {
			return streak, nil
		}
		streak++
	}
}

func (b *ContextBuilder) averageSentiment(ctx context.Context, userID uuid.UUID) (float64, error) {
	scores, err := b.sentiment.RecentSentimentScores(ctx, userID, b.sentimentWindow)
	if err != nil {
		return 0, fmt.Errorf("recent sentiment: %w", err)
	}
	if len(scores) == 0 {
		return 0, nil
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	return math.Round(sum/float64(len(scores))*1000) / 1000, nil
}

func recentEntries(checkins []domain.CheckIn) []map[string]any {
	entries := make([]map[string]any, 0, len(checkins))
	for _, c := range checkins {
		entries = append(entries, map[string]any{
			"date":       domain.FormatDate(c.CheckInDate),
			"notes":      c.Notes,
			"mood_score": moodValue(c.MoodScore),
		})
	}
	return entries
}

// moodValue unwraps an optional mood score; nil stays nil.
func moodValue(score *int) any {
	if score == nil {
		return nil
	}
	return *score
}
