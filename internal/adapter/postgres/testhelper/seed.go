package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default preferences.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "user_" + suffix,
		DisplayName:  "Test User " + suffix,
		ReminderTime: domain.DefaultReminderTime,
		Timezone:     domain.DefaultTimezone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, display_name, reminder_time, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.DisplayName, user.ReminderTime, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedGoal creates an active daily goal for the user.
func SeedGoal(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title string) domain.Goal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	goal := domain.Goal{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: "seeded goal",
		Frequency:   domain.FrequencyDaily,
		TargetCount: 1,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO goals (id, user_id, title, description, frequency, target_count, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		goal.ID, goal.UserID, goal.Title, goal.Description, string(goal.Frequency),
		goal.TargetCount, goal.IsActive, goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal: %v", err)
	}

	return goal
}

// SeedCheckIn records a check-in for (user, goal) on date.
func SeedCheckIn(t *testing.T, pool *pgxpool.Pool, userID, goalID uuid.UUID, date time.Time, mood *int) domain.CheckIn {
	t.Helper()

	c := domain.CheckIn{
		ID:          uuid.New(),
		UserID:      userID,
		GoalID:      goalID,
		CheckInDate: domain.TruncateDate(date),
		Notes:       "seeded",
		MoodScore:   mood,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO checkins (id, user_id, goal_id, check_in_date, notes, mood_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.UserID, c.GoalID, c.CheckInDate, c.Notes, c.MoodScore, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCheckIn: %v", err)
	}

	return c
}

// SeedChannel creates a channel between two users.
func SeedChannel(t *testing.T, pool *pgxpool.Pool, fromUserID, toUserID uuid.UUID) domain.Channel {
	t.Helper()

	ch := domain.Channel{
		ID:         uuid.New(),
		Name:       "channel_" + uniqueSuffix(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO channels (id, name, from_user_id, to_user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		ch.ID, ch.Name, ch.FromUserID, ch.ToUserID, ch.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedChannel: %v", err)
	}

	return ch
}

// SeedMessage stores a message with an optional sentiment score.
// createdAt orders messages for window queries.
func SeedMessage(t *testing.T, pool *pgxpool.Pool, ch domain.Channel, score *float64, createdAt time.Time) domain.Message {
	t.Helper()

	m := domain.Message{
		ID:             uuid.New(),
		ChannelID:      ch.ID,
		FromUserID:     ch.FromUserID,
		ToUserID:       ch.ToUserID,
		Body:           "seeded message",
		SentimentScore: score,
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO messages (id, channel_id, from_user_id, to_user_id, body, sentiment_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ChannelID, m.FromUserID, m.ToUserID, m.Body, m.SentimentScore, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMessage: %v", err)
	}

	return m
}

// SeedTemplate stores an active prompt template with a unique name.
func SeedTemplate(t *testing.T, pool *pgxpool.Pool, content string, variables []string) domain.PromptTemplate {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tpl := domain.PromptTemplate{
		ID:        uuid.New(),
		Name:      "template_" + uniqueSuffix(),
		Content:   content,
		Variables: variables,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	vars, err := json.Marshal(variables)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO prompt_templates (id, name, description, content, variables, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tpl.ID, tpl.Name, tpl.Description, tpl.Content, vars, tpl.IsActive, tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTemplate: %v", err)
	}

	return tpl
}
