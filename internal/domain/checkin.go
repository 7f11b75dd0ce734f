package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood score bounds for check-ins.
const (
	MinMoodScore = 1
	MaxMoodScore = 10
)

// CheckIn records that a user worked on a goal on a calendar date.
// At most one check-in exists per (user, goal, date).
type CheckIn struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	GoalID      uuid.UUID `db:"goal_id"`
	CheckInDate time.Time `db:"check_in_date"`
	Notes       string    `db:"notes"`
	MoodScore   *int      `db:"mood_score"`
	CreatedAt   time.Time `db:"created_at"`
}

// CheckInFilter narrows check-in listings. A nil GoalID means all goals.
type CheckInFilter struct {
	UserID uuid.UUID
	GoalID *uuid.UUID
	Limit  int
}
