package domain

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is the cadence a goal is meant to be completed at.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Goal belongs to exactly one user. Goals are never hard-deleted: check-ins
// and AI messages keep referencing them after deactivation.
type Goal struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Frequency   Frequency `db:"frequency"`
	TargetCount int       `db:"target_count"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// GoalUpdateParams holds a partial goal update. Nil fields are left unchanged.
type GoalUpdateParams struct {
	Title       *string
	Description *string
	Frequency   *Frequency
	TargetCount *int
	IsActive    *bool
}
