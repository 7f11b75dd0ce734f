package reminder

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// Reminder is a generated reminder together with its subjects.
type Reminder struct {
	User    *domain.User
	Goal    *domain.Goal
	Message string
}

// BatchItem is one goal's entry in a batch. Checked goals carry the
// congratulation instead of a generated reminder.
type BatchItem struct {
	GoalID  uuid.UUID
	Title   string
	Checked bool
	Message string
}
