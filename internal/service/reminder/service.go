// Package reminder serves on-demand and batch reminders and the audit log
// of generated messages.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// DefaultBatchConcurrency bounds parallel generations in BatchReminders.
const DefaultBatchConcurrency = 4

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type goalRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
}

type checkinRepo interface {
	ExistsOnDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (bool, error)
}

type aiMessageRepo interface {
	List(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID, limit int) ([]domain.AIMessage, error)
}

type reminderGenerator interface {
	GenerateReminder(ctx context.Context, user *domain.User, goal *domain.Goal) string
}

// Service produces reminders through the coaching orchestrator.
type Service struct {
	users       userRepo
	goals       goalRepo
	checkins    checkinRepo
	messages    aiMessageRepo
	coach       reminderGenerator
	concurrency int
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new Reminder service. A non-positive concurrency
// falls back to DefaultBatchConcurrency.
func NewService(
	log *slog.Logger,
	users userRepo,
	goals goalRepo,
	checkins checkinRepo,
	messages aiMessageRepo,
	coach reminderGenerator,
	concurrency int,
) *Service {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}
	return &Service{
		users:       users,
		goals:       goals,
		checkins:    checkins,
		messages:    messages,
		coach:       coach,
		concurrency: concurrency,
		now:         time.Now,
		log:         log.With("service", "reminder"),
	}
}
