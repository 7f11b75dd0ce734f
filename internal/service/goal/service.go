package goal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

type goalRepo interface {
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
	Update(ctx context.Context, id uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service manages goals. Goals are soft-deleted by deactivation only.
type Service struct {
	goals goalRepo
	users userRepo
	log   *slog.Logger
}

// NewService creates a new Goal service.
func NewService(log *slog.Logger, goals goalRepo, users userRepo) *Service {
	return &Service{
		goals: goals,
		users: users,
		log:   log.With("service", "goal"),
	}
}
