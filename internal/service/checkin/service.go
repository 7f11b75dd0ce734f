package checkin

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type goalRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
}

type checkinRepo interface {
	Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error)
	ExistsOnDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (bool, error)
	ExistsAnyOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
	List(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error)
	Count(ctx context.Context, filter domain.CheckInFilter) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type motivator interface {
	GenerateMotivational(ctx context.Context, user *domain.User, goal *domain.Goal, checkin *domain.CheckIn) string
}

// Service records check-ins and reports streak statistics.
type Service struct {
	users    userRepo
	goals    goalRepo
	checkins checkinRepo
	tx       txManager
	coach    motivator
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new CheckIn service.
func NewService(
	log *slog.Logger,
	users userRepo,
	goals goalRepo,
	checkins checkinRepo,
	tx txManager,
	coach motivator,
) *Service {
	return &Service{
		users:    users,
		goals:    goals,
		checkins: checkins,
		tx:       tx,
		coach:    coach,
		now:      time.Now,
		log:      log.With("service", "checkin"),
	}
}

// today returns the user's current calendar date.
func (s *Service) today(u *domain.User) time.Time {
	return domain.DateIn(s.now(), u.Location())
}

// ownedGoal loads a goal and checks it belongs to userID. A goal of another
// user is reported as not found.
func (s *Service) ownedGoal(ctx context.Context, userID, goalID uuid.UUID) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return g, nil
}
