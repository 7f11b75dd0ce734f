// Package goal implements the Goal repository using PostgreSQL.
package goal

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const table = "goals"

var columns = []string{
	"id", "user_id", "title", "description", "frequency",
	"target_count", "is_active", "created_at", "updated_at",
}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new goal.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(g.ID, g.UserID, g.Title, g.Description, string(g.Frequency),
			g.TargetCount, g.IsActive, g.CreatedAt, g.UpdatedAt).
		Suffix(postgres.Returning(columns))

	row, err := postgres.Get[domain.Goal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "goal", g.ID)
	}
	return row, nil
}

// GetByID returns a goal regardless of its active flag.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[domain.Goal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return row, nil
}

// ListActiveByUser returns the user's active goals, oldest first.
func (r *Repo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID, "is_active": true}).
		OrderBy("created_at ASC", "id ASC")

	rows, err := postgres.Select[domain.Goal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "goals of user", userID)
	}
	return rows, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(columns))

	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Description != nil {
		query = query.Set("description", *params.Description)
	}
	if params.Frequency != nil {
		query = query.Set("frequency", string(*params.Frequency))
	}
	if params.TargetCount != nil {
		query = query.Set("target_count", *params.TargetCount)
	}
	if params.IsActive != nil {
		query = query.Set("is_active", *params.IsActive)
	}

	row, err := postgres.Get[domain.Goal](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return row, nil
}

// Deactivate soft-deletes a goal. Check-ins and AI messages keep referencing it.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "goal", id)
	}
	return nil
}
