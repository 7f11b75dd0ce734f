// Package checkin implements the CheckIn repository using PostgreSQL.
// Check-ins are append-only: the repository never updates or deletes them.
package checkin

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const table = "checkins"

var columns = []string{"id", "user_id", "goal_id", "check_in_date", "notes", "mood_score", "created_at"}

// Repo provides check-in persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new check-in repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a check-in. A second check-in for the same
// (user, goal, date) fails with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.CheckIn) (*domain.CheckIn, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.GoalID, c.CheckInDate, c.Notes, c.MoodScore, c.CreatedAt).
		Suffix(postgres.Returning(columns))

	row, err := postgres.Get[domain.CheckIn](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "checkin", domain.FormatDate(c.CheckInDate))
	}
	return normalize(row), nil
}

// ExistsOnDate reports whether the user checked in on goal on date.
// Served by the unique (user_id, goal_id, check_in_date) index.
func (r *Repo) ExistsOnDate(ctx context.Context, userID, goalID uuid.UUID, date time.Time) (bool, error) {
	query := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "goal_id": goalID, "check_in_date": domain.TruncateDate(date)})

	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return false, postgres.MapError(err, "checkin", domain.FormatDate(date))
	}
	return ok, nil
}

// ExistsAnyOnDate reports whether the user checked in on any goal on date.
func (r *Repo) ExistsAnyOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	query := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "check_in_date": domain.TruncateDate(date)})

	ok, err := postgres.Exists(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return false, postgres.MapError(err, "checkin", domain.FormatDate(date))
	}
	return ok, nil
}

// ListRecent returns up to limit check-ins of (user, goal), newest date first.
func (r *Repo) ListRecent(ctx context.Context, userID, goalID uuid.UUID, limit int) ([]domain.CheckIn, error) {
	goal := goalID
	return r.List(ctx, domain.CheckInFilter{UserID: userID, GoalID: &goal, Limit: limit})
}

// List returns check-ins matching filter, newest date first.
// A non-positive Limit returns every match.
func (r *Repo) List(ctx context.Context, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(filterWhere(filter)).
		OrderBy("check_in_date DESC", "created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	rows, err := postgres.Select[domain.CheckIn](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "checkins of user", filter.UserID)
	}
	for i := range rows {
		normalize(&rows[i])
	}
	return rows, nil
}

// Count returns the number of check-ins matching filter. Limit is ignored.
func (r *Repo) Count(ctx context.Context, filter domain.CheckInFilter) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(filterWhere(filter))

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "checkins of user", filter.UserID)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "checkins of user", filter.UserID)
	}
	return n, nil
}

func filterWhere(filter domain.CheckInFilter) squirrel.Eq {
	where := squirrel.Eq{"user_id": filter.UserID}
	if filter.GoalID != nil {
		where["goal_id"] = *filter.GoalID
	}
	return where
}

// normalize pins DATE values to UTC midnight so they compare with ==.
func normalize(c *domain.CheckIn) *domain.CheckIn {
	c.CheckInDate = domain.TruncateDate(c.CheckInDate)
	return c
}
