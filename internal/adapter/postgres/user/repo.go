// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "display_name", "reminder_time", "timezone", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.DisplayName, u.ReminderTime, u.Timezone, u.CreatedAt, u.UpdatedAt).
		Suffix(postgres.Returning(columns))

	row, err := postgres.Get[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return row, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"username": username})

	row, err := postgres.Get[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return row, nil
}

// UpdatePreferences sets the non-nil preference fields and bumps updated_at.
func (r *Repo) UpdatePreferences(ctx context.Context, id uuid.UUID, prefs domain.UserPreferences) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(columns))

	if prefs.DisplayName != nil {
		query = query.Set("display_name", *prefs.DisplayName)
	}
	if prefs.ReminderTime != nil {
		query = query.Set("reminder_time", *prefs.ReminderTime)
	}
	if prefs.Timezone != nil {
		query = query.Set("timezone", *prefs.Timezone)
	}

	row, err := postgres.Get[domain.User](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row, nil
}
