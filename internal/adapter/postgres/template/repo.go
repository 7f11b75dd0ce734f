// Package template implements the PromptTemplate repository using PostgreSQL.
package template

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const table = "prompt_templates"

var columns = []string{
	"id", "name", "description", "content", "variables",
	"is_active", "created_at", "updated_at",
}

// Repo provides prompt template persistence backed by PostgreSQL.
// The variables list is stored as JSONB.
type Repo struct {
	db postgres.Querier
}

// New creates a new prompt template repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a template. Only one active template may carry a name.
func (r *Repo) Create(ctx context.Context, tpl *domain.PromptTemplate) (*domain.PromptTemplate, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(tpl.ID, tpl.Name, tpl.Description, tpl.Content, variables(tpl.Variables),
			tpl.IsActive, tpl.CreatedAt, tpl.UpdatedAt).
		Suffix(postgres.Returning(columns))

	row, err := postgres.Get[domain.PromptTemplate](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_template", tpl.Name)
	}
	return row, nil
}

// GetByID returns a template regardless of its active flag.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PromptTemplate, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	row, err := postgres.Get[domain.PromptTemplate](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_template", id)
	}
	return row, nil
}

// GetActiveByName returns the active template with the given name.
func (r *Repo) GetActiveByName(ctx context.Context, name string) (*domain.PromptTemplate, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": name, "is_active": true})

	row, err := postgres.Get[domain.PromptTemplate](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_template", name)
	}
	return row, nil
}

// ListActive returns every active template ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.PromptTemplate, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	rows, err := postgres.Select[domain.PromptTemplate](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_templates", "active")
	}
	return rows, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PromptTemplateUpdateParams) (*domain.PromptTemplate, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Suffix(postgres.Returning(columns))

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.Description != nil {
		query = query.Set("description", *params.Description)
	}
	if params.Content != nil {
		query = query.Set("content", *params.Content)
	}
	if params.Variables != nil {
		query = query.Set("variables", variables(params.Variables))
	}
	if params.IsActive != nil {
		query = query.Set("is_active", *params.IsActive)
	}

	row, err := postgres.Get[domain.PromptTemplate](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "prompt_template", id)
	}
	return row, nil
}

// Deactivate soft-deletes a template.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().
		Update(table).
		Set("is_active", false).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "prompt_template", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "prompt_template", id)
	}
	return nil
}

// variables never stores JSON null.
func variables(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
