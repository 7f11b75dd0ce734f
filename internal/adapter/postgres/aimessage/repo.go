// Package aimessage implements the append-only AIMessage audit log using PostgreSQL.
package aimessage

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const table = "ai_messages"

var columns = []string{
	"id", "user_id", "goal_id", "prompt_template_id", "filled_prompt",
	"ai_response", "context_data", "source", "created_at",
}

// Repo provides AI message persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new AI message repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends a generation record. context_data is stored as JSONB.
func (r *Repo) Create(ctx context.Context, m *domain.AIMessage) (*domain.AIMessage, error) {
	contextData := m.ContextData
	if contextData == nil {
		contextData = map[string]any{}
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(m.ID, m.UserID, m.GoalID, m.PromptTemplateID, m.FilledPrompt,
			m.AIResponse, contextData, string(m.Source), m.CreatedAt).
		Suffix(postgres.Returning(columns))

	row, err := postgres.Get[domain.AIMessage](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "ai_message", m.ID)
	}
	return row, nil
}

// List returns the user's AI messages, newest first. A nil goalID spans all goals.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, goalID *uuid.UUID, limit int) ([]domain.AIMessage, error) {
	where := squirrel.Eq{"user_id": userID}
	if goalID != nil {
		where["goal_id"] = *goalID
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	rows, err := postgres.Select[domain.AIMessage](ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return nil, postgres.MapError(err, "ai_messages of user", userID)
	}
	return rows, nil
}
