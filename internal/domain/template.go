package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromptTemplate is a named prompt blueprint. Every declared variable is
// expected to appear at least once as a {variable} placeholder in Content.
type PromptTemplate struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Content     string    `db:"content"`
	Variables   []string  `db:"variables"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PromptTemplateUpdateParams holds a partial template update.
type PromptTemplateUpdateParams struct {
	Name        *string
	Description *string
	Content     *string
	Variables   []string
	IsActive    *bool
}
