package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationSource tells which generator produced an AI response.
type GenerationSource string

const (
	GenerationSourceExternal GenerationSource = "external"
	GenerationSourceLocal    GenerationSource = "local"
)

func (s GenerationSource) String() string { return string(s) }

// AIMessage is the immutable audit record of one generation attempt.
// PromptTemplateID is nil for ad hoc prompts.
type AIMessage struct {
	ID               uuid.UUID        `db:"id"`
	UserID           uuid.UUID        `db:"user_id"`
	GoalID           uuid.UUID        `db:"goal_id"`
	PromptTemplateID *uuid.UUID       `db:"prompt_template_id"`
	FilledPrompt     string           `db:"filled_prompt"`
	AIResponse       string           `db:"ai_response"`
	ContextData      map[string]any   `db:"context_data"`
	Source           GenerationSource `db:"source"`
	CreatedAt        time.Time        `db:"created_at"`
}
