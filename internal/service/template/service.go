// Package template manages the prompt templates used for AI generation.
package template

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

type templateRepo interface {
	Create(ctx context.Context, tpl *domain.PromptTemplate) (*domain.PromptTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PromptTemplate, error)
	ListActive(ctx context.Context) ([]domain.PromptTemplate, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PromptTemplateUpdateParams) (*domain.PromptTemplate, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// Service provides prompt template operations.
type Service struct {
	templates templateRepo
	log       *slog.Logger
}

// NewService creates a new Template service.
func NewService(log *slog.Logger, templates templateRepo) *Service {
	return &Service{
		templates: templates,
		log:       log.With("service", "template"),
	}
}
