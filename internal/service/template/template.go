package template

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// CreateTemplate stores a new active template.
func (s *Service) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.PromptTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vars := input.Variables
	if vars == nil {
		vars = []string{}
	}

	now := time.Now().UTC()
	created, err := s.templates.Create(ctx, &domain.PromptTemplate{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Content:     input.Content,
		Variables:   vars,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	s.log.InfoContext(ctx, "template created",
		slog.String("template_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

// GetTemplate returns a template whether active or not.
func (s *Service) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.PromptTemplate, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("template_id", "required")
	}

	tpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return tpl, nil
}

// ListTemplates returns the active templates.
func (s *Service) ListTemplates(ctx context.Context) ([]domain.PromptTemplate, error) {
	list, err := s.templates.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return list, nil
}

// UpdateTemplate applies a partial update. The merged template must still
// declare only variables that appear in its content.
func (s *Service) UpdateTemplate(ctx context.Context, input UpdateTemplateInput) (*domain.PromptTemplate, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.templates.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}

	if errs := appendPlaceholderErrors(nil, input.apply(*current)); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	updated, err := s.templates.Update(ctx, input.TemplateID, input.params())
	if err != nil {
		return nil, fmt.Errorf("update template: %w", err)
	}

	s.log.InfoContext(ctx, "template updated",
		slog.String("template_id", updated.ID.String()),
		slog.Bool("active", updated.IsActive),
	)
	return updated, nil
}

// DeactivateTemplate soft-deletes a template.
func (s *Service) DeactivateTemplate(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("template_id", "required")
	}

	if err := s.templates.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate template: %w", err)
	}

	s.log.InfoContext(ctx, "template deactivated", slog.String("template_id", id.String()))
	return nil
}
