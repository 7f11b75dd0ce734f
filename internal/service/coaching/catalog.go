package coaching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// MotivationalTemplate is the name of the built-in post-check-in template.
const MotivationalTemplate = "motivational_message"

type templateStore interface {
	GetActiveByName(ctx context.Context, name string) (*domain.PromptTemplate, error)
	Create(ctx context.Context, tpl *domain.PromptTemplate) (*domain.PromptTemplate, error)
}

// builtinTemplates are seeded by the catalog when no active template of
// the same name exists.
var builtinTemplates = []domain.PromptTemplate{
	{
		Name:        MotivationalTemplate,
		Description: "Congratulation sent right after a check-in",
		Content: `The user just checked in on the goal "{goal_title}"!
Username: {username}
Consecutive days: {consecutive_days}
Mood score: {mood_score}/10
Check-in notes: {checkin_notes}

Write an encouraging message under 30 words that acknowledges the effort and cheers them on.`,
		Variables: []string{"username", "goal_title", "consecutive_days", "mood_score", "checkin_notes"},
	},
}

// BuiltinTemplate returns a copy of the built-in template with name.
func BuiltinTemplate(name string) (domain.PromptTemplate, bool) {
	for _, tpl := range builtinTemplates {
		if tpl.Name == name {
			tpl.Variables = append([]string(nil), tpl.Variables...)
			return tpl, true
		}
	}
	return domain.PromptTemplate{}, false
}

// Catalog resolves named templates and owns seeding of the built-in ones.
type Catalog struct {
	templates templateStore
	now       func() time.Time
	log       *slog.Logger
}

// NewCatalog creates a template catalog.
func NewCatalog(log *slog.Logger, templates templateStore) *Catalog {
	return &Catalog{
		templates: templates,
		now:       time.Now,
		log:       log.With("service", "template_catalog"),
	}
}

// EnsureDefaults creates every built-in template that has no active row.
// Safe to run repeatedly and concurrently.
func (c *Catalog) EnsureDefaults(ctx context.Context) error {
	for _, tpl := range builtinTemplates {
		if _, err := c.ensure(ctx, tpl.Name); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the active template with name. A missing built-in is
// seeded on first use; any other missing name is domain.ErrNotFound.
func (c *Catalog) Resolve(ctx context.Context, name string) (*domain.PromptTemplate, error) {
	if _, ok := BuiltinTemplate(name); ok {
		return c.ensure(ctx, name)
	}

	tpl, err := c.templates.GetActiveByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get template %q: %w", name, err)
	}
	return tpl, nil
}

func (c *Catalog) ensure(ctx context.Context, name string) (*domain.PromptTemplate, error) {
	existing, err := c.templates.GetActiveByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get template %q: %w", name, err)
	}

	tpl, _ := BuiltinTemplate(name)
	now := c.now().UTC()
	tpl.ID = uuid.New()
	tpl.IsActive = true
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	created, err := c.templates.Create(ctx, &tpl)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Seeded concurrently by another request.
		return c.templates.GetActiveByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("seed template %q: %w", name, err)
	}

	c.log.InfoContext(ctx, "built-in template seeded",
		slog.String("name", name),
		slog.String("template_id", created.ID.String()),
	)
	return created, nil
}
