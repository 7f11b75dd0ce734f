package template

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
	"github.com/heartmarshall/habitcoach-backend/internal/service/coaching"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxContentLength     = 20000
	maxVariables         = 50
)

var variableRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CreateTemplateInput holds the parameters for creating a template.
type CreateTemplateInput struct {
	Name        string
	Description string
	Content     string
	Variables   []string
}

// Validate checks all fields and collects all errors.
func (i CreateTemplateInput) Validate() error {
	errs := validateFields(&i.Name, &i.Description, &i.Content, i.Variables)
	if len(errs) == 0 {
		errs = appendPlaceholderErrors(errs, domain.PromptTemplate{Content: i.Content, Variables: i.Variables})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTemplateInput holds a partial template update. Nil fields are
// unchanged.
type UpdateTemplateInput struct {
	TemplateID  uuid.UUID
	Name        *string
	Description *string
	Content     *string
	Variables   []string
	IsActive    *bool
}

// Validate checks the fields that are set. The placeholder invariant is
// checked against the stored template by the service.
func (i UpdateTemplateInput) Validate() error {
	var errs []domain.FieldError

	if i.TemplateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "template_id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Name, i.Description, i.Content, i.Variables)...)

	if i.Name == nil && i.Description == nil && i.Content == nil && i.Variables == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply returns tpl with the update merged in.
func (i UpdateTemplateInput) apply(tpl domain.PromptTemplate) domain.PromptTemplate {
	if i.Name != nil {
		tpl.Name = strings.TrimSpace(*i.Name)
	}
	if i.Description != nil {
		tpl.Description = strings.TrimSpace(*i.Description)
	}
	if i.Content != nil {
		tpl.Content = *i.Content
	}
	if i.Variables != nil {
		tpl.Variables = i.Variables
	}
	return tpl
}

func (i UpdateTemplateInput) params() domain.PromptTemplateUpdateParams {
	p := domain.PromptTemplateUpdateParams{
		Content:   i.Content,
		Variables: i.Variables,
		IsActive:  i.IsActive,
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		p.Name = &name
	}
	if i.Description != nil {
		desc := strings.TrimSpace(*i.Description)
		p.Description = &desc
	}
	return p
}

// validateFields checks the non-nil fields. A nil variables slice is not
// checked.
func validateFields(name, description, content *string, variables []string) []domain.FieldError {
	var errs []domain.FieldError

	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if utf8.RuneCountInString(n) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 1000 characters"})
	}
	if content != nil {
		if strings.TrimSpace(*content) == "" {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		} else if utf8.RuneCountInString(*content) > maxContentLength {
			errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
		}
	}

	if len(variables) > maxVariables {
		errs = append(errs, domain.FieldError{Field: "variables", Message: "max 50 variables"})
	}
	seen := make(map[string]bool, len(variables))
	for idx, v := range variables {
		field := fmt.Sprintf("variables[%d]", idx)
		if !variableRe.MatchString(v) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a valid identifier"})
			continue
		}
		if seen[v] {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate variable"})
		}
		seen[v] = true
	}

	return errs
}

func appendPlaceholderErrors(errs []domain.FieldError, tpl domain.PromptTemplate) []domain.FieldError {
	for _, name := range coaching.MissingPlaceholders(tpl) {
		errs = append(errs, domain.FieldError{
			Field:   "variables",
			Message: fmt.Sprintf("%s has no placeholder in content", coaching.Placeholder(name)),
		})
	}
	return errs
}
