package goal

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 2000
)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Frequency   *domain.Frequency
	TargetCount *int
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	errs = appendTitleErrors(errs, i.Title)
	errs = appendCommonErrors(errs, &i.Description, i.Frequency, i.TargetCount)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGoalInput holds a partial goal update. Nil fields are unchanged.
type UpdateGoalInput struct {
	GoalID      uuid.UUID
	Title       *string
	Description *string
	Frequency   *domain.Frequency
	TargetCount *int
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	errs = appendCommonErrors(errs, i.Description, i.Frequency, i.TargetCount)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 100 characters"})
	}
	return errs
}

func appendCommonErrors(errs []domain.FieldError, description *string, freq *domain.Frequency, target *int) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if freq != nil && !freq.IsValid() {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be daily, weekly or monthly"})
	}
	if target != nil && *target < 1 {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must be at least 1"})
	}
	return errs
}
