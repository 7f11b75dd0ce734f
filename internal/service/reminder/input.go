package reminder

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const maxListLimit = 500

// GenerateReminderInput selects the goal to remind about.
type GenerateReminderInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GenerateReminderInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListAIMessagesInput filters the audit log. Zero Limit means all.
type ListAIMessagesInput struct {
	UserID uuid.UUID
	GoalID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListAIMessagesInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GoalID != nil && *i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "invalid"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
