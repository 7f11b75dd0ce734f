package checkin

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const (
	maxNotesLength = 2000
	maxListLimit   = 500
)

// CreateCheckInInput holds the parameters for a check-in. A nil
// CheckInDate means today in the user's timezone.
type CreateCheckInInput struct {
	UserID      uuid.UUID
	GoalID      uuid.UUID
	CheckInDate *time.Time
	Notes       string
	MoodScore   *int
}

// Validate checks all fields and collects all errors.
func (i CreateCheckInInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}
	if i.MoodScore != nil && (*i.MoodScore < domain.MinMoodScore || *i.MoodScore > domain.MaxMoodScore) {
		errs = append(errs, domain.FieldError{Field: "mood_score", Message: "must be between 1 and 10"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCheckInsInput filters a check-in listing. GoalID is optional.
type ListCheckInsInput struct {
	UserID uuid.UUID
	GoalID *uuid.UUID
	Limit  int
}

// Validate checks all fields and collects all errors.
func (i ListCheckInsInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StatsInput selects whose statistics to compute. Without GoalID the
// statistics span all goals.
type StatsInput struct {
	UserID uuid.UUID
	GoalID *uuid.UUID
}

// Validate checks all fields.
func (i StatsInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	return nil
}
