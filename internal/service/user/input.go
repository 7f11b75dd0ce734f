package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const (
	maxUsernameLength    = 50
	maxDisplayNameLength = 100
)

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Username     string
	DisplayName  string
	ReminderTime *string
	Timezone     *string
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.DisplayName)) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 100 characters"})
	}
	errs = appendPreferenceErrors(errs, i.ReminderTime, i.Timezone)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePreferencesInput holds a partial preferences update.
type UpdatePreferencesInput struct {
	UserID       uuid.UUID
	DisplayName  *string
	ReminderTime *string
	Timezone     *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.DisplayName == nil && i.ReminderTime == nil && i.Timezone == nil {
		errs = append(errs, domain.FieldError{Field: "preferences", Message: "at least one field must be provided"})
	}
	if i.DisplayName != nil && utf8.RuneCountInString(strings.TrimSpace(*i.DisplayName)) > maxDisplayNameLength {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "max 100 characters"})
	}
	errs = appendPreferenceErrors(errs, i.ReminderTime, i.Timezone)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendPreferenceErrors(errs []domain.FieldError, reminderTime, timezone *string) []domain.FieldError {
	if reminderTime != nil {
		if _, err := time.Parse("15:04", strings.TrimSpace(*reminderTime)); err != nil {
			errs = append(errs, domain.FieldError{Field: "reminder_time", Message: "must be HH:MM"})
		}
	}
	if timezone != nil {
		tz := strings.TrimSpace(*timezone)
		if tz == "" {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "must not be empty"})
		} else if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
		}
	}
	return errs
}

// trimOrNil trims whitespace, keeping nil as nil.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
