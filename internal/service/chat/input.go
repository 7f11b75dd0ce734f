package chat

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

const (
	maxMessageLength = 5000
	maxListLimit     = 1000
)

// RequestChannelInput names the two users of a direct channel, in any order.
type RequestChannelInput struct {
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RequestChannelInput) Validate() error {
	var errs []domain.FieldError

	if i.FromUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "from_user", Message: "required"})
	}
	if i.ToUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_user", Message: "required"})
	}
	if i.FromUserID != uuid.Nil && i.FromUserID == i.ToUserID {
		errs = append(errs, domain.FieldError{Field: "to_user", Message: "must differ from from_user"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SendMessageInput holds the parameters for sending a message.
type SendMessageInput struct {
	ChannelID  uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	Body       string
}

// Validate checks all fields and collects all errors.
func (i SendMessageInput) Validate() error {
	var errs []domain.FieldError

	if i.ChannelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "channel_id", Message: "required"})
	}
	if i.FromUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "from_user", Message: "required"})
	}
	if i.ToUserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "to_user", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if utf8.RuneCountInString(body) > maxMessageLength {
		errs = append(errs, domain.FieldError{Field: "message", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListMessagesInput selects a channel's messages. Zero Limit means all.
type ListMessagesInput struct {
	ChannelID uuid.UUID
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListMessagesInput) Validate() error {
	var errs []domain.FieldError

	if i.ChannelID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "channel_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 1000"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
