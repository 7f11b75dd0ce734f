package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// CreateUser registers a user. Preferences default to 09:00 UTC.
// A taken username returns domain.ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(input.Username),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		ReminderTime: domain.DefaultReminderTime,
		Timezone:     domain.DefaultTimezone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.ReminderTime != nil {
		u.ReminderTime = strings.TrimSpace(*input.ReminderTime)
	}
	if input.Timezone != nil {
		u.Timezone = strings.TrimSpace(*input.Timezone)
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("username", created.Username),
	)
	return created, nil
}

// GetUser returns the user with id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdatePreferences changes the mutable part of a user.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.UpdatePreferences(ctx, input.UserID, domain.UserPreferences{
		DisplayName:  trimOrNil(input.DisplayName),
		ReminderTime: trimOrNil(input.ReminderTime),
		Timezone:     trimOrNil(input.Timezone),
	})
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}

	s.log.InfoContext(ctx, "user preferences updated",
		slog.String("user_id", u.ID.String()),
		slog.String("reminder_time", u.ReminderTime),
		slog.String("timezone", u.Timezone),
	)
	return u, nil
}
