package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default reminder preferences for new users.
const (
	DefaultReminderTime = "09:00"
	DefaultTimezone     = "UTC"
)

// User is an application user. Identity fields never change after creation;
// ReminderTime and Timezone are user preferences.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	DisplayName  string    `db:"display_name"`
	ReminderTime string    `db:"reminder_time"`
	Timezone     string    `db:"timezone"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Name returns the display name, falling back to the username.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Location returns the user's timezone, UTC when unset or unknown.
func (u *User) Location() *time.Location {
	return ParseTimezone(u.Timezone)
}

// UserPreferences holds the mutable part of a user.
type UserPreferences struct {
	DisplayName  *string
	ReminderTime *string
	Timezone     *string
}
