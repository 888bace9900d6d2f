package domain

import (
	"errors"
	"time"
)

// ErrEmailTaken is returned when registering an email that already exists
// (comparison is case-insensitive).
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials covers both unknown email and wrong password so the
// API cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken covers malformed, forged and expired tokens alike.
var ErrInvalidToken = errors.New("invalid or expired token")

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
