package repository

import (
	"planner-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the interface for user data access.
// Emails are stored and compared lowercased.
type UserRepository interface {
	// Create persists a new user, assigning a fresh id.
	// Returns domain.ErrEmailTaken if the email already exists.
	Create(user *domain.User) error

	// FindByEmail returns the user with the given email, or nil if none.
	FindByEmail(email string) (*domain.User, error)

	// FindByID returns the user with the given id, or nil if none.
	FindByID(id string) (*domain.User, error)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
