package usecase

import (
	"planner-backend/internal/auth/domain"
	"planner-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a new user account
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)

	// Login checks credentials and issues a bearer token
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// IssueToken signs a token carrying the user id and the configured expiry
	IssueToken(user *domain.User) (string, error)

	// ValidateToken verifies a bearer token and resolves its user
	ValidateToken(tokenString string) (*domain.User, error)
}
