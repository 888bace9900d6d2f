package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/auth/domain"
	"planner-backend/internal/auth/dto"
	"planner-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register creates a new user account
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation_error"})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered", "kind": "conflict"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": "internal"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login authenticates a user via form fields and returns a bearer token
// POST /auth/jwt/login  (username=email, password)
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation_error"})
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "kind": "unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": "internal"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}
