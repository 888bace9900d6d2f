package delivery

import (
	"net/http"
	"strings"

	"planner-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates the request via its Bearer token and stores
// the owner's user id in the context. Every failure mode answers with the
// same kind and message.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c)
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token", "kind": "unauthorized"})
	c.Abort()
}
