package dto

// RegisterRequest is the JSON body for POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginRequest is the form body for POST /auth/jwt/login.
// The email travels in the username field.
type LoginRequest struct {
	Username string `form:"username" binding:"required,email"`
	Password string `form:"password" binding:"required,min=1"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
