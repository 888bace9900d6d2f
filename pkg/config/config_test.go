package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "HS256", cfg.JWTAlg)
	assert.Equal(t, 60*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.SkipDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ALG", "HS512")
	t.Setenv("JWT_EXPIRE_MINUTES", "15")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://app.example.com")
	t.Setenv("SKIP_DB", "1")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "HS512", cfg.JWTAlg)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.SkipDB)
}

func TestLoad_ZeroExpiryIsRespected(t *testing.T) {
	t.Setenv("JWT_EXPIRE_MINUTES", "0")
	cfg := Load()
	assert.Equal(t, time.Duration(0), cfg.JWTExpiry)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRE_MINUTES", "soon")
	cfg := Load()
	assert.Equal(t, 60*time.Minute, cfg.JWTExpiry)
}
