package auth

import (
	"net/http"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// TokenClaims represents validated access token claims
type TokenClaims struct {
	UserID    kernel.UserID `json:"user_id"`
	SessionID string        `json:"sid"`
	Email     string        `json:"email"`
	Scopes    []string      `json:"scopes"`
	IssuedAt  time.Time     `json:"iat"`
	ExpiresAt time.Time     `json:"exp"`
}

// ToAuthContext converts claims into the request's auth context
func (c *TokenClaims) ToAuthContext() *kernel.AuthContext {
	return &kernel.AuthContext{
		UserID:    c.UserID,
		SessionID: c.SessionID,
		Email:     c.Email,
		Scopes:    c.Scopes,
	}
}

// ============================================================================
// Error Registry
// ============================================================================

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeTokenGenerationFailed = ErrRegistry.Register("TOKEN_GENERATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeTokenValidationFailed = ErrRegistry.Register("TOKEN_VALIDATION_FAILED", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
)

func ErrTokenGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenGenerationFailed)
}

func ErrTokenValidationFailed() *errx.Error {
	return ErrRegistry.New(CodeTokenValidationFailed)
}
