package auth

import (
	"context"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// TokenService defines the contract for JWT token management
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, sessionID string, claims map[string]any) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// AuditService records authentication decisions
type AuditService interface {
	LogTokenRejected(ctx context.Context, reason string, ip string, userAgent string)
	LogAccessDenied(ctx context.Context, userID kernel.UserID, scope string, ip string)
}
