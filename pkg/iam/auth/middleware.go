package auth

import (
	"strings"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/iam"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

// TokenMiddleware authenticates requests with JWT access tokens
type TokenMiddleware struct {
	tokenService TokenService
	audit        AuditService
}

func NewAuthMiddleware(tokenService TokenService, audit AuditService) *TokenMiddleware {
	return &TokenMiddleware{
		tokenService: tokenService,
		audit:        audit,
	}
}

// Authenticate validates the bearer token (or access_token cookie) and
// stores the caller's AuthContext in fiber locals.
func (am *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := extractToken(c)
		if !ok {
			am.audit.LogTokenRejected(c.UserContext(), "missing token", c.IP(), c.Get("User-Agent"))
			return errx.ToFiber(c, iam.ErrUnauthorized())
		}

		claims, err := am.tokenService.ValidateAccessToken(token)
		if err != nil {
			am.audit.LogTokenRejected(c.UserContext(), err.Error(), c.IP(), c.Get("User-Agent"))
			return errx.ToFiber(c, iam.ErrInvalidToken())
		}

		c.Locals(kernel.AuthContextKey, claims.ToAuthContext())
		return c.Next()
	}
}

// RequireScope lets admins and callers holding scope through
func (am *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := FromFiber(c)
		if !ok {
			return errx.ToFiber(c, iam.ErrUnauthorized())
		}

		if !authContext.HasScope(scope) && !authContext.IsAdmin() {
			am.audit.LogAccessDenied(c.UserContext(), authContext.UserID, scope, c.IP())
			return errx.ToFiber(c, iam.ErrAccessDenied().WithDetail("required_scope", scope))
		}

		return c.Next()
	}
}

// FromFiber returns the AuthContext stored by Authenticate
func FromFiber(c *fiber.Ctx) (*kernel.AuthContext, bool) {
	authContext, ok := c.Locals(kernel.AuthContextKey).(*kernel.AuthContext)
	if !ok || !authContext.IsValid() {
		return nil, false
	}
	return authContext, true
}

func extractToken(c *fiber.Ctx) (string, bool) {
	if header := c.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "" {
			return parts[1], true
		}
	}
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, true
	}
	return "", false
}
