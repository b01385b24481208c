package iamcontainer

import (
	"github.com/Abraxas-365/journalsubmit/pkg/config"
	"github.com/Abraxas-365/journalsubmit/pkg/iam/auth"
	"github.com/Abraxas-365/journalsubmit/pkg/iam/auth/authinfra"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
)

// ---------------------------------------------------------------------------
// Deps: explicit external dependencies this bounded context requires.
// ---------------------------------------------------------------------------

type Deps struct {
	Cfg *config.Config
}

// ---------------------------------------------------------------------------
// Container: the public surface of the IAM module.
// ---------------------------------------------------------------------------

type Container struct {
	TokenService auth.TokenService

	// Middleware, needed by cmd/ to protect route groups
	AuthMiddleware *auth.TokenMiddleware
}

func New(deps Deps) *Container {
	logx.Info("🔧 Initializing IAM container...")

	c := &Container{}

	c.TokenService = auth.NewJWTService(
		deps.Cfg.Auth.JWTSecret,
		deps.Cfg.Auth.AccessTokenTTL,
		deps.Cfg.Auth.JWTIssuer,
	)

	// ── Middleware ────────────────────────────────────────────────────────

	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService, authinfra.NewLogxAuditService())

	logx.Info("✅ IAM container initialized")
	return c
}
