package auth

import (
	"fmt"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

const audience = "journalsubmit-api"

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration, issuer string) *JWTService {
	if accessTokenTTL == 0 {
		accessTokenTTL = 15 * time.Minute
	}
	if issuer == "" {
		issuer = "journalsubmit"
	}

	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
		issuer:         issuer,
	}
}

// JWTClaims are the custom claims carried by access tokens
type JWTClaims struct {
	UserID    kernel.UserID `json:"user_id"`
	SessionID string        `json:"sid"`
	Email     string        `json:"email"`
	Scopes    []string      `json:"scopes"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token bound to a platform session
func (j *JWTService) GenerateAccessToken(userID kernel.UserID, sessionID string, claims map[string]any) (string, error) {
	now := time.Now()

	email, _ := claims["email"].(string)
	scopes, _ := claims["scopes"].([]string)
	if scopes == nil {
		scopes = []string{}
	}

	jwtClaims := JWTClaims{
		UserID:    userID,
		SessionID: sessionID,
		Email:     email,
		Scopes:    scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   userID.String(),
			Audience:  []string{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(j.accessTokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", ErrTokenGenerationFailed().WithDetail("error", err.Error())
	}

	return tokenString, nil
}

// ValidateAccessToken verifies signature, issuer, audience and expiry
func (j *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(j.issuer), jwt.WithAudience(audience))

	if err != nil {
		return nil, ErrTokenValidationFailed().WithDetail("error", err.Error())
	}

	if !token.Valid {
		return nil, ErrTokenValidationFailed().WithDetail("error", "token is invalid")
	}

	jwtClaims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, ErrTokenValidationFailed().WithDetail("error", "invalid claims type")
	}
	if jwtClaims.UserID.IsEmpty() {
		return nil, ErrTokenValidationFailed().WithDetail("error", "token has no user")
	}

	claims := &TokenClaims{
		UserID:    jwtClaims.UserID,
		SessionID: jwtClaims.SessionID,
		Email:     jwtClaims.Email,
		Scopes:    jwtClaims.Scopes,
	}
	if jwtClaims.IssuedAt != nil {
		claims.IssuedAt = jwtClaims.IssuedAt.Time
	}
	if jwtClaims.ExpiresAt != nil {
		claims.ExpiresAt = jwtClaims.ExpiresAt.Time
	}
	return claims, nil
}
