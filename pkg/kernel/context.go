package kernel

// AuthContext is the authenticated caller, stored in fiber locals by the auth middleware
type AuthContext struct {
	UserID    UserID   `json:"user_id"`
	SessionID string   `json:"session_id"`
	Email     string   `json:"email"`
	Scopes    []string `json:"scopes"`
}

func (ac *AuthContext) IsValid() bool {
	return ac != nil && !ac.UserID.IsEmpty()
}

// HasScope matches exact scopes, "*" and "prefix:*" wildcards
func (ac *AuthContext) HasScope(scope string) bool {
	for _, s := range ac.Scopes {
		if s == scope || s == "*" {
			return true
		}
		if len(s) > 2 && s[len(s)-2:] == ":*" {
			prefix := s[:len(s)-2]
			if len(scope) > len(prefix) && scope[:len(prefix)] == prefix && scope[len(prefix)] == ':' {
				return true
			}
		}
	}
	return false
}

func (ac *AuthContext) IsAdmin() bool {
	return ac.HasScope("*") || ac.HasScope("admin:*")
}

type ContextKey string

const (
	AuthContextKey ContextKey = "auth_context"
	RequestIDKey   ContextKey = "request_id"
)
