package session

import (
	"context"
	"net/http"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// VarSignedInAs holds the administrator's user id while they act as another user.
const VarSignedInAs = "signedInAs"

// Vars are the variables stored on one session.
type Vars map[string]string

// SignedInAs returns the impersonating user's id, or nil.
func (v Vars) SignedInAs() *kernel.UserID {
	id, ok := kernel.ParseUserID(v[VarSignedInAs])
	if !ok {
		return nil
	}
	return &id
}

type Store interface {
	// Get returns the session's variables. Unknown sessions have none.
	Get(ctx context.Context, sessionID string) (Vars, error)
	SetVar(ctx context.Context, sessionID, name, value string) error
	DeleteVar(ctx context.Context, sessionID, name string) error
}

var ErrRegistry = errx.NewRegistry("SESSION")

var (
	CodeInvalidID = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, http.StatusBadRequest, "Invalid session id")
	CodeStore     = ErrRegistry.Register("STORE", errx.TypeExternal, http.StatusServiceUnavailable, "Session store unavailable")
)

func ErrInvalidID() *errx.Error { return ErrRegistry.New(CodeInvalidID) }
