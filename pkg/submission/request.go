package submission

import "github.com/Abraxas-365/journalsubmit/pkg/kernel"

// Session carries the session variables the workflow cares about.
type Session struct {
	ID string

	// SignedInAs is the real administrator's id while they act as User.
	SignedInAs *kernel.UserID
}

// IsImpersonating reports whether the session is a "sign in as" session.
func (s Session) IsImpersonating() bool {
	return s.SignedInAs != nil && !s.SignedInAs.IsEmpty()
}

// Request is the per-call state of one workflow request.
type Request struct {
	User      *User
	Session   Session
	Journal   *Journal
	IP        string
	UserAgent string
}
