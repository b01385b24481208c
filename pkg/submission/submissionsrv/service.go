package submissionsrv

import (
	"context"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/session"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

// SubmitInput is one "finish submission" request.
type SubmitInput struct {
	Auth         *kernel.AuthContext
	JournalPath  string
	SubmissionID kernel.SubmissionID
	IP           string
	UserAgent    string
}

type Service struct {
	journals    submission.JournalRepository
	users       submission.UserRepository
	submissions submission.SubmissionRepository
	sessions    session.Store
	step        *Step4
}

func NewService(
	journals submission.JournalRepository,
	users submission.UserRepository,
	submissions submission.SubmissionRepository,
	sessions session.Store,
	step *Step4,
) *Service {
	return &Service{
		journals:    journals,
		users:       users,
		submissions: submissions,
		sessions:    sessions,
		step:        step,
	}
}

// Submit completes the author's submission and returns its id.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (kernel.SubmissionID, error) {
	if !in.Auth.IsValid() {
		return 0, submission.ErrInvalidRequest().WithDetail("reason", "missing authenticated user")
	}

	journal, err := s.journals.FindByPath(ctx, in.JournalPath)
	if err != nil {
		return 0, err
	}

	user, err := s.users.FindByID(ctx, in.Auth.UserID)
	if err != nil {
		return 0, err
	}

	sub, err := s.submissions.FindByID(ctx, in.SubmissionID)
	if err != nil {
		return 0, err
	}

	// Ownership
	if sub.JournalID != journal.ID {
		return 0, submission.ErrJournalMismatch().
			WithDetail("submission_id", sub.ID).
			WithDetail("journal", journal.Path)
	}
	if sub.SubmitterID != user.ID && !in.Auth.IsAdmin() {
		return 0, submission.ErrNotOwner().WithDetail("submission_id", sub.ID)
	}
	if sub.IsSubmitted() {
		return 0, submission.ErrAlreadySubmitted().WithDetail("submission_id", sub.ID)
	}

	sess, err := s.loadSession(ctx, in.Auth.SessionID)
	if err != nil {
		return 0, err
	}

	req := &submission.Request{
		User:      user,
		Session:   sess,
		Journal:   journal,
		IP:        in.IP,
		UserAgent: in.UserAgent,
	}
	return s.step.Execute(ctx, req, sub)
}

func (s *Service) loadSession(ctx context.Context, sessionID string) (submission.Session, error) {
	sess := submission.Session{ID: sessionID}
	if sessionID == "" {
		return sess, nil
	}
	vars, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return sess, err
	}
	sess.SignedInAs = vars.SignedInAs()
	return sess, nil
}
