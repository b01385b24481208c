package submission

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

type SubmissionRepository interface {
	// FindByID loads a submission with its authors and accepted settings
	FindByID(ctx context.Context, id kernel.SubmissionID) (*Submission, error)

	// MarkSubmitted closes the workflow: progress 0 and date_submitted set
	MarkSubmitted(ctx context.Context, id kernel.SubmissionID, at time.Time) error
}

type UserRepository interface {
	FindByID(ctx context.Context, id kernel.UserID) (*User, error)
	FullName(ctx context.Context, id kernel.UserID) (string, error)
}

type JournalRepository interface {
	FindByPath(ctx context.Context, path string) (*Journal, error)
	FindByID(ctx context.Context, id kernel.JournalID) (*Journal, error)
}
