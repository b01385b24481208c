package mail

import (
	"context"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
)

type TemplateStore interface {
	// Find returns the journal's template for key in locale, falling back to
	// the site-wide default. Missing templates yield ErrTemplateNotFound.
	Find(ctx context.Context, journalID kernel.JournalID, key Key, locale kernel.Locale) (*Template, error)
}

type EditorDirectory interface {
	// AssignedSubEditors lists editors assigned to the submission in stage.
	AssignedSubEditors(ctx context.Context, submissionID kernel.SubmissionID, stage StageID) ([]notifx.Address, error)
}

// Deliverer renders and delivers a message. *notifx.Client satisfies it.
type Deliverer interface {
	RenderAndSend(ctx context.Context, subjectTpl, bodyTpl string, params map[string]string, msg notifx.EmailMessage, opts ...notifx.Option) error
}
