package eventlog

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
)

// Logger appends entries to the repository and echoes them to the
// application log as audit events.
type Logger struct {
	repo Repository
	now  func() time.Time
}

func NewLogger(repo Repository) *Logger {
	return &Logger{repo: repo, now: time.Now}
}

func (l *Logger) LogEvent(ctx context.Context, actor Actor, submissionID kernel.SubmissionID, eventType EventType, messageKey string, params map[string]string) error {
	entry, err := l.repo.Append(ctx, Entry{
		AssocType:  AssocTypeSubmission,
		AssocID:    submissionID,
		UserID:     actor.UserID,
		EventType:  eventType,
		MessageKey: messageKey,
		Params:     params,
		IP:         actor.IP,
		DateLogged: l.now().UTC(),
	})
	if err != nil {
		return err
	}

	logx.WithFields(logx.Fields{
		"audit_event":   messageKey,
		"event_type":    int64(eventType),
		"entry_id":      entry.ID,
		"submission_id": submissionID,
		"user_id":       actor.UserID,
		"ip":            actor.IP,
	}).Info("Audit: submission event")
	return nil
}

func (l *Logger) History(ctx context.Context, submissionID kernel.SubmissionID) ([]Entry, error) {
	return l.repo.ListBySubmission(ctx, submissionID)
}
