package eventlog

import (
	"context"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// EventType classifies a submission log entry.
type EventType int64

const (
	SubmissionSubmit  EventType = 0x10000001
	ChecklistAccepted EventType = 0x10000011
	CopyrightAccepted EventType = 0x10000012
	PrivacyAccepted   EventType = 0x10000013
)

// Message keys resolved by the UI when the log is displayed.
const (
	KeySubmissionSubmitted = "submission.event.submissionSubmitted"
	KeyChecklistAccepted   = "submission.event.submissionChecklistAccepted"
	KeyCopyrightAccepted   = "submission.event.submissionCopyrightAccepted"
	KeyPrivacyAccepted     = "submission.event.submissionPrivacyAccepted"
)

// Param names carried by the acceptance entries.
const (
	ParamSubmissionChecklist = "submissionChecklist"
	ParamCopyrightNotice     = "copyrightNotice"
	ParamPrivacyStatement    = "privacyStatement"
)

const AssocTypeSubmission = "submission"

type Entry struct {
	ID         int64               `json:"id"`
	AssocType  string              `json:"assoc_type"`
	AssocID    kernel.SubmissionID `json:"assoc_id"`
	UserID     kernel.UserID       `json:"user_id"`
	EventType  EventType           `json:"event_type"`
	MessageKey string              `json:"message"`
	Params     map[string]string   `json:"params,omitempty"`
	IP         string              `json:"ip_address,omitempty"`
	DateLogged time.Time           `json:"date_logged"`
}

// Actor is who performed the logged action.
type Actor struct {
	UserID kernel.UserID
	IP     string
}

type Repository interface {
	// Append durably stores e and returns it with its id set
	Append(ctx context.Context, e Entry) (Entry, error)
	ListBySubmission(ctx context.Context, submissionID kernel.SubmissionID) ([]Entry, error)
}

// EventLogger records submission events.
type EventLogger interface {
	LogEvent(ctx context.Context, actor Actor, submissionID kernel.SubmissionID, eventType EventType, messageKey string, params map[string]string) error
}
