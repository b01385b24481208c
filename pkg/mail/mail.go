package mail

import (
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// Key identifies an email template.
type Key string

const (
	SubmissionAck        Key = "SUBMISSION_ACK"
	SubmissionAckNotUser Key = "SUBMISSION_ACK_NOT_USER"
)

func (k Key) String() string { return string(k) }

// StageID identifies an editorial workflow stage.
type StageID int

const (
	StageSubmission StageID = 1
)

// Roles whose stage assignments make a user a sub-editor.
const (
	RoleManager   = "manager"
	RoleSubEditor = "sub_editor"
)

var SubEditorRoles = []string{RoleManager, RoleSubEditor}

// Template is a localized email template. Subject and Body are Liquid
// sources rendered with the message params.
type Template struct {
	JournalID *kernel.JournalID `json:"journal_id,omitempty"`
	Key       Key               `json:"key"`
	Locale    kernel.Locale     `json:"locale"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Enabled   bool              `json:"enabled"`
}
