package submission

import (
	"strings"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// Journal is the context a submission belongs to, reduced to the settings
// the submission workflow reads.
type Journal struct {
	ID            kernel.JournalID `db:"id" json:"id"`
	Path          string           `db:"path" json:"path"`
	Name          string           `db:"name" json:"name"`
	ContactEmail  string           `db:"contact_email" json:"contact_email"`
	ContactName   string           `db:"contact_name" json:"contact_name"`
	PrimaryLocale kernel.Locale    `db:"primary_locale" json:"primary_locale"`

	CopySubmissionAckPrimaryContact bool   `db:"copy_submission_ack_primary_contact" json:"copy_submission_ack_primary_contact"`
	CopySubmissionAckAddress        string `db:"copy_submission_ack_address" json:"copy_submission_ack_address"`
}

type User struct {
	ID         kernel.UserID `db:"id" json:"id"`
	Username   string        `db:"username" json:"username"`
	Email      string        `db:"email" json:"email"`
	GivenName  string        `db:"given_name" json:"given_name"`
	FamilyName string        `db:"family_name" json:"family_name"`
}

func (u User) FullName() string {
	return joinName(u.GivenName, u.FamilyName)
}

type Author struct {
	ID             kernel.AuthorID     `db:"id" json:"id"`
	SubmissionID   kernel.SubmissionID `db:"submission_id" json:"submission_id"`
	Email          string              `db:"email" json:"email"`
	GivenName      string              `db:"given_name" json:"given_name"`
	FamilyName     string              `db:"family_name" json:"family_name"`
	Seq            int                 `db:"seq" json:"seq"`
	PrimaryContact bool                `db:"primary_contact" json:"primary_contact"`
}

func (a Author) FullName() string {
	return joinName(a.GivenName, a.FamilyName)
}

// ChecklistItem is one entry of the journal's submission checklist as the
// author accepted it.
type ChecklistItem struct {
	Order   int    `json:"order"`
	Content string `json:"content"`
}

// Acceptance holds what the author agreed to in one locale.
type Acceptance struct {
	Checklist        []ChecklistItem `json:"checklist"`
	CopyrightNotice  string          `json:"copyright_notice,omitempty"`
	PrivacyStatement string          `json:"privacy_statement,omitempty"`
}

type Submission struct {
	ID            kernel.SubmissionID `json:"id"`
	JournalID     kernel.JournalID    `json:"journal_id"`
	SubmitterID   kernel.UserID       `json:"submitter_id"`
	Title         string              `json:"title"`
	Progress      int                 `json:"submission_progress"`
	DateSubmitted *time.Time          `json:"date_submitted,omitempty"`

	// Authors in display order
	Authors  []Author                     `json:"authors"`
	Accepted map[kernel.Locale]Acceptance `json:"accepted"`
}

// PrimaryAuthor returns the author flagged as primary contact, or nil.
func (s *Submission) PrimaryAuthor() *Author {
	for i := range s.Authors {
		if s.Authors[i].PrimaryContact {
			return &s.Authors[i]
		}
	}
	return nil
}

// LocalizedAcceptance returns the acceptance recorded for locale.
func (s *Submission) LocalizedAcceptance(locale kernel.Locale) Acceptance {
	return s.Accepted[locale]
}

// CopyrightAccepted reports whether a copyright notice was accepted in any
// locale. The notice itself is read per locale, so it may be empty for the
// journal's primary locale even when this returns true.
func (s *Submission) CopyrightAccepted() bool {
	for _, a := range s.Accepted {
		if strings.TrimSpace(a.CopyrightNotice) != "" {
			return true
		}
	}
	return false
}

// IsSubmitted reports whether the workflow steps are complete.
func (s *Submission) IsSubmitted() bool {
	return s.Progress == 0 && s.DateSubmitted != nil
}

func joinName(given, family string) string {
	return strings.TrimSpace(strings.TrimSpace(given) + " " + strings.TrimSpace(family))
}
