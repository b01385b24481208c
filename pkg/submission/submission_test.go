package submission_test

import (
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

func TestPrimaryAuthor(t *testing.T) {
	s := &submission.Submission{Authors: []submission.Author{
		{ID: 1, Email: "a@x.org"},
		{ID: 2, Email: "b@x.org", PrimaryContact: true},
	}}
	if p := s.PrimaryAuthor(); p == nil || p.ID != 2 {
		t.Fatalf("expected author 2, got %+v", p)
	}

	s.Authors[1].PrimaryContact = false
	if s.PrimaryAuthor() != nil {
		t.Fatal("no author is flagged, expected nil")
	}
}

func TestCopyrightAccepted(t *testing.T) {
	s := &submission.Submission{Accepted: map[kernel.Locale]submission.Acceptance{
		"en_US": {PrivacyStatement: "p"},
	}}
	if s.CopyrightAccepted() {
		t.Fatal("no copyright notice recorded")
	}

	s.Accepted["de_DE"] = submission.Acceptance{CopyrightNotice: "Urheberrecht"}
	if !s.CopyrightAccepted() {
		t.Fatal("copyright accepted in de_DE")
	}
	if s.LocalizedAcceptance("en_US").CopyrightNotice != "" {
		t.Fatal("en_US carries no copyright text")
	}
}

func TestFullName(t *testing.T) {
	if got := (submission.User{GivenName: "Ann", FamilyName: ""}).FullName(); got != "Ann" {
		t.Fatalf("unexpected %q", got)
	}
	if got := (submission.Author{GivenName: " Ann ", FamilyName: "Lee"}).FullName(); got != "Ann Lee" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestSession_IsImpersonating(t *testing.T) {
	admin := kernel.UserID(9)
	if (submission.Session{}).IsImpersonating() {
		t.Fatal("empty session is not impersonating")
	}
	if !(submission.Session{SignedInAs: &admin}).IsImpersonating() {
		t.Fatal("signedInAs set, expected impersonation")
	}
}
