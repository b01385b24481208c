package submissionsrv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/session"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissionsrv"
)

type serviceHarness struct {
	*harness
	journals    *fakeJournals
	submissions *fakeSubmissions
	sessions    *fakeSessions
}

func newServiceHarness(sub *submission.Submission) *serviceHarness {
	return &serviceHarness{
		harness:     newHarness(),
		journals:    &fakeJournals{journals: []*submission.Journal{testJournal(), {ID: 2, Path: "other", PrimaryLocale: "en_US"}}},
		submissions: &fakeSubmissions{byID: map[kernel.SubmissionID]*submission.Submission{sub.ID: sub}},
		sessions:    &fakeSessions{vars: map[string]session.Vars{}},
	}
}

func (h *serviceHarness) service() *submissionsrv.Service {
	step := submissionsrv.NewStep4(submissionsrv.NewCompletionStep(h.submissions), h.finalizer())
	return submissionsrv.NewService(h.journals, h.users, h.submissions, h.sessions, step)
}

func submitInput(scopes ...string) submissionsrv.SubmitInput {
	return submissionsrv.SubmitInput{
		Auth:         &kernel.AuthContext{UserID: 7, SessionID: "sess-1", Scopes: scopes},
		JournalPath:  "jos",
		SubmissionID: 42,
		IP:           "10.0.0.1",
	}
}

func TestService_Submit(t *testing.T) {
	h := newServiceHarness(testSubmission(author(1, "ann@x.org", "Ann", true)))
	h.sessions.vars["sess-1"] = session.Vars{session.VarSignedInAs: "3"}

	id, err := h.service().Submit(context.Background(), submitInput())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected id %d", id)
	}

	if len(h.submissions.marked) != 1 || h.submissions.markedAt.IsZero() {
		t.Fatal("submission must be marked submitted before notifying")
	}
	stored := h.submissions.byID[42]
	if !stored.IsSubmitted() {
		t.Fatalf("stored submission not closed: %+v", stored)
	}

	if got := h.deliverer.Sent[0].Params["submittingUser"]; got != "Site Admin" {
		t.Fatalf("session impersonation not applied, got %q", got)
	}
	if len(h.events.logged) != 3 || h.events.logged[0].Actor.IP != "10.0.0.1" {
		t.Fatalf("unexpected log entries %+v", h.events.logged)
	}
}

func TestService_Submit_Ownership(t *testing.T) {
	t.Run("other journal", func(t *testing.T) {
		sub := testSubmission(author(1, "ann@x.org", "Ann", true))
		sub.JournalID = 2
		h := newServiceHarness(sub)
		_, err := h.service().Submit(context.Background(), submitInput())
		if !errx.HasCode(err, submission.CodeJournalMismatch) {
			t.Fatalf("expected journal mismatch, got %v", err)
		}
	})

	t.Run("someone else's submission", func(t *testing.T) {
		sub := testSubmission(author(1, "ann@x.org", "Ann", true))
		sub.SubmitterID = 8
		h := newServiceHarness(sub)
		_, err := h.service().Submit(context.Background(), submitInput())
		if !errx.HasCode(err, submission.CodeNotOwner) {
			t.Fatalf("expected not owner, got %v", err)
		}
		if len(h.submissions.marked) != 0 {
			t.Fatal("nothing may be persisted")
		}
	})

	t.Run("admin may submit for others", func(t *testing.T) {
		sub := testSubmission(author(1, "ann@x.org", "Ann", true))
		sub.SubmitterID = 8
		h := newServiceHarness(sub)
		if _, err := h.service().Submit(context.Background(), submitInput("admin:*")); err != nil {
			t.Fatalf("admin submit: %v", err)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		sub := testSubmission(author(1, "ann@x.org", "Ann", true))
		h := newServiceHarness(sub)
		if _, err := h.service().Submit(context.Background(), submitInput()); err != nil {
			t.Fatalf("first submit: %v", err)
		}
		_, err := h.service().Submit(context.Background(), submitInput())
		if !errx.HasCode(err, submission.CodeAlreadySubmitted) {
			t.Fatalf("expected already submitted, got %v", err)
		}
	})
}

func TestService_Submit_LookupErrors(t *testing.T) {
	h := newServiceHarness(testSubmission(author(1, "ann@x.org", "Ann", true)))

	in := submitInput()
	in.JournalPath = "missing"
	if _, err := h.service().Submit(context.Background(), in); !errx.HasCode(err, submission.CodeJournalNotFound) {
		t.Fatalf("expected journal not found, got %v", err)
	}

	in = submitInput()
	in.SubmissionID = 404
	if _, err := h.service().Submit(context.Background(), in); !errx.HasCode(err, submission.CodeSubmissionNotFound) {
		t.Fatalf("expected submission not found, got %v", err)
	}

	if _, err := h.service().Submit(context.Background(), submissionsrv.SubmitInput{}); !errx.HasCode(err, submission.CodeInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}

	boom := errors.New("redis down")
	h.sessions.err = boom
	if _, err := h.service().Submit(context.Background(), submitInput()); !errors.Is(err, boom) {
		t.Fatalf("expected session error, got %v", err)
	}
}

func TestStep4_BaseStepErrorStopsFinalizer(t *testing.T) {
	h := newServiceHarness(testSubmission(author(1, "ann@x.org", "Ann", true)))
	boom := errors.New("update failed")
	h.submissions.markErr = boom

	_, err := h.service().Submit(context.Background(), submitInput())
	if !errors.Is(err, boom) {
		t.Fatalf("expected base step error, got %v", err)
	}
	if len(h.deliverer.Sent) != 0 || len(h.events.logged) != 0 {
		t.Fatal("finalizer must not run when the base step fails")
	}
}

func TestStep4_NoAuthorsLeavesSubmissionUnsubmitted(t *testing.T) {
	sub := testSubmission()
	h := newServiceHarness(sub)

	_, err := h.service().Submit(context.Background(), submitInput())
	if !errx.HasCode(err, submission.CodeNoPrimaryAuthor) {
		t.Fatalf("expected no primary author error, got %v", err)
	}
	if len(h.submissions.marked) != 0 || sub.IsSubmitted() {
		t.Fatalf("submission must not be marked submitted, marked %v", h.submissions.marked)
	}
	if len(h.deliverer.Sent) != 0 || len(h.events.logged) != 0 {
		t.Fatal("nothing may be sent or logged")
	}

	// a retry after adding an author goes through
	sub.Authors = []submission.Author{author(1, "ann@x.org", "Ann", true)}
	if _, err := h.service().Submit(context.Background(), submitInput()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(h.submissions.marked) != 1 {
		t.Fatalf("expected one MarkSubmitted call, got %v", h.submissions.marked)
	}
}

func TestCompletionStep_ReloadsSubmission(t *testing.T) {
	sub := testSubmission(author(1, "ann@x.org", "Ann", true))
	repo := &fakeSubmissions{byID: map[kernel.SubmissionID]*submission.Submission{42: sub}}
	step := submissionsrv.NewCompletionStep(repo)

	working := *sub
	if err := step.Execute(context.Background(), &working); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if working.Progress != 0 || working.DateSubmitted == nil {
		t.Fatalf("working copy not refreshed: %+v", working)
	}
}
