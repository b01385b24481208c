package submissionsrv_test

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/eventlog"
	"github.com/Abraxas-365/journalsubmit/pkg/i18n"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/mail/mailtest"
	"github.com/Abraxas-365/journalsubmit/pkg/notification"
	"github.com/Abraxas-365/journalsubmit/pkg/routing"
	"github.com/Abraxas-365/journalsubmit/pkg/session"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
	"github.com/Abraxas-365/journalsubmit/pkg/submission/submissionsrv"
)

type recordedNotification struct {
	UserID   kernel.UserID
	Level    notification.Level
	Contents string
}

type fakeNotifier struct {
	created []recordedNotification
	err     error
}

func (n *fakeNotifier) CreateTrivialNotification(_ context.Context, userID kernel.UserID, level notification.Level, contents string) (*notification.Notification, error) {
	if n.err != nil {
		return nil, n.err
	}
	n.created = append(n.created, recordedNotification{userID, level, contents})
	return &notification.Notification{UserID: userID, Level: level, Contents: contents}, nil
}

type loggedEvent struct {
	Actor        eventlog.Actor
	SubmissionID kernel.SubmissionID
	Type         eventlog.EventType
	Key          string
	Params       map[string]string
}

type fakeEvents struct {
	logged []loggedEvent
	failAt int // 1-based append that fails, 0 never
}

var errAppend = errors.New("event log unavailable")

func (e *fakeEvents) LogEvent(_ context.Context, actor eventlog.Actor, id kernel.SubmissionID, typ eventlog.EventType, key string, params map[string]string) error {
	if e.failAt == len(e.logged)+1 {
		return errAppend
	}
	e.logged = append(e.logged, loggedEvent{actor, id, typ, key, params})
	return nil
}

func (e *fakeEvents) keys() []string {
	out := make([]string, len(e.logged))
	for i, l := range e.logged {
		out[i] = l.Key
	}
	return out
}

type fakeUsers struct {
	byID map[kernel.UserID]*submission.User
}

func (u *fakeUsers) FindByID(_ context.Context, id kernel.UserID) (*submission.User, error) {
	if user, ok := u.byID[id]; ok {
		cp := *user
		return &cp, nil
	}
	return nil, submission.ErrUserNotFound()
}

func (u *fakeUsers) FullName(ctx context.Context, id kernel.UserID) (string, error) {
	user, err := u.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.FullName(), nil
}

type fakeSubmissions struct {
	byID     map[kernel.SubmissionID]*submission.Submission
	marked   []kernel.SubmissionID
	markErr  error
	markedAt time.Time
}

func (s *fakeSubmissions) FindByID(_ context.Context, id kernel.SubmissionID) (*submission.Submission, error) {
	sub, ok := s.byID[id]
	if !ok {
		return nil, submission.ErrSubmissionNotFound()
	}
	cp := *sub
	return &cp, nil
}

func (s *fakeSubmissions) MarkSubmitted(_ context.Context, id kernel.SubmissionID, at time.Time) error {
	if s.markErr != nil {
		return s.markErr
	}
	sub, ok := s.byID[id]
	if !ok {
		return submission.ErrSubmissionNotFound()
	}
	s.marked = append(s.marked, id)
	s.markedAt = at
	sub.Progress = 0
	sub.DateSubmitted = &at
	return nil
}

type fakeJournals struct {
	journals []*submission.Journal
}

func (j *fakeJournals) FindByPath(_ context.Context, path string) (*submission.Journal, error) {
	for _, journal := range j.journals {
		if journal.Path == path {
			return journal, nil
		}
	}
	return nil, submission.ErrJournalNotFound()
}

func (j *fakeJournals) FindByID(_ context.Context, id kernel.JournalID) (*submission.Journal, error) {
	for _, journal := range j.journals {
		if journal.ID == id {
			return journal, nil
		}
	}
	return nil, submission.ErrJournalNotFound()
}

type fakeSessions struct {
	vars map[string]session.Vars
	err  error
}

func (s *fakeSessions) Get(_ context.Context, id string) (session.Vars, error) {
	return s.vars[id], s.err
}
func (s *fakeSessions) SetVar(context.Context, string, string, string) error { return nil }
func (s *fakeSessions) DeleteVar(context.Context, string, string) error      { return nil }

// harness wires a Finalizer over in-memory collaborators.
type harness struct {
	templates *mailtest.Templates
	editors   mailtest.Editors
	deliverer *mailtest.Deliverer
	notifier  *fakeNotifier
	events    *fakeEvents
	users     *fakeUsers
	mailOn    bool
}

func newHarness() *harness {
	return &harness{
		templates: mailtest.NewTemplates(
			mail.Template{Key: mail.SubmissionAck, Locale: "en_US", Subject: "Submission Acknowledgement", Body: "{{ authorName }}", Enabled: true},
			mail.Template{Key: mail.SubmissionAckNotUser, Locale: "en_US", Subject: "Submission Acknowledgement", Body: "{{ submitterName }}", Enabled: true},
		),
		deliverer: &mailtest.Deliverer{FailFor: map[string]bool{}},
		notifier:  &fakeNotifier{},
		events:    &fakeEvents{},
		users: &fakeUsers{byID: map[kernel.UserID]*submission.User{
			7: actingUser(),
			3: {ID: 3, Username: "admin", Email: "admin@jos.org", GivenName: "Site", FamilyName: "Admin"},
		}},
		mailOn: true,
	}
}

func (h *harness) finalizer() *submissionsrv.Finalizer {
	factory := mail.NewFactory(h.templates, h.editors, h.deliverer, h.mailOn, "en_US")
	return submissionsrv.NewFinalizer(
		factory,
		h.notifier,
		h.events,
		h.users,
		routing.NewRouter("https://journals.example.org"),
		i18n.NewCatalog("en_US"),
	)
}

func testJournal() *submission.Journal {
	return &submission.Journal{
		ID:            1,
		Path:          "jos",
		Name:          "Journal of Stuff",
		ContactEmail:  "ed@jos.org",
		ContactName:   "Ed Itor",
		PrimaryLocale: "en_US",
	}
}

func actingUser() *submission.User {
	return &submission.User{ID: 7, Username: "ann", Email: "ann@x.org", GivenName: "Ann", FamilyName: "Lee"}
}

func author(id int64, email, given string, primary bool) submission.Author {
	return submission.Author{
		ID:             kernel.AuthorID(id),
		SubmissionID:   42,
		Email:          email,
		GivenName:      given,
		FamilyName:     "Doe",
		Seq:            int(id),
		PrimaryContact: primary,
	}
}

func testSubmission(authors ...submission.Author) *submission.Submission {
	return &submission.Submission{
		ID:          42,
		JournalID:   1,
		SubmitterID: 7,
		Progress:    4,
		Authors:     authors,
		Accepted: map[kernel.Locale]submission.Acceptance{
			"en_US": {
				Checklist: []submission.ChecklistItem{
					{Order: 2, Content: "B"},
					{Order: 1, Content: "A"},
				},
				PrivacyStatement: "We keep your data safe.",
			},
		},
	}
}

func testRequest() *submission.Request {
	return &submission.Request{
		User:    actingUser(),
		Session: submission.Session{ID: "sess-1"},
		Journal: testJournal(),
		IP:      "10.0.0.1",
	}
}

func toEmails(sent mailtest.Sent) []string {
	var out []string
	for _, a := range sent.Message.To {
		out = append(out, a.Email)
	}
	return out
}
