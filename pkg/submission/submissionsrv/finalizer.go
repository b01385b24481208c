package submissionsrv

import (
	"context"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/eventlog"
	"github.com/Abraxas-365/journalsubmit/pkg/i18n"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/notification"
	"github.com/Abraxas-365/journalsubmit/pkg/routing"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

// Finalizer sends the submission acknowledgements and writes the
// submission's audit entries once the author completes the last step.
type Finalizer struct {
	mails    mail.Composer
	notifier notification.Notifier
	events   eventlog.EventLogger
	users    submission.UserRepository
	router   *routing.Router
	catalog  *i18n.Catalog
}

func NewFinalizer(
	mails mail.Composer,
	notifier notification.Notifier,
	events eventlog.EventLogger,
	users submission.UserRepository,
	router *routing.Router,
	catalog *i18n.Catalog,
) *Finalizer {
	return &Finalizer{
		mails:    mails,
		notifier: notifier,
		events:   events,
		users:    users,
		router:   router,
		catalog:  catalog,
	}
}

// acceptedTexts are the accepted settings rendered once and shared by the
// submitter mail and the audit entries.
type acceptedTexts struct {
	checklistHTML     string
	copyrightAccepted bool
	copyrightNotice   string
	privacyStatement  string
}

// Finalize returns the submission id. Delivery failures are reported to the
// acting user as in-app notifications and never fail the call.
func (f *Finalizer) Finalize(ctx context.Context, req *submission.Request, sub *submission.Submission) (kernel.SubmissionID, error) {
	if err := checkFinalizable(req, sub); err != nil {
		return 0, err
	}
	journal := req.Journal
	user := req.User
	primary := resolvePrimaryAuthor(sub)

	accepted := f.acceptedTexts(journal, sub)

	submitterMail, authorMail, err := f.composeMessages(ctx, journal)
	if err != nil {
		return 0, err
	}

	if submitterMail != nil && submitterMail.IsEnabled() {
		// Address both messages
		submitterMail.SetFrom(journal.ContactEmail, journal.ContactName)
		submitterMail.AddRecipient(user.Email, user.FullName())
		if journal.CopySubmissionAckPrimaryContact {
			submitterMail.AddBcc(journal.ContactEmail, journal.ContactName)
		}
		if journal.CopySubmissionAckAddress != "" {
			submitterMail.AddBcc(journal.CopySubmissionAckAddress, "")
		}

		if authorMail != nil {
			authorMail.SetFrom(journal.ContactEmail, journal.ContactName)
			if primary.Email != user.Email {
				authorMail.AddRecipient(primary.Email, primary.FullName())
			}
			for _, author := range sub.Authors {
				if author.Email != primary.Email && author.Email != user.Email {
					authorMail.AddRecipient(author.Email, author.FullName())
				}
			}
		}

		if err := submitterMail.BccAssignedSubEditors(ctx, sub.ID, mail.StageSubmission); err != nil {
			return 0, err
		}

		// Merge variables
		submittingUser, err := f.submittingUser(ctx, req.Session)
		if err != nil {
			return 0, err
		}
		submitterMail.AssignParams(map[string]string{
			"authorName":                  user.FullName(),
			"authorUsername":              user.Username,
			"editorialContactSignature":   journal.ContactName,
			"submissionUrl":               f.router.AuthorDashboard(journal.Path, sub.ID.String()),
			"acceptedSubmissionChecklist": accepted.checklistHTML,
			"acceptedCopyrightNotice":     copyrightFragment(accepted.copyrightNotice),
			"acceptedPrivacyStatement":    accepted.privacyStatement,
			"submittingUser":              submittingUser,
		})
		if authorMail != nil {
			authorMail.AssignParams(map[string]string{
				"submitterName":             user.FullName(),
				"editorialContactSignature": journal.ContactName,
			})
		}

		// Deliver
		f.deliver(ctx, req, submitterMail)
		if authorMail != nil && len(authorMail.Recipients()) > 0 && authorMail.IsEnabled() {
			f.deliver(ctx, req, authorMail)
		}
	}

	if err := f.logAcceptance(ctx, req, sub.ID, accepted); err != nil {
		return 0, err
	}

	logx.WithFields(logx.Fields{
		"submission_id": sub.ID,
		"journal_id":    journal.ID,
		"user_id":       user.ID,
	}).Info("submission finalized")

	return sub.ID, nil
}

// checkFinalizable rejects requests that cannot be acknowledged. Step4
// runs it before the base step so a rejected submission stays unsubmitted.
func checkFinalizable(req *submission.Request, sub *submission.Submission) error {
	if req == nil || req.User == nil || req.Journal == nil || sub == nil {
		return submission.ErrInvalidRequest().WithDetail("reason", "request needs a user, a journal and a submission")
	}
	if resolvePrimaryAuthor(sub) == nil {
		return submission.ErrNoPrimaryAuthor().WithDetail("submission_id", sub.ID)
	}
	return nil
}

// resolvePrimaryAuthor prefers the designated primary contact, then the
// first listed author.
func resolvePrimaryAuthor(sub *submission.Submission) *submission.Author {
	if p := sub.PrimaryAuthor(); p != nil {
		return p
	}
	if len(sub.Authors) > 0 {
		return &sub.Authors[0]
	}
	return nil
}

// acceptedTexts reads the primary locale only. A copyright notice accepted
// in another locale still counts as accepted but leaves copyrightNotice empty.
func (f *Finalizer) acceptedTexts(journal *submission.Journal, sub *submission.Submission) acceptedTexts {
	localized := sub.LocalizedAcceptance(journal.PrimaryLocale)
	out := acceptedTexts{
		checklistHTML:     RenderChecklist(localized.Checklist),
		copyrightAccepted: sub.CopyrightAccepted(),
		privacyStatement:  localized.PrivacyStatement,
	}
	if out.copyrightAccepted {
		out.copyrightNotice = localized.CopyrightNotice
	}
	return out
}

// composeMessages loads both acknowledgement templates. A missing template
// yields a nil message: without the submitter template no mail goes out,
// without the author template only the author acknowledgement is skipped.
func (f *Finalizer) composeMessages(ctx context.Context, journal *submission.Journal) (*mail.Message, *mail.Message, error) {
	submitterMail, err := f.composeOptional(ctx, journal, mail.SubmissionAck)
	if err != nil || submitterMail == nil {
		return nil, nil, err
	}

	authorMail, err := f.composeOptional(ctx, journal, mail.SubmissionAckNotUser)
	if err != nil {
		return nil, nil, err
	}
	return submitterMail, authorMail, nil
}

func (f *Finalizer) composeOptional(ctx context.Context, journal *submission.Journal, key mail.Key) (*mail.Message, error) {
	msg, err := f.mails.New(ctx, journal, key)
	if errx.HasCode(err, mail.CodeTemplateNotFound) {
		logx.WithFields(logx.Fields{
			"journal_id": journal.ID,
			"template":   key,
		}).Warn("acknowledgement template missing, skipping message")
		return nil, nil
	}
	return msg, err
}

// submittingUser names the administrator behind a "sign in as" session.
func (f *Finalizer) submittingUser(ctx context.Context, sess submission.Session) (string, error) {
	if !sess.IsImpersonating() {
		return "", nil
	}
	name, err := f.users.FullName(ctx, *sess.SignedInAs)
	if errx.HasCode(err, submission.CodeUserNotFound) {
		logx.WithField("signed_in_as", *sess.SignedInAs).Warn("impersonating user not found")
		return "", nil
	}
	return name, err
}

// deliver sends msg and turns a delivery failure into an error notification
// for the acting user. Failures never stop the remaining work.
func (f *Finalizer) deliver(ctx context.Context, req *submission.Request, msg *mail.Message) {
	sendErr := msg.Send(ctx)
	if sendErr == nil {
		return
	}

	fields := logx.Fields{
		"template": msg.Key(),
		"user_id":  req.User.ID,
	}
	logx.WithError(sendErr).WithFields(fields).Warn("acknowledgement delivery failed")

	contents := f.catalog.Translate(req.Journal.PrimaryLocale, i18n.KeyEmailComposeError)
	if _, err := f.notifier.CreateTrivialNotification(ctx, req.User.ID, notification.LevelError, contents); err != nil {
		logx.WithError(err).WithFields(fields).Error("failed to record delivery failure notification")
	}
}

// logAcceptance appends the audit entries in a fixed order.
func (f *Finalizer) logAcceptance(ctx context.Context, req *submission.Request, id kernel.SubmissionID, accepted acceptedTexts) error {
	actor := eventlog.Actor{UserID: req.User.ID, IP: req.IP}

	type event struct {
		typ    eventlog.EventType
		key    string
		params map[string]string
	}
	events := []event{
		{eventlog.SubmissionSubmit, eventlog.KeySubmissionSubmitted, nil},
		{eventlog.ChecklistAccepted, eventlog.KeyChecklistAccepted, map[string]string{
			eventlog.ParamSubmissionChecklist: accepted.checklistHTML,
		}},
	}
	if accepted.copyrightAccepted {
		events = append(events, event{eventlog.CopyrightAccepted, eventlog.KeyCopyrightAccepted, map[string]string{
			eventlog.ParamCopyrightNotice: accepted.copyrightNotice,
		}})
	}
	events = append(events, event{eventlog.PrivacyAccepted, eventlog.KeyPrivacyAccepted, map[string]string{
		eventlog.ParamPrivacyStatement: accepted.privacyStatement,
	}})

	for _, e := range events {
		if err := f.events.LogEvent(ctx, actor, id, e.typ, e.key, e.params); err != nil {
			return err
		}
	}
	return nil
}
