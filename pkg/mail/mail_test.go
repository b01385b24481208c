package mail_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/mail/mailtest"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

var journal = &submission.Journal{ID: 1, Path: "jos", PrimaryLocale: "de_DE"}

func ackTemplate(locale string, enabled bool) mail.Template {
	return mail.Template{
		Key:     mail.SubmissionAck,
		Locale:  kernel.Locale(locale),
		Subject: "Submission received",
		Body:    "Dear {{ authorName }}",
		Enabled: enabled,
	}
}

func TestFactory_FallsBackToDefaultLocale(t *testing.T) {
	store := mailtest.NewTemplates(ackTemplate("en_US", true))
	f := mail.NewFactory(store, mailtest.Editors{}, &mailtest.Deliverer{}, true, "en_US")

	msg, err := f.New(context.Background(), journal, mail.SubmissionAck)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !msg.IsEnabled() {
		t.Fatal("template and switch are on")
	}
	if store.Calls != 2 {
		t.Fatalf("expected primary then default lookup, got %d calls", store.Calls)
	}
}

func TestFactory_TemplateMissing(t *testing.T) {
	f := mail.NewFactory(mailtest.NewTemplates(), mailtest.Editors{}, &mailtest.Deliverer{}, true, "en_US")
	_, err := f.New(context.Background(), journal, mail.SubmissionAckNotUser)
	if !errx.HasCode(err, mail.CodeTemplateNotFound) {
		t.Fatalf("expected template not found, got %v", err)
	}
}

func TestMessage_IsEnabled(t *testing.T) {
	ctx := context.Background()

	off := mail.NewFactory(mailtest.NewTemplates(ackTemplate("en_US", true)), mailtest.Editors{}, &mailtest.Deliverer{}, false, "en_US")
	msg, _ := off.New(ctx, journal, mail.SubmissionAck)
	if msg.IsEnabled() {
		t.Fatal("global switch is off")
	}

	disabledTpl := mail.NewFactory(mailtest.NewTemplates(ackTemplate("en_US", false)), mailtest.Editors{}, &mailtest.Deliverer{}, true, "en_US")
	msg, _ = disabledTpl.New(ctx, journal, mail.SubmissionAck)
	if msg.IsEnabled() {
		t.Fatal("template is disabled")
	}
	if err := msg.Send(ctx); !errx.HasCode(err, mail.CodeDisabled) {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestMessage_Send(t *testing.T) {
	ctx := context.Background()
	d := &mailtest.Deliverer{}
	editors := mailtest.Editors{List: []notifx.Address{{Email: "se@jos.org", Name: "Sub Editor"}}}
	f := mail.NewFactory(mailtest.NewTemplates(ackTemplate("en_US", true)), editors, d, true, "en_US")

	msg, err := f.New(ctx, journal, mail.SubmissionAck)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := msg.Send(ctx); !errx.HasCode(err, mail.CodeNoRecipients) {
		t.Fatalf("expected no recipients, got %v", err)
	}
	if len(d.Sent) != 0 {
		t.Fatal("transport must not be touched without recipients")
	}

	msg.SetFrom("ed@jos.org", "Ed")
	msg.AddRecipient("ann@x.org", "Ann")
	msg.AddBcc("", "ignored")
	if err := msg.BccAssignedSubEditors(ctx, 42, mail.StageSubmission); err != nil {
		t.Fatalf("BccAssignedSubEditors: %v", err)
	}
	msg.AssignParams(map[string]string{"authorName": "Ann"})
	msg.AssignParams(map[string]string{"submissionUrl": "https://x"})

	if err := msg.Send(ctx); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(d.Sent) != 1 {
		t.Fatalf("expected one delivery, got %d", len(d.Sent))
	}
	sent := d.Sent[0]
	if sent.Message.From.Email != "ed@jos.org" || len(sent.Message.BCC) != 1 || sent.Message.BCC[0].Email != "se@jos.org" {
		t.Fatalf("unexpected envelope %+v", sent.Message)
	}
	if sent.Params["authorName"] != "Ann" || sent.Params["submissionUrl"] != "https://x" {
		t.Fatalf("params were not merged: %v", sent.Params)
	}
}

func TestMessage_BccAssignedSubEditorsError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db down")
	f := mail.NewFactory(mailtest.NewTemplates(ackTemplate("en_US", true)), mailtest.Editors{Err: boom}, &mailtest.Deliverer{}, true, "en_US")
	msg, _ := f.New(ctx, journal, mail.SubmissionAck)

	if err := msg.BccAssignedSubEditors(ctx, 1, mail.StageSubmission); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestMessage_SendThroughClient(t *testing.T) {
	ctx := context.Background()
	provider := &capture{}
	client := notifx.NewClient(provider)
	f := mail.NewFactory(mailtest.NewTemplates(ackTemplate("en_US", true)), mailtest.Editors{}, client, true, "en_US")
	msg, _ := f.New(ctx, journal, mail.SubmissionAck)
	msg.AddRecipient("ann@x.org", "Ann")
	msg.AssignParams(map[string]string{"authorName": "Ann <b>Lee</b>"})

	if err := msg.Send(ctx); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if provider.last.Subject != "Submission received" {
		t.Fatalf("unexpected subject %q", provider.last.Subject)
	}
	if provider.last.HTMLBody != "Dear Ann <b>Lee</b>" {
		t.Fatalf("params must render verbatim, got %q", provider.last.HTMLBody)
	}
}

type capture struct{ last notifx.EmailMessage }

func (c *capture) SendEmail(_ context.Context, msg notifx.EmailMessage, _ ...notifx.Option) error {
	c.last = msg
	return nil
}
