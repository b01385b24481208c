package notifxconsole

import (
	"context"
	"strings"

	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
)

// ConsoleProvider prints emails via logx instead of delivering them. Development only.
type ConsoleProvider struct{}

func NewConsoleProvider() *ConsoleProvider {
	return &ConsoleProvider{}
}

func (p *ConsoleProvider) SendEmail(_ context.Context, msg notifx.EmailMessage, opts ...notifx.Option) error {
	so := notifx.ApplyOptions(opts)

	logx.WithFields(logx.Fields{
		"from":    msg.From.String(),
		"to":      strings.Join(notifx.Strings(msg.To), ", "),
		"bcc":     strings.Join(notifx.Strings(msg.BCC), ", "),
		"subject": msg.Subject,
		"tags":    so.Tags,
	}).Info("notifx/console: email sent (dev mode)")

	if msg.HTMLBody != "" {
		logx.Debugf("notifx/console: html body:\n%s", msg.HTMLBody)
	}
	return nil
}
