package mail

import (
	"context"
	"strings"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
)

// Message is one email built from a template: sender, recipients, BCCs and
// merge params. It is not safe for concurrent use.
type Message struct {
	key      Key
	template *Template
	enabled  bool
	tags     map[string]string

	from       notifx.Address
	recipients []notifx.Address
	bccs       []notifx.Address
	params     map[string]string

	deliverer Deliverer
	editors   EditorDirectory
}

func (m *Message) Key() Key { return m.key }

// IsEnabled reports whether both the template and global mail delivery are on.
func (m *Message) IsEnabled() bool {
	return m.enabled && m.template != nil && m.template.Enabled
}

func (m *Message) SetFrom(email, name string) {
	m.from = notifx.Address{Email: email, Name: name}
}

func (m *Message) From() notifx.Address { return m.from }

func (m *Message) AddRecipient(email, name string) {
	m.recipients = append(m.recipients, notifx.Address{Email: email, Name: name})
}

func (m *Message) AddBcc(email, name string) {
	if strings.TrimSpace(email) == "" {
		return
	}
	m.bccs = append(m.bccs, notifx.Address{Email: email, Name: name})
}

// BccAssignedSubEditors blind-copies every sub-editor assigned to the
// submission in stage.
func (m *Message) BccAssignedSubEditors(ctx context.Context, submissionID kernel.SubmissionID, stage StageID) error {
	editors, err := m.editors.AssignedSubEditors(ctx, submissionID, stage)
	if err != nil {
		return err
	}
	for _, e := range editors {
		m.AddBcc(e.Email, e.Name)
	}
	return nil
}

// AssignParams merges params into the message's merge variables.
func (m *Message) AssignParams(params map[string]string) {
	if m.params == nil {
		m.params = make(map[string]string, len(params))
	}
	for k, v := range params {
		m.params[k] = v
	}
}

func (m *Message) Recipients() []notifx.Address { return m.recipients }
func (m *Message) Bccs() []notifx.Address       { return m.bccs }

func (m *Message) Params() map[string]string {
	out := make(map[string]string, len(m.params))
	for k, v := range m.params {
		out[k] = v
	}
	return out
}

// Send renders the template with the assigned params and delivers it.
func (m *Message) Send(ctx context.Context) error {
	if !m.IsEnabled() {
		return ErrDisabled().WithDetail("key", m.key)
	}
	if len(m.recipients) == 0 {
		return ErrNoRecipients().WithDetail("key", m.key)
	}

	msg := notifx.EmailMessage{
		From: m.from,
		To:   m.recipients,
		BCC:  m.bccs,
	}
	err := m.deliverer.RenderAndSend(ctx, m.template.Subject, m.template.Body, m.params, msg, notifx.WithTags(m.tags))
	if err != nil {
		logx.WithFields(logx.Fields{
			"template":   m.key,
			"recipients": len(m.recipients),
		}).WithError(err).Warn("mail: delivery failed")
		return err
	}

	logx.WithFields(logx.Fields{
		"template":   m.key,
		"recipients": len(m.recipients),
		"bcc":        len(m.bccs),
	}).Debug("mail: delivered")
	return nil
}
