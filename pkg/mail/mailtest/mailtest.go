// Package mailtest provides in-memory doubles for the mail ports.
package mailtest

import (
	"context"
	"errors"
	"sync"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/Abraxas-365/journalsubmit/pkg/notifx"
)

// Templates is a TemplateStore keyed by key and locale. Journal ids are ignored.
type Templates struct {
	mu    sync.Mutex
	byKey map[string]*mail.Template
	Calls int
}

func NewTemplates(tpls ...mail.Template) *Templates {
	t := &Templates{byKey: make(map[string]*mail.Template)}
	for _, tpl := range tpls {
		t.Put(tpl)
	}
	return t
}

func (t *Templates) Put(tpl mail.Template) {
	t.mu.Lock()
	defer t.mu.Unlock()
	cp := tpl
	t.byKey[string(tpl.Key)+"/"+string(tpl.Locale)] = &cp
}

func (t *Templates) Find(_ context.Context, _ kernel.JournalID, key mail.Key, locale kernel.Locale) (*mail.Template, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls++
	tpl, ok := t.byKey[string(key)+"/"+string(locale)]
	if !ok {
		return nil, mail.ErrTemplateNotFound().WithDetail("key", key).WithDetail("locale", locale)
	}
	cp := *tpl
	return &cp, nil
}

// Editors returns the same sub-editors for every submission.
type Editors struct {
	List []notifx.Address
	Err  error
}

func (e Editors) AssignedSubEditors(context.Context, kernel.SubmissionID, mail.StageID) ([]notifx.Address, error) {
	return e.List, e.Err
}

// Sent is one delivery seen by a Deliverer.
type Sent struct {
	SubjectTpl string
	BodyTpl    string
	Params     map[string]string
	Message    notifx.EmailMessage
}

// Deliverer records deliveries. A message whose first recipient is listed in
// FailFor fails with ErrDelivery.
type Deliverer struct {
	mu      sync.Mutex
	FailFor map[string]bool
	Sent    []Sent
}

var ErrDelivery = errors.New("mailtest: delivery refused")

func (d *Deliverer) RenderAndSend(_ context.Context, subjectTpl, bodyTpl string, params map[string]string, msg notifx.EmailMessage, _ ...notifx.Option) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Sent = append(d.Sent, Sent{SubjectTpl: subjectTpl, BodyTpl: bodyTpl, Params: params, Message: msg})
	if len(msg.To) > 0 && d.FailFor[msg.To[0].Email] {
		return ErrDelivery
	}
	return nil
}

// To returns the deliveries whose first recipient is email.
func (d *Deliverer) To(email string) []Sent {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Sent
	for _, s := range d.Sent {
		if len(s.Message.To) > 0 && s.Message.To[0].Email == email {
			out = append(out, s)
		}
	}
	return out
}
