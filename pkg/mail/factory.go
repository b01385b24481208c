package mail

import (
	"context"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/submission"
)

// Composer creates template-backed messages for a journal.
type Composer interface {
	New(ctx context.Context, journal *submission.Journal, key Key) (*Message, error)
}

// Factory builds messages from the template store. Enabled is the global
// delivery switch; when off every message reports IsEnabled false.
type Factory struct {
	store         TemplateStore
	editors       EditorDirectory
	deliverer     Deliverer
	enabled       bool
	defaultLocale kernel.Locale
}

func NewFactory(store TemplateStore, editors EditorDirectory, deliverer Deliverer, enabled bool, defaultLocale kernel.Locale) *Factory {
	return &Factory{
		store:         store,
		editors:       editors,
		deliverer:     deliverer,
		enabled:       enabled,
		defaultLocale: defaultLocale,
	}
}

// New loads key in the journal's primary locale, then in the default locale.
func (f *Factory) New(ctx context.Context, journal *submission.Journal, key Key) (*Message, error) {
	tpl, err := f.store.Find(ctx, journal.ID, key, journal.PrimaryLocale)
	if errx.HasCode(err, CodeTemplateNotFound) && f.defaultLocale != "" && f.defaultLocale != journal.PrimaryLocale {
		tpl, err = f.store.Find(ctx, journal.ID, key, f.defaultLocale)
	}
	if err != nil {
		return nil, err
	}

	return &Message{
		key:       key,
		template:  tpl,
		enabled:   f.enabled,
		deliverer: f.deliverer,
		editors:   f.editors,
		tags: map[string]string{
			"template": string(key),
			"journal":  journal.Path,
		},
	}, nil
}
