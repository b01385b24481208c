package i18n

import (
	"sync"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

// Keys used outside templates.
const (
	KeyEmailComposeError = "email.compose.error"
)

// Catalog resolves message keys per locale. Lookups fall back to the
// default locale, then to the key itself.
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale kernel.Locale
	messages      map[kernel.Locale]map[string]string
}

func NewCatalog(defaultLocale kernel.Locale) *Catalog {
	c := &Catalog{
		defaultLocale: defaultLocale,
		messages:      make(map[kernel.Locale]map[string]string),
	}
	for locale, msgs := range builtin {
		c.Add(locale, msgs)
	}
	return c
}

// Add registers or overrides messages for locale.
func (c *Catalog) Add(locale kernel.Locale, msgs map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.messages[locale]
	if !ok {
		m = make(map[string]string, len(msgs))
		c.messages[locale] = m
	}
	for k, v := range msgs {
		m[k] = v
	}
}

func (c *Catalog) Translate(locale kernel.Locale, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if msg, ok := c.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := c.messages[c.defaultLocale][key]; ok {
		return msg
	}
	return key
}

var builtin = map[kernel.Locale]map[string]string{
	"en_US": {
		KeyEmailComposeError: "An error occurred while trying to send an email. Please contact the site administrator.",
	},
	"de_DE": {
		KeyEmailComposeError: "Beim Versenden einer E-Mail ist ein Fehler aufgetreten. Bitte kontaktieren Sie die Administration.",
	},
}
