package mailinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
	"github.com/Abraxas-365/journalsubmit/pkg/logx"
	"github.com/Abraxas-365/journalsubmit/pkg/mail"
	"github.com/redis/go-redis/v9"
)

// CachedTemplateStore keeps resolved templates in Redis for ttl. Misses and
// cache failures fall through to the wrapped store.
type CachedTemplateStore struct {
	next mail.TemplateStore
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedTemplateStore(next mail.TemplateStore, rdb *redis.Client, ttl time.Duration) *CachedTemplateStore {
	return &CachedTemplateStore{next: next, rdb: rdb, ttl: ttl}
}

func templateKey(journalID kernel.JournalID, key mail.Key, locale kernel.Locale) string {
	return fmt.Sprintf("mail:template:%d:%s:%s", journalID, key, locale)
}

func (c *CachedTemplateStore) Find(ctx context.Context, journalID kernel.JournalID, key mail.Key, locale kernel.Locale) (*mail.Template, error) {
	k := templateKey(journalID, key, locale)

	data, err := c.rdb.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var tpl mail.Template
		if err := json.Unmarshal(data, &tpl); err == nil {
			return &tpl, nil
		}
		logx.WithField("key", k).Warn("mail: dropping undecodable cached template")
		c.rdb.Del(ctx, k)
	case err != redis.Nil:
		logx.WithError(err).WithField("key", k).Warn("mail: template cache unavailable")
	}

	tpl, err := c.next.Find(ctx, journalID, key, locale)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(tpl); err == nil {
		if err := c.rdb.Set(ctx, k, data, c.ttl).Err(); err != nil {
			logx.WithError(err).WithField("key", k).Warn("mail: failed to cache template")
		}
	}
	return tpl, nil
}

// Invalidate drops the cached template for key in locale.
func (c *CachedTemplateStore) Invalidate(ctx context.Context, journalID kernel.JournalID, key mail.Key, locale kernel.Locale) error {
	if err := c.rdb.Del(ctx, templateKey(journalID, key, locale)).Err(); err != nil {
		return mail.ErrRegistry.NewWithCause(mail.CodeCache, err)
	}
	return nil
}
