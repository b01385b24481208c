package sessioninfra_test

import (
	"context"
	"testing"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
	"github.com/Abraxas-365/journalsubmit/pkg/session"
	"github.com/Abraxas-365/journalsubmit/pkg/session/sessioninfra"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStore(t *testing.T) (*sessioninfra.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return sessioninfra.NewRedisStore(rdb, time.Hour), mr
}

func TestRedisStore_SignedInAs(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	vars, err := store.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if vars.SignedInAs() != nil {
		t.Fatal("unknown session must not impersonate")
	}

	if err := store.SetVar(ctx, "abc123", session.VarSignedInAs, "3"); err != nil {
		t.Fatalf("SetVar: %v", err)
	}
	if got := mr.HGet("session:abc123", "signedInAs"); got != "3" {
		t.Fatalf("unexpected hash value %q", got)
	}
	if ttl := mr.TTL("session:abc123"); ttl != time.Hour {
		t.Fatalf("expected ttl refresh, got %v", ttl)
	}

	vars, _ = store.Get(ctx, "abc123")
	if id := vars.SignedInAs(); id == nil || *id != 3 {
		t.Fatalf("expected impersonation by 3, got %v", id)
	}

	if err := store.DeleteVar(ctx, "abc123", session.VarSignedInAs); err != nil {
		t.Fatalf("DeleteVar: %v", err)
	}
	vars, _ = store.Get(ctx, "abc123")
	if vars.SignedInAs() != nil {
		t.Fatal("impersonation should be cleared")
	}
}

func TestRedisStore_InvalidID(t *testing.T) {
	store, _ := newStore(t)
	if _, err := store.Get(context.Background(), "a:b"); !errx.HasCode(err, session.CodeInvalidID) {
		t.Fatalf("expected invalid id, got %v", err)
	}
}
