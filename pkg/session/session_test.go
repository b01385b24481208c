package session_test

import (
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/session"
)

func TestVars_SignedInAs(t *testing.T) {
	cases := map[string]bool{
		"":    false,
		"0":   false,
		"abc": false,
		"-3":  false,
		"12":  true,
	}
	for raw, want := range cases {
		got := session.Vars{session.VarSignedInAs: raw}.SignedInAs()
		if (got != nil) != want {
			t.Errorf("signedInAs=%q: got %v, want set=%v", raw, got, want)
		}
	}

	if id := (session.Vars{session.VarSignedInAs: "12"}).SignedInAs(); *id != 12 {
		t.Fatalf("unexpected id %v", *id)
	}
	if (session.Vars(nil)).SignedInAs() != nil {
		t.Fatal("nil vars carry no impersonation")
	}
}
