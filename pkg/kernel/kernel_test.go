package kernel_test

import (
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/kernel"
)

func TestHasScope_Wildcards(t *testing.T) {
	ac := &kernel.AuthContext{UserID: 1, Scopes: []string{"submissions:*"}}

	if !ac.HasScope("submissions:submit") {
		t.Fatal("prefix wildcard should match")
	}
	if ac.HasScope("submissionsX:submit") {
		t.Fatal("wildcard must stop at the colon")
	}
	if ac.IsAdmin() {
		t.Fatal("not an admin")
	}
}

func TestParseUserID(t *testing.T) {
	if id, ok := kernel.ParseUserID("42"); !ok || id != 42 {
		t.Fatalf("expected 42, got %v %v", id, ok)
	}
	for _, in := range []string{"", "0", "-3", "abc"} {
		if _, ok := kernel.ParseUserID(in); ok {
			t.Fatalf("%q should not parse", in)
		}
	}
}
