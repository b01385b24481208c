package errx_test

import (
	"errors"
	"testing"

	"github.com/Abraxas-365/journalsubmit/pkg/errx"
)

var testRegistry = errx.NewRegistry("TEST")

var codeBroken = testRegistry.Register("BROKEN", errx.TypeBusiness, 422, "Broken")

func TestRegistry_PrefixesCode(t *testing.T) {
	err := testRegistry.New(codeBroken)
	if err.Code != "TEST_BROKEN" {
		t.Fatalf("expected TEST_BROKEN, got %s", err.Code)
	}
	if err.HTTPStatus != 422 {
		t.Fatalf("expected 422, got %d", err.HTTPStatus)
	}
}

func TestWrap_KeepsCodeOfExistingError(t *testing.T) {
	inner := testRegistry.New(codeBroken).WithDetail("id", 7)
	wrapped := errx.Wrap(inner, "outer", errx.TypeInternal)

	if wrapped.Code != "TEST_BROKEN" {
		t.Fatalf("expected code to be preserved, got %s", wrapped.Code)
	}
	if wrapped.Details["id"] != 7 {
		t.Fatalf("expected details to be preserved, got %v", wrapped.Details)
	}
	if !errx.HasCode(wrapped, codeBroken) {
		t.Fatal("HasCode should find the wrapped code")
	}
}

func TestWrap_Nil(t *testing.T) {
	if errx.Wrap(nil, "nothing", errx.TypeInternal) != nil {
		t.Fatal("wrapping nil should return nil")
	}
}

func TestHasCode_PlainError(t *testing.T) {
	if errx.HasCode(errors.New("plain"), codeBroken) {
		t.Fatal("plain error should not carry a code")
	}
}
