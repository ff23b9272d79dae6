package goshape_test

import (
	"testing"

	goshape "github.com/reoring/goshape"
)

func TestPointerField_EscapesPerRFC6901(t *testing.T) {
	if got := goshape.PointerField("name"); got != "/name" {
		t.Fatalf("plain: got %q", got)
	}
	if got := goshape.PointerField("a/b"); got != "/a~1b" {
		t.Fatalf("slash: got %q", got)
	}
	if got := goshape.PointerField("a~b"); got != "/a~0b" {
		t.Fatalf("tilde: got %q", got)
	}
}

func TestPointerIndex(t *testing.T) {
	if got := goshape.PointerIndex(12); got != "/12" {
		t.Fatalf("got %q", got)
	}
}
