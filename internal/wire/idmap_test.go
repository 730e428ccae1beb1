package wire

import (
	"errors"
	"testing"
)

func TestRemapV22ToV24RoundTrip(t *testing.T) {
	cases := map[string]string{
		"COM": "COMM", "PIC": "APIC", "TT2": "TIT2", "ULT": "USLT",
	}
	for short, long := range cases {
		got, err := RemapV22ToV24(short)
		if err != nil {
			t.Fatalf("RemapV22ToV24(%q): %v", short, err)
		}
		if got != long {
			t.Errorf("RemapV22ToV24(%q) = %q, want %q", short, got, long)
		}
		back, err := RemapV24ToV22(long)
		if err != nil {
			t.Fatalf("RemapV24ToV22(%q): %v", long, err)
		}
		if back != short {
			t.Errorf("RemapV24ToV22(%q) = %q, want %q", long, back, short)
		}
	}
}

func TestRemapUnknownIdentifier(t *testing.T) {
	_, err := RemapV22ToV24("ZZZ")
	if err == nil {
		t.Fatal("expected error for unmapped identifier")
	}
	var remapErr *IdentifierRemapError
	if !errors.As(err, &remapErr) {
		t.Fatalf("RemapV22ToV24(%q) error = %T, want *IdentifierRemapError", "ZZZ", err)
	}
	if remapErr.Identifier != "ZZZ" {
		t.Errorf("IdentifierRemapError.Identifier = %q, want %q", remapErr.Identifier, "ZZZ")
	}

	if _, err := RemapV24ToV22("TDRC"); err == nil {
		t.Fatal("expected error for a v2.4-only identifier with no v2.2 form")
	} else if !errors.As(err, &remapErr) {
		t.Fatalf("RemapV24ToV22(%q) error = %T, want *IdentifierRemapError", "TDRC", err)
	}
}

func TestRemapV23ToV24DropsRetiredIdentifiers(t *testing.T) {
	for id := range droppedInV24 {
		if _, err := RemapV23ToV24(id); err == nil {
			t.Errorf("expected %q to be rejected when targeting ID3v2.4", id)
		}
	}
	got, err := RemapV23ToV24("TIT2")
	if err != nil || got != "TIT2" {
		t.Fatalf("RemapV23ToV24(TIT2) = %q, %v, want TIT2, nil", got, err)
	}
}

func TestIdentifierWidth(t *testing.T) {
	if IdentifierWidth(2) != 3 {
		t.Error("ID3v2.2 identifiers must be 3 bytes wide")
	}
	if IdentifierWidth(3) != 4 || IdentifierWidth(4) != 4 {
		t.Error("ID3v2.3/2.4 identifiers must be 4 bytes wide")
	}
}
