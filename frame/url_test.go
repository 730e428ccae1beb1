package frame

import (
	"testing"

	"github.com/riverglen/id3v2/internal/wire"
)

func TestURLLinkRoundTrip(t *testing.T) {
	f := URLLink{ID: "WOAR", URL: "https://example.com/artist"}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("WOAR", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(URLLink)
	if got.URL != f.URL || got.ID != f.ID {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}

func TestUserDefinedURLRoundTrip(t *testing.T) {
	f := UserDefinedURL{Encoding: wire.ISO88591, Description: "homepage", URL: "https://example.com"}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("WXXX", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(UserDefinedURL)
	if got.Description != f.Description || got.URL != f.URL {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}
