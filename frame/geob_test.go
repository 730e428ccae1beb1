package frame

import (
	"testing"

	"github.com/riverglen/id3v2/internal/wire"
)

func TestGeneralEncapsulatedObjectRoundTrip(t *testing.T) {
	f := GeneralEncapsulatedObject{
		Encoding:    wire.ISO88591,
		MimeType:    "application/octet-stream",
		Filename:    "data.bin",
		Description: "attachment",
		ObjectData:  []byte{0xDE, 0xAD, 0xBE, 0xEF},
	}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("GEOB", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(GeneralEncapsulatedObject)
	if got.MimeType != f.MimeType || got.Filename != f.Filename || got.Description != f.Description ||
		string(got.ObjectData) != string(f.ObjectData) {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}
