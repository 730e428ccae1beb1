package frame

import "testing"

func TestUniqueFileIdentifierRoundTrip(t *testing.T) {
	f := UniqueFileIdentifier{OwnerIdentifier: "http://musicbrainz.org", Identifier: []byte{1, 2, 3, 4, 5}}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("UFID", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(UniqueFileIdentifier)
	if got.OwnerIdentifier != f.OwnerIdentifier || string(got.Identifier) != string(f.Identifier) {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}

func TestUniqueFileIdentifierRejectsEmptyOwner(t *testing.T) {
	f := UniqueFileIdentifier{Identifier: []byte{1}}
	if err := f.SupportsVersion(V23); err == nil {
		t.Fatal("expected an empty owner identifier to be rejected")
	}
}

func TestUniqueFileIdentifierRejectsOversizedIdentifier(t *testing.T) {
	f := UniqueFileIdentifier{OwnerIdentifier: "x", Identifier: make([]byte, MaxUFIDLength+1)}
	if err := f.SupportsVersion(V23); err == nil {
		t.Fatal("expected an oversized identifier to be rejected")
	}
}
