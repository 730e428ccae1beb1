package id3v2

import (
	"testing"

	"github.com/riverglen/id3v2/frame"
	"github.com/riverglen/id3v2/internal/wire"
)

func sampleEntries() []Entry {
	return []Entry{
		{Flags: frame.DefaultFlags("TIT2"), Body: frame.TextInformation{ID: "TIT2", Encoding: wire.UTF8, Text: "Engel"}},
		{Flags: frame.DefaultFlags("TPE1"), Body: frame.TextInformation{ID: "TPE1", Encoding: wire.UTF8, Text: "Rammstein"}},
	}
}

func TestEncodeDecodeRoundTripV24(t *testing.T) {
	out, err := Encode(sampleEntries(), EncodeOptions{ID3Version: 4, TextEncoding: wire.UTF8})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tag, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tag.Version != 4 {
		t.Fatalf("Version = %d, want 4", tag.Version)
	}
	if len(tag.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(tag.Entries))
	}
	titles := map[string]string{}
	for _, e := range tag.Entries {
		titles[e.Body.Identifier()] = e.Body.(frame.TextInformation).Text
	}
	if titles["TIT2"] != "Engel" || titles["TPE1"] != "Rammstein" {
		t.Fatalf("decoded text frames = %+v", titles)
	}
}

func TestEncodeAutoSelectsLowerVersionWhenNeeded(t *testing.T) {
	entries := []Entry{
		{Body: frame.InvolvedPeopleList{Encoding: wire.ISO88591, People: []frame.InvolvedPerson{{Role: "producer", Name: "X"}}}},
	}
	out, err := Encode(entries, EncodeOptions{TextEncoding: wire.UTF8})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tag, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if tag.Version == 4 {
		t.Fatal("IPLS is illegal at ID3v2.4; auto-select should have picked v2.3 or v2.2")
	}
}

func TestEncodeReturnsVersionErrorWhenNoVersionWorks(t *testing.T) {
	entries := []Entry{
		{Body: frame.InvolvedPeopleList{Encoding: wire.ISO88591}},
	}
	_, err := Encode(entries, EncodeOptions{ID3Version: 4, TextEncoding: wire.UTF8})
	if err == nil {
		t.Fatal("expected an error pinning IPLS to ID3v2.4")
	}
	if _, ok := err.(*VersionError); !ok {
		t.Fatalf("expected *VersionError, got %T", err)
	}
}

func TestDecodeRejectsMissingSignature(t *testing.T) {
	if _, err := Decode([]byte("not an id3 tag at all")); err != ErrNoTag {
		t.Fatalf("Decode = %v, want ErrNoTag", err)
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	buf := append([]byte("ID3"), 9, 0, 0, 0, 0, 0, 0)
	if _, err := Decode(buf); err != ErrUnknownVersion {
		t.Fatalf("Decode = %v, want ErrUnknownVersion", err)
	}
}

func TestDecodeRejectsV22Compression(t *testing.T) {
	buf := append([]byte("ID3"), 2, 0, 0x40, 0, 0, 0, 0)
	if _, err := Decode(buf); err != ErrCompressionUnsupported {
		t.Fatalf("Decode = %v, want ErrCompressionUnsupported", err)
	}
}

func TestEncodeDecodeUnsynchronisedRoundTrip(t *testing.T) {
	entries := []Entry{
		{Body: frame.TextInformation{ID: "TIT2", Encoding: wire.ISO88591, Text: "ÿà test"}},
	}
	out, err := Encode(entries, EncodeOptions{ID3Version: 3, TextEncoding: wire.ISO88591, Unsynchronisation: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tag, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !tag.Unsynchronised {
		t.Fatal("expected Unsynchronised to be true")
	}
	got := tag.Entries[0].Body.(frame.TextInformation).Text
	if got != "ÿà test" {
		t.Fatalf("round trip text = %q", got)
	}
}

func TestEncodeDecodePreservesTrailingAudio(t *testing.T) {
	out, err := Encode(sampleEntries(), EncodeOptions{ID3Version: 3, TextEncoding: wire.UTF8})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	file := append(out, []byte("fake-mp3-payload")...)
	tag, err := Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(file[tag.EncodedSize:]) != "fake-mp3-payload" {
		t.Fatalf("EncodedSize = %d does not point past the tag", tag.EncodedSize)
	}
}
