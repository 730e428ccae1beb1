package id3v2

import "testing"

func TestTagRestrictionsPackUnpackRoundTrip(t *testing.T) {
	r := TagRestrictions{TagSize: 2, TextEncoding: 1, TextFieldSize: 3, ImageEncoding: 0, ImageSize: 1}
	got := UnpackTagRestrictions(r.Pack())
	if got != r {
		t.Fatalf("got %+v, want %+v", got, r)
	}
}

func TestTagRestrictionsPackMasksOutOfRangeBits(t *testing.T) {
	r := TagRestrictions{TagSize: 0xFF, TextEncoding: 0xFF, TextFieldSize: 0xFF, ImageEncoding: 0xFF, ImageSize: 0xFF}
	b := r.Pack()
	got := UnpackTagRestrictions(b)
	if got.TagSize != 3 || got.TextEncoding != 1 || got.TextFieldSize != 3 || got.ImageEncoding != 1 || got.ImageSize != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestHasExtendedHeaderData(t *testing.T) {
	if (EncodeOptions{}).hasExtendedHeaderData() {
		t.Fatal("zero-value options should not request an extended header")
	}
	if !(EncodeOptions{TagIsAnUpdate: true}).hasExtendedHeaderData() {
		t.Fatal("tagIsAnUpdate should request an extended header")
	}
	crc := uint32(1)
	if !(EncodeOptions{CRCData: &crc}).hasExtendedHeaderData() {
		t.Fatal("crcData should request an extended header")
	}
	if !(EncodeOptions{TagRestrictions: &TagRestrictions{}}).hasExtendedHeaderData() {
		t.Fatal("tagRestrictions should request an extended header")
	}
}
