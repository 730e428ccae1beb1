package id3v2

import (
	"testing"

	"github.com/riverglen/id3v2/frame"
)

func TestExtendedHeaderV23RoundTripNoCRC(t *testing.T) {
	in := extendedHeader{PaddingSize: 256}
	buf := encodeExtendedHeaderV23(in)
	out, n, err := decodeExtendedHeader(buf, frame.V23)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	if out.PaddingSize != 256 || out.CRCData != nil {
		t.Fatalf("got %+v", out)
	}
}

func TestExtendedHeaderV23RoundTripWithCRC(t *testing.T) {
	crc := uint32(0xdeadbeef)
	in := extendedHeader{PaddingSize: 0, CRCData: &crc}
	buf := encodeExtendedHeaderV23(in)
	out, n, err := decodeExtendedHeader(buf, frame.V23)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	if out.CRCData == nil || *out.CRCData != crc {
		t.Fatalf("CRCData = %v, want %x", out.CRCData, crc)
	}
}

func TestExtendedHeaderV24RoundTripAllFields(t *testing.T) {
	crc := uint32(123456)
	restrictions := &TagRestrictions{TagSize: 1, TextEncoding: 1, TextFieldSize: 2, ImageEncoding: 0, ImageSize: 3}
	in := extendedHeader{TagIsAnUpdate: true, CRCData: &crc, TagRestrictions: restrictions}
	buf, err := encodeExtendedHeaderV24(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, n, err := decodeExtendedHeader(buf, frame.V24)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	if !out.TagIsAnUpdate {
		t.Fatal("expected TagIsAnUpdate to survive round trip")
	}
	if out.CRCData == nil || *out.CRCData != crc {
		t.Fatalf("CRCData = %v, want %d", out.CRCData, crc)
	}
	if out.TagRestrictions == nil || *out.TagRestrictions != *restrictions {
		t.Fatalf("TagRestrictions = %v, want %+v", out.TagRestrictions, restrictions)
	}
}

func TestExtendedHeaderV24MinimalRoundTrip(t *testing.T) {
	buf, err := encodeExtendedHeaderV24(extendedHeader{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, n, err := decodeExtendedHeader(buf, frame.V24)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n != 6 {
		t.Fatalf("consumed %d, want 6 for an empty extended header", n)
	}
	if out.TagIsAnUpdate || out.CRCData != nil || out.TagRestrictions != nil {
		t.Fatalf("expected all fields empty, got %+v", out)
	}
}
