package wire

import (
	"bytes"
	"testing"
)

func TestUnsynchroniseInsertsAfterFF00(t *testing.T) {
	in := []byte{0x01, 0xFF, 0x00, 0x02}
	got := Unsynchronise(in)
	want := []byte{0x01, 0xFF, 0x00, 0x00, 0x02}
	if !bytes.Equal(got, want) {
		t.Fatalf("Unsynchronise(%x) = %x, want %x", in, got, want)
	}
}

func TestUnsynchroniseInsertsBeforeSyncByte(t *testing.T) {
	in := []byte{0xFF, 0xE0}
	got := Unsynchronise(in)
	want := []byte{0xFF, 0x00, 0xE0}
	if !bytes.Equal(got, want) {
		t.Fatalf("Unsynchronise(%x) = %x, want %x", in, got, want)
	}
}

func TestUnsynchroniseAtBufferEnd(t *testing.T) {
	in := []byte{0x01, 0xFF}
	got := Unsynchronise(in)
	want := []byte{0x01, 0xFF, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("Unsynchronise(%x) = %x, want %x", in, got, want)
	}
}

func TestUnsynchroniseLeavesOrdinaryFFAlone(t *testing.T) {
	in := []byte{0xFF, 0x50}
	got := Unsynchronise(in)
	want := []byte{0xFF, 0x50}
	if !bytes.Equal(got, want) {
		t.Fatalf("Unsynchronise(%x) = %x, want %x", in, got, want)
	}
}

func TestUnsynchroniseRoundTrip(t *testing.T) {
	in := []byte{0x01, 0xFF, 0x00, 0x02, 0xFF, 0xE5, 0x03, 0xFF}
	got := ReverseUnsynchronise(Unsynchronise(in))
	if !bytes.Equal(got, in) {
		t.Fatalf("round trip = %x, want %x", got, in)
	}
}
