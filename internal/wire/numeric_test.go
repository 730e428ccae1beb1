package wire

import (
	"bytes"
	"testing"
)

func TestAppendUint24BE(t *testing.T) {
	got := AppendUint24BE(nil, 0x010203)
	want := []byte{0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Fatalf("AppendUint24BE = %x, want %x", got, want)
	}
}

func TestAppendUintBERoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 65536, 0xFFFFFFFF} {
		width := MinBytesForUint(v, 1)
		enc := AppendUintBE(nil, v, width)
		got := UintFromBE(enc)
		if got != v {
			t.Errorf("round trip %d (width %d): got %d", v, width, got)
		}
	}
}

func TestMinBytesForUintRespectsMinimum(t *testing.T) {
	if w := MinBytesForUint(0, 4); w != 4 {
		t.Errorf("MinBytesForUint(0, 4) = %d, want 4", w)
	}
	if w := MinBytesForUint(1<<32, 4); w != 5 {
		t.Errorf("MinBytesForUint(1<<32, 4) = %d, want 5", w)
	}
}

func TestBitsToBytes(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 8: 1, 9: 2, 16: 2, 17: 3}
	for bits, want := range cases {
		if got := BitsToBytes(bits); got != want {
			t.Errorf("BitsToBytes(%d) = %d, want %d", bits, got, want)
		}
	}
}
