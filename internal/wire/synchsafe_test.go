package wire

import "testing"

func TestSynchsafeRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 127, 128, 16384, MaxSynchsafe}
	for _, v := range cases {
		enc, err := EncodeSynchsafe(v)
		if err != nil {
			t.Fatalf("EncodeSynchsafe(%d): %v", v, err)
		}
		for _, b := range enc {
			if b&0x80 != 0 {
				t.Fatalf("EncodeSynchsafe(%d): byte 0x%02x has high bit set", v, b)
			}
		}
		got, err := DecodeSynchsafe(enc)
		if err != nil {
			t.Fatalf("DecodeSynchsafe: %v", err)
		}
		if got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}

func TestEncodeSynchsafeOverflow(t *testing.T) {
	if _, err := EncodeSynchsafe(MaxSynchsafe + 1); err == nil {
		t.Fatal("expected error for value exceeding synchsafe range")
	}
}

func TestDecodeSynchsafeHighBit(t *testing.T) {
	if _, err := DecodeSynchsafe([4]byte{0x80, 0, 0, 0}); err == nil {
		t.Fatal("expected error for high bit set")
	}
}

func TestDecodeSynchsafeSliceWrongLength(t *testing.T) {
	if _, err := DecodeSynchsafeSlice([]byte{0, 0, 0}); err == nil {
		t.Fatal("expected error for wrong-length slice")
	}
}
