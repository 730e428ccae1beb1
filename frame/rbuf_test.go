package frame

import "testing"

func TestRecommendedBufferSizeRoundTripWithoutOffset(t *testing.T) {
	f := RecommendedBufferSize{BufferSize: 100000, EmbeddedInfo: true}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("RBUF", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(RecommendedBufferSize)
	if got.BufferSize != f.BufferSize || got.EmbeddedInfo != f.EmbeddedInfo || got.OffsetToNextTag != nil {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}

func TestRecommendedBufferSizeRoundTripWithOffset(t *testing.T) {
	offset := uint32(5000)
	f := RecommendedBufferSize{BufferSize: 200000, EmbeddedInfo: false, OffsetToNextTag: &offset}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("RBUF", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(RecommendedBufferSize)
	if got.OffsetToNextTag == nil || *got.OffsetToNextTag != offset {
		t.Fatalf("OffsetToNextTag = %v, want %d", got.OffsetToNextTag, offset)
	}
}

func TestRecommendedBufferSizeRejectsOversizedBuffer(t *testing.T) {
	f := RecommendedBufferSize{BufferSize: 1 << 25}
	if err := f.SupportsVersion(V23); err == nil {
		t.Fatal("expected a 25-bit buffer size to be rejected")
	}
}
