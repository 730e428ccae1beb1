package frame

import "testing"

func TestPlayCounterRoundTrip(t *testing.T) {
	f := PlayCounter{Count: 1 << 40}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("PCNT", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := decoded.(PlayCounter)
	if !ok || got.Count != f.Count {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestPlayCounterMinimumFourBytes(t *testing.T) {
	f := PlayCounter{Count: 3}
	body, _ := f.EncodeBody(V23)
	if len(body) != 4 {
		t.Fatalf("PCNT body must be at least 4 bytes wide, got %d", len(body))
	}
}

func TestPopularimeterRoundTrip(t *testing.T) {
	f := Popularimeter{Email: "listener@example.com", Rating: 196, PlayCount: 42}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("POPM", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := decoded.(Popularimeter)
	if !ok {
		t.Fatalf("decoded = %+v", decoded)
	}
	if got.Email != f.Email || got.Rating != f.Rating || got.PlayCount != f.PlayCount {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}

func TestPopularimeterNoPlayCount(t *testing.T) {
	body := append([]byte("a@b.c\x00"), 128)
	decoded, err := Decode("POPM", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(Popularimeter)
	if got.PlayCount != 0 {
		t.Fatalf("PlayCount = %d, want 0 when omitted", got.PlayCount)
	}
}
