package frame

import "testing"

func TestAudioEncryptionRoundTrip(t *testing.T) {
	f := AudioEncryption{
		OwnerIdentifier: "com.example.drm",
		PreviewStart:    10,
		PreviewLength:   100,
		EncryptionInfo:  []byte{1, 2, 3},
	}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("AENC", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(AudioEncryption)
	if got.OwnerIdentifier != f.OwnerIdentifier || got.PreviewStart != f.PreviewStart ||
		got.PreviewLength != f.PreviewLength || string(got.EncryptionInfo) != string(f.EncryptionInfo) {
		t.Fatalf("got %+v, want %+v", got, f)
	}
}

func TestAudioEncryptionNoEncryptionInfo(t *testing.T) {
	f := AudioEncryption{OwnerIdentifier: "x", PreviewStart: 0, PreviewLength: 0}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("AENC", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := decoded.(AudioEncryption).EncryptionInfo; got != nil {
		t.Fatalf("EncryptionInfo = %v, want nil", got)
	}
}
