package frame

import "testing"

func TestEqualisationRoundTrip(t *testing.T) {
	f := Equalisation{
		AdjustmentBits: 16,
		Bands: []EqualisationBand{
			{Increment: true, Frequency: 1000, Adjustment: 500},
			{Increment: false, Frequency: 8000, Adjustment: 120},
		},
	}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("EQUA", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(Equalisation)
	if len(got.Bands) != len(f.Bands) {
		t.Fatalf("got %d bands, want %d", len(got.Bands), len(f.Bands))
	}
	for i, b := range got.Bands {
		if b != f.Bands[i] {
			t.Errorf("band %d: got %+v, want %+v", i, b, f.Bands[i])
		}
	}
}

func TestEqualisationRejectedAtV24(t *testing.T) {
	f := Equalisation{AdjustmentBits: 16}
	if err := f.SupportsVersion(V24); err == nil {
		t.Fatal("expected EQUA to be rejected at ID3v2.4")
	}
}

func TestEqualisation2RoundTrip(t *testing.T) {
	f := Equalisation2{
		Interpolation:  InterpolationLinear,
		Identification: "preset-a",
		Bands: []EQU2Band{
			{Frequency: 200, VolumeAdjustment: -150},
			{Frequency: 4000, VolumeAdjustment: 300},
		},
	}
	body, err := f.EncodeBody(V24)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("EQU2", body, V24)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(Equalisation2)
	if got.Identification != f.Identification || len(got.Bands) != len(f.Bands) {
		t.Fatalf("got %+v, want %+v", got, f)
	}
	for i, b := range got.Bands {
		if b != f.Bands[i] {
			t.Errorf("band %d: got %+v, want %+v", i, b, f.Bands[i])
		}
	}
}

func TestEqualisation2RejectedBeforeV24(t *testing.T) {
	f := Equalisation2{Interpolation: InterpolationBand}
	if err := f.SupportsVersion(V23); err == nil {
		t.Fatal("expected EQU2 to be rejected before ID3v2.4")
	}
}
