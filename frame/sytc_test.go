package frame

import "testing"

func TestSynchronisedTempoCodesRoundTrip(t *testing.T) {
	f := SynchronisedTempoCodes{
		Unit: TimestampMilliseconds,
		Tempos: []TempoChange{
			{Tempo: 120, Time: 0},
			{Tempo: 300, Time: 5000}, // exercises the 0xFF escape byte
		},
	}
	body, err := f.EncodeBody(V23)
	if err != nil {
		t.Fatalf("EncodeBody: %v", err)
	}
	decoded, err := Decode("SYTC", body, V23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := decoded.(SynchronisedTempoCodes)
	if len(got.Tempos) != len(f.Tempos) {
		t.Fatalf("got %d tempos, want %d", len(got.Tempos), len(f.Tempos))
	}
	for i, tc := range got.Tempos {
		if tc != f.Tempos[i] {
			t.Errorf("tempo %d: got %+v, want %+v", i, tc, f.Tempos[i])
		}
	}
}

func TestSynchronisedTempoCodesRejectsOutOfRangeTempo(t *testing.T) {
	f := SynchronisedTempoCodes{Unit: TimestampMilliseconds, Tempos: []TempoChange{{Tempo: 511}}}
	if err := f.SupportsVersion(V23); err == nil {
		t.Fatal("expected tempo 511 to be rejected")
	}
}
