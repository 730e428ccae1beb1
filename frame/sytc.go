package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// TempoChange is one (tempo, time) entry. Tempo 1-510; values >= 255 are
// wire-encoded as 0xFF followed by (tempo - 0xFF).
type TempoChange struct {
	Tempo uint16
	Time  int32
}

// SynchronisedTempoCodes is "STC"/"SYTC".
type SynchronisedTempoCodes struct {
	Unit   TimestampUnit
	Tempos []TempoChange
}

func (f SynchronisedTempoCodes) Identifier() string { return "SYTC" }

func (f SynchronisedTempoCodes) SupportsVersion(v Version) error {
	if !f.Unit.valid() {
		return fmt.Errorf("synchronised tempo codes: invalid timestamp unit %d", f.Unit)
	}
	for _, t := range f.Tempos {
		if t.Tempo < 1 || t.Tempo > 510 {
			return fmt.Errorf("synchronised tempo codes: tempo %d out of range 1-510", t.Tempo)
		}
	}
	return nil
}

func (f SynchronisedTempoCodes) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	out := []byte{byte(f.Unit)}
	for _, t := range f.Tempos {
		if t.Tempo >= 0xFF {
			out = append(out, 0xFF, byte(t.Tempo-0xFF))
		} else {
			out = append(out, byte(t.Tempo))
		}
		out = wire.AppendInt32BE(out, t.Time)
	}
	return out, nil
}

func decodeSYTC(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	unit := TimestampUnit(body[0])
	cur := wire.NewCursor(body[1:])
	var tempos []TempoChange
	for cur.Len() > 0 {
		b, err := cur.Byte()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		tempo := uint16(b)
		if b == 0xFF {
			extra, err := cur.Byte()
			if err != nil {
				return nil, fmt.Errorf("frame %s: %w", id, err)
			}
			tempo = 0xFF + uint16(extra)
		}
		t, err := cur.Int32BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		tempos = append(tempos, TempoChange{Tempo: tempo, Time: t})
	}
	return SynchronisedTempoCodes{Unit: unit, Tempos: tempos}, nil
}

func init() {
	RegisterKind("SYTC", decodeSYTC)
	RegisterKind("STC", decodeSYTC)
}
