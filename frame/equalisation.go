package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// EqualisationBand is one (increment, frequency, adjustment) entry in an
// EQUA/EQU(v1) frame.
type EqualisationBand struct {
	Increment  bool
	Frequency  uint16 // 15 bits, 0-32767 Hz
	Adjustment int64
}

// Equalisation is "EQU"/"EQUA", legal only in v2.2/v2.3.
type Equalisation struct {
	AdjustmentBits int
	Bands          []EqualisationBand
}

func (f Equalisation) Identifier() string { return "EQUA" }

func (f Equalisation) SupportsVersion(v Version) error {
	if v == V24 {
		return fmt.Errorf("equalisation (v1) is not supported in ID3v2.4 (use EQU2)")
	}
	for _, b := range f.Bands {
		if b.Frequency > 0x7FFF {
			return fmt.Errorf("EQUA: frequency %d exceeds 15-bit range", b.Frequency)
		}
	}
	return nil
}

func (f Equalisation) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	w := wire.BitsToBytes(f.AdjustmentBits)
	out := []byte{byte(f.AdjustmentBits)}
	for _, b := range f.Bands {
		freqField := b.Frequency & 0x7FFF
		if b.Increment {
			freqField |= 0x8000
		}
		out = wire.AppendUint16BE(out, freqField)
		out = wire.AppendUintBE(out, uint64(int64ToMagnitude(b.Adjustment)), w)
	}
	return out, nil
}

func decodeEQUA(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	adjBits := int(body[0])
	w := wire.BitsToBytes(adjBits)
	cur := wire.NewCursor(body[1:])
	var bands []EqualisationBand
	for cur.Len() > 0 {
		freqField, err := cur.Uint16BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		adjRaw, err := cur.Bytes(w)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		bands = append(bands, EqualisationBand{
			Increment:  freqField&0x8000 != 0,
			Frequency:  freqField & 0x7FFF,
			Adjustment: int64(wire.UintFromBE(adjRaw)),
		})
	}
	return Equalisation{AdjustmentBits: adjBits, Bands: bands}, nil
}

func init() {
	RegisterKind("EQUA", decodeEQUA)
	RegisterKind("EQU", decodeEQUA)
}

// EqualisationInterpolation selects how EQU2 fills gaps between bands.
type EqualisationInterpolation byte

const (
	InterpolationBand   EqualisationInterpolation = 0
	InterpolationLinear EqualisationInterpolation = 1
)

// EQU2Band is one (frequency, volumeAdjustment) entry, frequency in 1/2 Hz.
type EQU2Band struct {
	Frequency        uint16
	VolumeAdjustment int16
}

// Equalisation2 is "EQU2", legal only in v2.4.
type Equalisation2 struct {
	Interpolation  EqualisationInterpolation
	Identification string
	Bands          []EQU2Band // ordered by Frequency ascending
}

func (f Equalisation2) Identifier() string { return "EQU2" }

func (f Equalisation2) SupportsVersion(v Version) error {
	if v != V24 {
		return fmt.Errorf("equalisation (2) is only supported in ID3v2.4")
	}
	if f.Interpolation != InterpolationBand && f.Interpolation != InterpolationLinear {
		return fmt.Errorf("EQU2: invalid interpolation method %d", f.Interpolation)
	}
	return nil
}

func (f Equalisation2) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	ident, err := wire.EncodeText(f.Identification, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(f.Interpolation)}
	out = append(out, ident...)
	out = append(out, 0x00)
	for _, b := range f.Bands {
		out = wire.AppendUint16BE(out, b.Frequency)
		out = wire.AppendUint16BE(out, uint16(b.VolumeAdjustment))
	}
	return out, nil
}

func decodeEQU2(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	interp := EqualisationInterpolation(body[0])
	ident, rest, ok := wire.SplitTerminated(body[1:], wire.ISO88591)
	if !ok {
		return nil, fmt.Errorf("frame %s: missing identification terminator", id)
	}
	identStr, err := wire.DecodeText(ident, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	cur := wire.NewCursor(rest)
	var bands []EQU2Band
	for cur.Len() > 0 {
		freq, err := cur.Uint16BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		adj, err := cur.Uint16BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		bands = append(bands, EQU2Band{Frequency: freq, VolumeAdjustment: int16(adj)})
	}
	return Equalisation2{Interpolation: interp, Identification: identStr, Bands: bands}, nil
}

func init() {
	RegisterKind("EQU2", decodeEQU2)
}
