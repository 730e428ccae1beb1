package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// RVADChannel is one channel's (increment, relativeVolume, peakVolume)
// triple within a RelativeVolumeAdjustment frame.
type RVADChannel struct {
	Increment      bool
	RelativeVolume int64
	PeakVolume     uint64
}

// RelativeVolumeAdjustment is "RVA"/"RVAD", legal only in v2.2/v2.3. Right
// and Left are mandatory; the rest are optional extensions present only
// when non-nil.
type RelativeVolumeAdjustment struct {
	VolumeDescBits int // width, in bits, of RelativeVolume/PeakVolume fields

	Right RVADChannel
	Left  RVADChannel

	RightBack *RVADChannel
	LeftBack  *RVADChannel
	Center    *RVADChannel
	Bass      *RVADChannel
}

func (f RelativeVolumeAdjustment) Identifier() string { return "RVAD" }

func (f RelativeVolumeAdjustment) SupportsVersion(v Version) error {
	if v == V24 {
		return fmt.Errorf("relative volume adjustment (v1) is not supported in ID3v2.4 (use RVA2)")
	}
	if f.VolumeDescBits <= 0 || f.VolumeDescBits > 255 {
		return fmt.Errorf("RVAD: volume descriptor bit width %d out of range", f.VolumeDescBits)
	}
	return nil
}

// incrementByte packs the six increment booleans MSB-first in the order
// spec.md §4.5 and §9 pin: bass, center, leftBack, rightBack, left, right.
func (f RelativeVolumeAdjustment) incrementByte() byte {
	bits := []bool{
		optIncrement(f.Bass), optIncrement(f.Center),
		optIncrement(f.LeftBack), optIncrement(f.RightBack),
		f.Left.Increment, f.Right.Increment,
	}
	return wire.PackFlags(1, bits...)[0]
}

func optIncrement(c *RVADChannel) bool {
	return c != nil && c.Increment
}

func (f RelativeVolumeAdjustment) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	w := wire.BitsToBytes(f.VolumeDescBits)

	out := []byte{f.incrementByte(), byte(f.VolumeDescBits)}
	out = wire.AppendUintBE(out, uint64(int64ToMagnitude(f.Right.RelativeVolume)), w)
	out = wire.AppendUintBE(out, uint64(int64ToMagnitude(f.Left.RelativeVolume)), w)
	out = wire.AppendUintBE(out, f.Right.PeakVolume, w)
	out = wire.AppendUintBE(out, f.Left.PeakVolume, w)

	extras := []*RVADChannel{f.RightBack, f.LeftBack, f.Center, f.Bass}
	present := true
	for _, e := range extras {
		if e == nil {
			present = false
		}
	}
	if present {
		for _, e := range []*RVADChannel{f.RightBack, f.LeftBack} {
			out = wire.AppendUintBE(out, uint64(int64ToMagnitude(e.RelativeVolume)), w)
			out = wire.AppendUintBE(out, e.PeakVolume, w)
		}
		out = wire.AppendUintBE(out, uint64(int64ToMagnitude(f.Center.RelativeVolume)), w)
		out = wire.AppendUintBE(out, f.Center.PeakVolume, w)
		out = wire.AppendUintBE(out, uint64(int64ToMagnitude(f.Bass.RelativeVolume)), w)
		out = wire.AppendUintBE(out, f.Bass.PeakVolume, w)
	}
	return out, nil
}

func int64ToMagnitude(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func decodeRVAD(id string, body []byte, v Version) (Body, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("frame %s: body too short", id)
	}
	incByte := body[0]
	descBits := int(body[1])
	w := wire.BitsToBytes(descBits)

	cur := wire.NewCursor(body[2:])
	readChan := func(incSet bool) (RVADChannel, error) {
		rv, err := cur.Bytes(w)
		if err != nil {
			return RVADChannel{}, err
		}
		pv, err := cur.Bytes(w)
		if err != nil {
			return RVADChannel{}, err
		}
		// RelativeVolume holds the magnitude; the direction is Increment.
		rel := int64(wire.UintFromBE(rv))
		return RVADChannel{Increment: incSet, RelativeVolume: rel, PeakVolume: wire.UintFromBE(pv)}, nil
	}

	// bits, MSB first: bass, center, leftBack, rightBack, left, right
	// (positions 0-5; 6-7 are zero padding).
	bassInc := wire.UnpackFlag([]byte{incByte}, 0)
	centerInc := wire.UnpackFlag([]byte{incByte}, 1)
	leftBackInc := wire.UnpackFlag([]byte{incByte}, 2)
	rightBackInc := wire.UnpackFlag([]byte{incByte}, 3)
	leftInc := wire.UnpackFlag([]byte{incByte}, 4)
	rightInc := wire.UnpackFlag([]byte{incByte}, 5)

	right, err := readChan(rightInc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: right: %w", id, err)
	}
	left, err := readChan(leftInc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: left: %w", id, err)
	}

	f := RelativeVolumeAdjustment{VolumeDescBits: descBits, Right: right, Left: left}

	if cur.Len() > 0 {
		rb, err := readChan(rightBackInc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: rightBack: %w", id, err)
		}
		lb, err := readChan(leftBackInc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: leftBack: %w", id, err)
		}
		c, err := readChan(centerInc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: center: %w", id, err)
		}
		b, err := readChan(bassInc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: bass: %w", id, err)
		}
		f.RightBack, f.LeftBack, f.Center, f.Bass = &rb, &lb, &c, &b
	}

	return f, nil
}

func init() {
	RegisterKind("RVAD", decodeRVAD)
	RegisterKind("RVA", decodeRVAD)
}
