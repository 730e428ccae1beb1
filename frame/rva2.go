package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// RVA2Channel is one channel's adjustment entry in a RVA2 frame.
type RVA2Channel struct {
	ChannelType    byte // 0-8
	Adjustment     int16 // fixed-point, 1/512 dB per unit
	PeakBits       uint8 // width in bits of PeakVolume
	PeakVolume     uint64
}

// RelativeVolumeAdjustment2 is "RVA2", legal only in v2.4.
type RelativeVolumeAdjustment2 struct {
	Identification string
	Channels       []RVA2Channel
}

func (f RelativeVolumeAdjustment2) Identifier() string { return "RVA2" }

func (f RelativeVolumeAdjustment2) SupportsVersion(v Version) error {
	if v != V24 {
		return fmt.Errorf("relative volume adjustment (2) is only supported in ID3v2.4")
	}
	for _, c := range f.Channels {
		if c.ChannelType > 8 {
			return fmt.Errorf("RVA2: channel type %d out of range 0-8", c.ChannelType)
		}
	}
	return nil
}

func (f RelativeVolumeAdjustment2) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	ident, err := wire.EncodeText(f.Identification, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := append(ident, 0x00)
	for _, c := range f.Channels {
		peakBits := c.PeakBits
		if peakBits == 0 {
			peakBits = uint8(wire.MinBytesForUint(c.PeakVolume, 1) * 8)
		}
		out = append(out, c.ChannelType)
		out = wire.AppendUint16BE(out, uint16(c.Adjustment))
		out = append(out, peakBits)
		out = wire.AppendUintBE(out, c.PeakVolume, wire.BitsToBytes(int(peakBits)))
	}
	return out, nil
}

func decodeRVA2(id string, body []byte, v Version) (Body, error) {
	ident, rest, ok := wire.SplitTerminated(body, wire.ISO88591)
	if !ok {
		return nil, fmt.Errorf("frame %s: missing identification terminator", id)
	}
	identStr, err := wire.DecodeText(ident, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}

	cur := wire.NewCursor(rest)
	var channels []RVA2Channel
	for cur.Len() > 0 {
		ct, err := cur.Byte()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		adjRaw, err := cur.Uint16BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		peakBits, err := cur.Byte()
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		peakBytes := wire.BitsToBytes(int(peakBits))
		pv, err := cur.Bytes(peakBytes)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", id, err)
		}
		channels = append(channels, RVA2Channel{
			ChannelType: ct,
			Adjustment:  int16(adjRaw),
			PeakBits:    peakBits,
			PeakVolume:  wire.UintFromBE(pv),
		})
	}

	return RelativeVolumeAdjustment2{Identification: identStr, Channels: channels}, nil
}

func init() {
	RegisterKind("RVA2", decodeRVA2)
}
