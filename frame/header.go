package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// defaultDiscardOnFileAlteration is the spec-defined set of 4-character
// identifiers whose default discardOnFileAlteration flag is true when a
// caller does not supply explicit flags (spec.md §4.3).
var defaultDiscardOnFileAlteration = map[string]bool{
	"ASPI": true, "AENC": true, "ETCO": true, "EQUA": true, "EQU2": true,
	"MLLT": true, "POSS": true, "SEEK": true, "SYLT": true, "SYTC": true,
	"RVAD": true, "RVA2": true, "TENC": true, "TLEN": true, "TSIZ": true,
}

// DefaultFlags returns the default flag set for a canonical 4-character
// identifier when the caller supplies none.
func DefaultFlags(id4 string) Flags {
	return Flags{DiscardOnFileAlteration: defaultDiscardOnFileAlteration[id4]}
}

// v23Bits and v24Bits give the bit position (0 = MSB of the
// 2-byte flag word) of each named flag, per the table in spec.md §4.3.
type flagBitLayout struct {
	discardOnTagAlteration, discardOnFileAlteration, readOnly int
	groupingIdentity, compression, encryption                int
	unsynchronisation, dataLengthIndicator                   int // -1 if not applicable
}

var v23Bits = flagBitLayout{0, 1, 2, 10, 8, 9, -1, -1}
var v24Bits = flagBitLayout{1, 2, 3, 9, 12, 13, 14, 15}

func layoutFor(v Version) flagBitLayout {
	if v == V24 {
		return v24Bits
	}
	return v23Bits
}

// HeaderSize returns the base (non-extended) frame header size for v:
// 6 bytes for v2.2, 10 for v2.3/v2.4.
func HeaderSize(v Version) int {
	if v == V22 {
		return 6
	}
	return 10
}

// DecodedHeader is the result of parsing one frame header off the wire.
type DecodedHeader struct {
	ID          string // canonical, Canonical4-normalised identifier
	RawID       string // identifier exactly as it appeared on the wire
	Flags       Flags
	BodySize    int // size of the body available to the frame-kind decoder
	TotalHeader int // bytes consumed: base header + any extra flag data
}

// DecodeHeader parses one frame header (and any flag-driven extra data)
// from the start of buf.
func DecodeHeader(buf []byte, v Version) (DecodedHeader, error) {
	idWidth := wire.IdentifierWidth(int(v))
	base := HeaderSize(v)
	if len(buf) < base {
		return DecodedHeader{}, fmt.Errorf("frame header: need %d bytes, have %d", base, len(buf))
	}
	rawID := string(buf[:idWidth])
	canonical, err := Canonical4(rawID)
	if err != nil {
		return DecodedHeader{}, err
	}

	var size int
	if v == V22 {
		size = int(buf[3])<<16 | int(buf[4])<<8 | int(buf[5])
	} else if v == V23 {
		size = int(buf[4])<<24 | int(buf[5])<<16 | int(buf[6])<<8 | int(buf[7])
	} else {
		sz, err := wire.DecodeSynchsafeSlice(buf[4:8])
		if err != nil {
			return DecodedHeader{}, fmt.Errorf("frame header: %w", err)
		}
		size = int(sz)
	}

	var flags Flags
	consumed := base
	if v != V22 {
		flagBytes := buf[8:10]
		layout := layoutFor(v)
		flags.DiscardOnTagAlteration = wire.UnpackFlag(flagBytes, layout.discardOnTagAlteration)
		flags.DiscardOnFileAlteration = wire.UnpackFlag(flagBytes, layout.discardOnFileAlteration)
		flags.ReadOnly = wire.UnpackFlag(flagBytes, layout.readOnly)
		flags.Compression = wire.UnpackFlag(flagBytes, layout.compression)
		hasGroup := wire.UnpackFlag(flagBytes, layout.groupingIdentity)
		hasEncryption := wire.UnpackFlag(flagBytes, layout.encryption)
		if v == V24 {
			flags.Unsynchronisation = wire.UnpackFlag(flagBytes, layout.unsynchronisation)
			flags.DataLengthIndicator = wire.UnpackFlag(flagBytes, layout.dataLengthIndicator)
		}

		extra := consumed
		if flags.Compression && v == V23 {
			if len(buf) < extra+4 {
				return DecodedHeader{}, fmt.Errorf("frame header: truncated compression size field")
			}
			dsz := uint32(buf[extra])<<24 | uint32(buf[extra+1])<<16 | uint32(buf[extra+2])<<8 | uint32(buf[extra+3])
			flags.DecompressedSize = &dsz
			extra += 4
			size -= 4
		}
		if hasGroup {
			if len(buf) < extra+1 {
				return DecodedHeader{}, fmt.Errorf("frame header: truncated group identity byte")
			}
			g := buf[extra]
			flags.GroupID = &g
			extra++
			size--
		}
		if hasEncryption {
			if len(buf) < extra+1 {
				return DecodedHeader{}, fmt.Errorf("frame header: truncated encryption method byte")
			}
			m := buf[extra]
			flags.EncryptionMethod = &m
			extra++
			size--
		}
		if flags.DataLengthIndicator {
			if len(buf) < extra+4 {
				return DecodedHeader{}, fmt.Errorf("frame header: truncated data length indicator")
			}
			dl, err := wire.DecodeSynchsafeSlice(buf[extra : extra+4])
			if err != nil {
				return DecodedHeader{}, fmt.Errorf("frame header: data length indicator: %w", err)
			}
			flags.DataLength = &dl
			extra += 4
			size -= 4
		}
		consumed = extra
	}

	if size < 0 {
		return DecodedHeader{}, fmt.Errorf("frame header: declared size smaller than flag-derived extra data")
	}

	return DecodedHeader{ID: canonical, RawID: rawID, Flags: flags, BodySize: size, TotalHeader: consumed}, nil
}

// EncodeHeader renders a frame header (identifier, size, and v2.3/v2.4
// flags with any flag-driven extra data) for a body of length bodyLen.
func EncodeHeader(id string, bodyLen int, flags Flags, v Version) ([]byte, error) {
	if err := flags.SupportsVersion(v); err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}

	wireID := id
	if v == V22 {
		short, err := wire.RemapV24ToV22(id)
		if err != nil {
			return nil, fmt.Errorf("frame %s has no ID3v2.2 identifier: %w", id, err)
		}
		wireID = short
	}

	var extra []byte
	declaredSize := bodyLen
	if v != V22 {
		if flags.Compression && v == V23 && flags.DecompressedSize != nil {
			extra = wire.AppendUint32BE(extra, *flags.DecompressedSize)
			declaredSize += 4
		}
		if flags.GroupID != nil {
			extra = append(extra, *flags.GroupID)
			declaredSize++
		}
		if flags.EncryptionMethod != nil {
			extra = append(extra, *flags.EncryptionMethod)
			declaredSize++
		}
		if flags.DataLengthIndicator && flags.DataLength != nil {
			ss, err := wire.EncodeSynchsafe(*flags.DataLength)
			if err != nil {
				return nil, fmt.Errorf("frame %s: data length indicator: %w", id, err)
			}
			extra = append(extra, ss[:]...)
			declaredSize += 4
		}
	}

	out := []byte(wireID)
	switch v {
	case V22:
		out = wire.AppendUint24BE(out, uint32(declaredSize))
	case V23:
		out = wire.AppendUint32BE(out, uint32(declaredSize))
	case V24:
		ss, err := wire.EncodeSynchsafe(uint32(declaredSize))
		if err != nil {
			return nil, fmt.Errorf("frame %s: size: %w", id, err)
		}
		out = append(out, ss[:]...)
	}

	if v != V22 {
		layout := layoutFor(v)
		bits := make([]bool, 16)
		bits[layout.discardOnTagAlteration] = flags.DiscardOnTagAlteration
		bits[layout.discardOnFileAlteration] = flags.DiscardOnFileAlteration
		bits[layout.readOnly] = flags.ReadOnly
		bits[layout.compression] = flags.Compression
		bits[layout.groupingIdentity] = flags.GroupID != nil
		bits[layout.encryption] = flags.EncryptionMethod != nil
		if v == V24 {
			bits[layout.unsynchronisation] = flags.Unsynchronisation
			bits[layout.dataLengthIndicator] = flags.DataLengthIndicator
		}
		out = append(out, wire.PackFlags(2, bits...)...)
		out = append(out, extra...)
	}

	return out, nil
}
