// Package wire holds the byte-level transforms shared by every ID3v2
// frame and header codec: synchsafe integers, unsynchronisation,
// text-encoding conversion, flag bytes and the v2.2/v2.3/v2.4
// identifier remap table.
package wire

import "fmt"

// MaxSynchsafe is the largest value EncodeSynchsafe can represent in 32 bits
// (2**28 - 1): four bytes of seven data bits each.
const MaxSynchsafe = 1<<28 - 1

// EncodeSynchsafe regroups the low 28 bits of v into four bytes of seven
// data bits each, high bit always zero. v must be <= MaxSynchsafe.
func EncodeSynchsafe(v uint32) ([4]byte, error) {
	if v > MaxSynchsafe {
		return [4]byte{}, fmt.Errorf("wire: value %d exceeds synchsafe range (max %d)", v, MaxSynchsafe)
	}

	return [4]byte{
		byte((v >> 21) & 0x7F),
		byte((v >> 14) & 0x7F),
		byte((v >> 7) & 0x7F),
		byte(v & 0x7F),
	}, nil
}

// DecodeSynchsafe inverts EncodeSynchsafe. It fails if any byte has its
// most-significant bit set.
func DecodeSynchsafe(b [4]byte) (uint32, error) {
	var v uint32
	for _, c := range b {
		if c&0x80 != 0 {
			return 0, fmt.Errorf("wire: synchsafe byte 0x%02x has high bit set", c)
		}
		v = v<<7 | uint32(c&0x7F)
	}
	return v, nil
}

// DecodeSynchsafeSlice is a convenience wrapper over DecodeSynchsafe for
// callers holding a 4-byte slice rather than an array.
func DecodeSynchsafeSlice(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("wire: synchsafe field must be 4 bytes, got %d", len(b))
	}
	return DecodeSynchsafe([4]byte{b[0], b[1], b[2], b[3]})
}
