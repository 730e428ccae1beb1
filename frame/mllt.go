package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// MLLTReference is one (byteDeviation, msDeviation) entry in the packed
// bitstream. spec.md §9 flags that some source variants encode
// byteDeviation twice per entry; this codec always emits and expects
// (byteDeviation, msDeviation), per the spec.
type MLLTReference struct {
	ByteDeviation uint32
	MsDeviation   uint32
}

// MLLTFrame is the MPEG location lookup table, "MLL"/"MLLT".
type MLLTFrame struct {
	FramesBetweenReference uint16
	BytesBetweenReference  uint32 // u24
	MsBetweenReference     uint32 // u24
	BitsForByteDeviation   uint8
	BitsForMsDeviation     uint8
	References             []MLLTReference
}

func (f MLLTFrame) Identifier() string { return "MLLT" }

func (f MLLTFrame) SupportsVersion(v Version) error {
	if f.BytesBetweenReference > 0xFFFFFF || f.MsBetweenReference > 0xFFFFFF {
		return fmt.Errorf("MLLT: bytes/ms-between-reference must fit in 24 bits")
	}
	byteBits, msBits := f.BitsForByteDeviation, f.BitsForMsDeviation
	if byteBits == 0 || msBits == 0 {
		byteBits, msBits = computeMLLTWidths(f.References)
	}
	if byteBits > 255 || msBits > 255 {
		return fmt.Errorf("MLLT: deviation bit width exceeds 255 bits")
	}
	return nil
}

func (f MLLTFrame) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	byteBits, msBits := f.BitsForByteDeviation, f.BitsForMsDeviation
	if byteBits == 0 || msBits == 0 {
		byteBits, msBits = computeMLLTWidths(f.References)
	}

	out := make([]byte, 0, 10)
	out = wire.AppendUint16BE(out, f.FramesBetweenReference)
	out = wire.AppendUint24BE(out, f.BytesBetweenReference)
	out = wire.AppendUint24BE(out, f.MsBetweenReference)
	out = append(out, byteBits, msBits)

	bw := newBitWriter()
	for _, r := range f.References {
		bw.writeBits(uint64(r.ByteDeviation), int(byteBits))
		bw.writeBits(uint64(r.MsDeviation), int(msBits))
	}
	out = append(out, bw.bytes()...)
	return out, nil
}

// computeMLLTWidths derives the minimum bit width (rounded up to whole
// bytes, then expressed in bits per spec.md §4.5) needed to represent the
// maximum absolute deviation across all references.
func computeMLLTWidths(refs []MLLTReference) (byteBits, msBits uint8) {
	var maxByte, maxMs uint32
	for _, r := range refs {
		if r.ByteDeviation > maxByte {
			maxByte = r.ByteDeviation
		}
		if r.MsDeviation > maxMs {
			maxMs = r.MsDeviation
		}
	}
	byteBits = uint8(wire.MinBytesForUint(uint64(maxByte), 1) * 8)
	msBits = uint8(wire.MinBytesForUint(uint64(maxMs), 1) * 8)
	return
}

func decodeMLLT(id string, body []byte, v Version) (Body, error) {
	cur := wire.NewCursor(body)
	framesBetween, err := cur.Uint16BE()
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	bytesBetween, err := cur.Uint24BE()
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	msBetween, err := cur.Uint24BE()
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	byteBits, err := cur.Byte()
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	msBits, err := cur.Byte()
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}

	br := newBitReader(cur.Rest())
	entryBits := int(byteBits) + int(msBits)
	var refs []MLLTReference
	for br.remainingBits() >= entryBits && entryBits > 0 {
		byteDev := br.readBits(int(byteBits))
		msDev := br.readBits(int(msBits))
		refs = append(refs, MLLTReference{ByteDeviation: uint32(byteDev), MsDeviation: uint32(msDev)})
	}

	return MLLTFrame{
		FramesBetweenReference: framesBetween,
		BytesBetweenReference:  bytesBetween,
		MsBetweenReference:     msBetween,
		BitsForByteDeviation:   byteBits,
		BitsForMsDeviation:     msBits,
		References:             refs,
	}, nil
}

func init() {
	RegisterKind("MLLT", decodeMLLT)
	RegisterKind("MLL", decodeMLLT)
}

// bitWriter packs values MSB-first into a growing byte buffer.
type bitWriter struct {
	buf     []byte
	bitPos  int // number of bits already used in the last byte of buf
}

func newBitWriter() *bitWriter { return &bitWriter{} }

func (w *bitWriter) writeBits(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		if w.bitPos == 0 {
			w.buf = append(w.buf, 0)
		}
		w.buf[len(w.buf)-1] |= bit << uint(7-w.bitPos)
		w.bitPos = (w.bitPos + 1) % 8
	}
}

func (w *bitWriter) bytes() []byte { return w.buf }

// bitReader unpacks values MSB-first from a byte buffer.
type bitReader struct {
	buf    []byte
	bitPos int // absolute bit offset from start of buf
}

func newBitReader(b []byte) *bitReader { return &bitReader{buf: b} }

func (r *bitReader) remainingBits() int {
	return len(r.buf)*8 - r.bitPos
}

func (r *bitReader) readBits(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		byteIdx := r.bitPos / 8
		bitIdx := uint(7 - r.bitPos%8)
		bit := (r.buf[byteIdx] >> bitIdx) & 1
		v = v<<1 | uint64(bit)
		r.bitPos++
	}
	return v
}
