package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// RecommendedBufferSize is "BUF"/"RBUF".
type RecommendedBufferSize struct {
	BufferSize      uint32 // u24
	EmbeddedInfo    bool
	OffsetToNextTag *uint32 // u24, present only when non-nil
}

func (f RecommendedBufferSize) Identifier() string { return "RBUF" }

func (f RecommendedBufferSize) SupportsVersion(v Version) error {
	if f.BufferSize > 0xFFFFFF {
		return fmt.Errorf("RBUF: buffer size exceeds 24 bits")
	}
	if f.OffsetToNextTag != nil && *f.OffsetToNextTag > 0xFFFFFF {
		return fmt.Errorf("RBUF: offset to next tag exceeds 24 bits")
	}
	return nil
}

func (f RecommendedBufferSize) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	out := wire.AppendUint24BE(nil, f.BufferSize)
	embedded := byte(0)
	if f.EmbeddedInfo {
		embedded = 1
	}
	out = append(out, embedded)
	if f.OffsetToNextTag != nil {
		out = wire.AppendUint24BE(out, *f.OffsetToNextTag)
	}
	return out, nil
}

func decodeRBUF(id string, body []byte, v Version) (Body, error) {
	if len(body) < 4 {
		return nil, fmt.Errorf("frame %s: body must be at least 4 bytes", id)
	}
	cur := wire.NewCursor(body)
	size, _ := cur.Uint24BE()
	embByte, _ := cur.Byte()
	f := RecommendedBufferSize{BufferSize: size, EmbeddedInfo: embByte != 0}
	if cur.Len() >= 3 {
		off, err := cur.Uint24BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: offset: %w", id, err)
		}
		f.OffsetToNextTag = &off
	}
	return f, nil
}

func init() {
	RegisterKind("RBUF", decodeRBUF)
	RegisterKind("BUF", decodeRBUF)
}
