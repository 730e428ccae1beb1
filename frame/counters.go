package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// PlayCounter is "CNT"/"PCNT": a non-negative integer, at least 4 bytes
// wide on the wire, extending as needed to hold larger values.
type PlayCounter struct {
	Count uint64
}

func (f PlayCounter) Identifier() string        { return "PCNT" }
func (f PlayCounter) SupportsVersion(Version) error { return nil }

func (f PlayCounter) EncodeBody(v Version) ([]byte, error) {
	width := wire.MinBytesForUint(f.Count, 4)
	return wire.AppendUintBE(nil, f.Count, width), nil
}

func decodePCNT(id string, body []byte, v Version) (Body, error) {
	if len(body) < 4 {
		return nil, fmt.Errorf("frame %s: body must be at least 4 bytes", id)
	}
	return PlayCounter{Count: wire.UintFromBE(body)}, nil
}

func init() {
	RegisterKind("PCNT", decodePCNT)
	RegisterKind("CNT", decodePCNT)
}

// Popularimeter is "POP"/"POPM": (email, rating, playCount).
type Popularimeter struct {
	Email     string
	Rating    uint8
	PlayCount uint64
}

func (f Popularimeter) Identifier() string        { return "POPM" }
func (f Popularimeter) SupportsVersion(Version) error { return nil }

func (f Popularimeter) EncodeBody(v Version) ([]byte, error) {
	email, err := wire.EncodeText(f.Email, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := append(email, 0x00, f.Rating)
	width := wire.MinBytesForUint(f.PlayCount, 4)
	return wire.AppendUintBE(out, f.PlayCount, width), nil
}

// decodePOPM searches for the email terminator within the post-header
// frame body slice only. spec.md §9 flags a known source bug where the
// search instead scans the whole frame buffer (including bytes already
// consumed as the frame header) — this is treated as a bug, not behavior
// to preserve.
func decodePOPM(id string, body []byte, v Version) (Body, error) {
	email, rest, ok := wire.SplitTerminated(body, wire.ISO88591)
	if !ok {
		return nil, fmt.Errorf("frame %s: missing email terminator", id)
	}
	if len(rest) < 1 {
		return nil, fmt.Errorf("frame %s: missing rating byte", id)
	}
	emailStr, err := wire.DecodeText(email, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	rating := rest[0]
	count := rest[1:]
	var playCount uint64
	if len(count) > 0 {
		playCount = wire.UintFromBE(count)
	}
	return Popularimeter{Email: emailStr, Rating: rating, PlayCount: playCount}, nil
}

func init() {
	RegisterKind("POPM", decodePOPM)
	RegisterKind("POP", decodePOPM)
}
