package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// Reverb is "REV"/"RVRB": 12 fixed bytes.
type Reverb struct {
	ReverbLeft   uint16
	ReverbRight  uint16
	BouncesLeft  byte
	BouncesRight byte
	FeedbackLL   byte
	FeedbackLR   byte
	FeedbackRR   byte
	FeedbackRL   byte
	PremixLR     byte
	PremixRL     byte
}

func (f Reverb) Identifier() string { return "RVRB" }

func (f Reverb) SupportsVersion(v Version) error { return nil }

func (f Reverb) EncodeBody(v Version) ([]byte, error) {
	out := make([]byte, 0, 12)
	out = wire.AppendUint16BE(out, f.ReverbLeft)
	out = wire.AppendUint16BE(out, f.ReverbRight)
	out = append(out, f.BouncesLeft, f.BouncesRight,
		f.FeedbackLL, f.FeedbackLR, f.FeedbackRR, f.FeedbackRL,
		f.PremixLR, f.PremixRL)
	return out, nil
}

func decodeReverb(id string, body []byte, v Version) (Body, error) {
	if len(body) != 12 {
		return nil, fmt.Errorf("frame %s: body must be exactly 12 bytes, got %d", id, len(body))
	}
	cur := wire.NewCursor(body)
	left, _ := cur.Uint16BE()
	right, _ := cur.Uint16BE()
	rest, _ := cur.Bytes(8)
	return Reverb{
		ReverbLeft: left, ReverbRight: right,
		BouncesLeft: rest[0], BouncesRight: rest[1],
		FeedbackLL: rest[2], FeedbackLR: rest[3], FeedbackRR: rest[4], FeedbackRL: rest[5],
		PremixLR: rest[6], PremixRL: rest[7],
	}, nil
}

func init() {
	RegisterKind("RVRB", decodeReverb)
	RegisterKind("REV", decodeReverb)
}
