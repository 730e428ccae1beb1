package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// AudioEncryption is "CRA"/"AENC".
type AudioEncryption struct {
	OwnerIdentifier string
	PreviewStart    uint16
	PreviewLength   uint16
	EncryptionInfo  []byte
}

func (f AudioEncryption) Identifier() string        { return "AENC" }
func (f AudioEncryption) SupportsVersion(Version) error { return nil }

func (f AudioEncryption) EncodeBody(v Version) ([]byte, error) {
	owner, err := wire.EncodeText(f.OwnerIdentifier, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := append(owner, 0x00)
	out = wire.AppendUint16BE(out, f.PreviewStart)
	out = wire.AppendUint16BE(out, f.PreviewLength)
	out = append(out, f.EncryptionInfo...)
	return out, nil
}

func decodeAENC(id string, body []byte, v Version) (Body, error) {
	owner, rest, ok := wire.SplitTerminated(body, wire.ISO88591)
	if !ok {
		return nil, fmt.Errorf("frame %s: missing owner-identifier terminator", id)
	}
	ownerStr, err := wire.DecodeText(owner, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	if len(rest) < 4 {
		return nil, fmt.Errorf("frame %s: body too short after owner identifier", id)
	}
	cur := wire.NewCursor(rest)
	start, _ := cur.Uint16BE()
	length, _ := cur.Uint16BE()
	info := cur.Rest()
	var infoCopy []byte
	if len(info) > 0 {
		infoCopy = append([]byte(nil), info...)
	}
	return AudioEncryption{OwnerIdentifier: ownerStr, PreviewStart: start, PreviewLength: length, EncryptionInfo: infoCopy}, nil
}

func init() {
	RegisterKind("AENC", decodeAENC)
	RegisterKind("CRA", decodeAENC)
}
