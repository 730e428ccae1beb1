package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// MaxUFIDLength is the largest identifier payload spec.md §3/§7 allows.
const MaxUFIDLength = 64

// UniqueFileIdentifier is "UFI"/"UFID": (ownerIdentifier, identifier).
type UniqueFileIdentifier struct {
	OwnerIdentifier string
	Identifier      []byte
}

func (f UniqueFileIdentifier) Identifier() string { return "UFID" }

func (f UniqueFileIdentifier) EncodeBody(v Version) ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	owner, err := wire.EncodeText(f.OwnerIdentifier, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := append(owner, 0x00)
	out = append(out, f.Identifier...)
	return out, nil
}

func (f UniqueFileIdentifier) SupportsVersion(v Version) error {
	return f.validate()
}

func (f UniqueFileIdentifier) validate() error {
	if f.OwnerIdentifier == "" {
		return fmt.Errorf("frame UFID: owner identifier must not be empty")
	}
	if len(f.Identifier) > MaxUFIDLength {
		return fmt.Errorf("frame UFID: identifier is %d bytes, exceeds the %d-byte maximum", len(f.Identifier), MaxUFIDLength)
	}
	return nil
}

func decodeUFID(id string, body []byte, v Version) (Body, error) {
	owner, rest, ok := wire.SplitTerminated(body, wire.ISO88591)
	if !ok {
		return nil, fmt.Errorf("frame %s: missing owner-identifier terminator", id)
	}
	ownerStr, err := wire.DecodeText(owner, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	f := UniqueFileIdentifier{OwnerIdentifier: ownerStr, Identifier: rest}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func init() {
	RegisterKind("UFID", decodeUFID)
	RegisterKind("UFI", decodeUFID)
}
