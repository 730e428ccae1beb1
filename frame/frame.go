// Package frame implements the per-kind ID3v2 frame body codecs and the
// dispatcher that selects one by frame identifier, grounded on the
// per-version frame tables in xonyagar-id3's v22/v23/v24 packages but
// generalised to a single version-agnostic frame model with both decode
// and encode directions.
package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// Version identifies one of the three ID3v2 major revisions this codec
// understands.
type Version int

const (
	V22 Version = 2
	V23 Version = 3
	V24 Version = 4
)

func (v Version) String() string {
	switch v {
	case V22:
		return "ID3v2.2"
	case V23:
		return "ID3v2.3"
	case V24:
		return "ID3v2.4"
	default:
		return fmt.Sprintf("ID3v2.?(%d)", int(v))
	}
}

// Flags is the set of per-frame flags. Only v2.3/v2.4 carry flags on the
// wire; v2.2 frames always decode with a zero Flags, and encoding at
// v2.2 fails if any flag is set.
type Flags struct {
	DiscardOnTagAlteration  bool
	DiscardOnFileAlteration bool
	ReadOnly                bool
	Compression             bool // extra size field (DecompressedSize) in v2.3 only
	Encryption              bool
	Unsynchronisation       bool // v2.4 only
	DataLengthIndicator     bool // v2.4 only

	GroupID           *byte
	EncryptionMethod  *byte
	DecompressedSize  *uint32 // v2.3 compression extra field
	DataLength        *uint32 // v2.4 data length indicator value
}

// Any reports whether at least one flag bit is set, used by the
// version-support check (§4.3: "any flag at all -> not v2.2").
func (f Flags) Any() bool {
	return f.DiscardOnTagAlteration || f.DiscardOnFileAlteration || f.ReadOnly ||
		f.Compression || f.Encryption || f.Unsynchronisation || f.DataLengthIndicator ||
		f.GroupID != nil || f.EncryptionMethod != nil
}

// SupportsVersion reports whether these flags can be represented at v,
// per spec.md §4.3.
func (f Flags) SupportsVersion(v Version) error {
	if v == V22 && f.Any() {
		return fmt.Errorf("frame flags are not representable in ID3v2.2")
	}
	if (f.Unsynchronisation || f.DataLengthIndicator) && v != V24 {
		return fmt.Errorf("unsynchronisation/dataLengthIndicator flags are only supported in ID3v2.4")
	}
	if f.Compression && v == V24 {
		// legal in both, but the extra-field width differs; body codec
		// handles the flag itself, nothing to reject here.
		return nil
	}
	return nil
}

// Body is implemented by every frame-kind's typed value. It knows how to
// encode itself and whether its content (distinct from its flags) is
// legal at a given version.
type Body interface {
	// Identifier returns the frame's canonical (v2.3/v2.4, 4-character)
	// identifier, e.g. "TIT2", "COMM", "APIC".
	Identifier() string

	// EncodeBody renders the frame body (not including the frame header)
	// for the given target version.
	EncodeBody(v Version) ([]byte, error)

	// SupportsVersion reports, independent of flags, whether this frame's
	// content can be represented at v (e.g. EQU2 is v2.4 only).
	SupportsVersion(v Version) error
}

// DecodeFunc parses a frame body given its canonical identifier and the
// target version's wire format.
type DecodeFunc func(id string, body []byte, v Version) (Body, error)

// registry maps an exact identifier (the canonical 4-char form, and the
// v2.2 3-char form where one exists) to its decode function. Plain
// T???/W??? frames are routed by prefix in Decode, not through here.
var registry = map[string]DecodeFunc{}

// RegisterKind associates an identifier with the function that decodes
// its body. Called from each kind's init().
func RegisterKind(id string, fn DecodeFunc) {
	registry[id] = fn
}

// textPrefixExceptions are identifiers starting with 'T' that are not
// plain text-information frames.
var textPrefixExceptions = map[string]bool{"TXX": true, "TXXX": true}

// urlPrefixExceptions are identifiers starting with 'W' that are not
// plain URL-link frames.
var urlPrefixExceptions = map[string]bool{"WXX": true, "WXXX": true}

// Decode dispatches a raw frame body to its typed Body, per spec.md §4.4.
// id must already be in its canonical (4-character) form; v2.2 3-char
// identifiers are remapped by the caller (the tag codec) before reaching
// here.
func Decode(id string, body []byte, v Version) (Body, error) {
	if len(id) > 0 && id[0] == 'T' && !textPrefixExceptions[id] {
		return decodeTextInformation(id, body, v)
	}
	if len(id) > 0 && id[0] == 'W' && !urlPrefixExceptions[id] {
		return decodeURLLink(id, body, v)
	}
	fn, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("frame: unrecognised frame identifier %q", id)
	}
	return fn(id, body, v)
}

// Canonical4 remaps a possibly-3-character (v2.2) identifier to its
// canonical 4-character form used throughout this package. 4-character
// identifiers are returned unchanged.
func Canonical4(id string) (string, error) {
	if len(id) == 4 {
		return id, nil
	}
	if len(id) == 3 {
		return wire.RemapV22ToV24(id)
	}
	return "", fmt.Errorf("frame: identifier %q has invalid length", id)
}
