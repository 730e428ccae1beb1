package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// Identifiers introduced after v2.2 have no v2.2 remap entry;
// canonicalFor rejects them at v2.2 through wire.RemapV24ToV22, so no
// separate table of them is kept here.

// TextInformation is a single-string "T???" frame (every identifier
// starting with T except TXX/TXXX).
type TextInformation struct {
	ID       string
	Encoding wire.TextEncoding
	Text     string
}

func (f TextInformation) Identifier() string { return f.ID }

func (f TextInformation) EncodeBody(v Version) ([]byte, error) {
	enc := f.Encoding
	if err := checkTextEncodingVersion(enc, v); err != nil {
		return nil, err
	}
	text, err := wire.EncodeText(f.Text, enc)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(enc)}, text...), nil
}

func (f TextInformation) SupportsVersion(v Version) error {
	if _, err := canonicalFor(f.ID, v); err != nil {
		return err
	}
	return checkTextEncodingVersion(f.Encoding, v)
}

func decodeTextInformation(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	text, err := wire.DecodeText(body[1:], enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	return TextInformation{ID: id, Encoding: enc, Text: text}, nil
}

// UserDefinedText is "TXX"/"TXXX": a (description, value) pair.
type UserDefinedText struct {
	Encoding    wire.TextEncoding
	Description string
	Value       string
}

func (f UserDefinedText) Identifier() string { return "TXXX" }

func (f UserDefinedText) EncodeBody(v Version) ([]byte, error) {
	if err := checkTextEncodingVersion(f.Encoding, v); err != nil {
		return nil, err
	}
	desc, err := wire.EncodeText(f.Description, f.Encoding)
	if err != nil {
		return nil, err
	}
	val, err := wire.EncodeText(f.Value, f.Encoding)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(f.Encoding)}
	out = append(out, desc...)
	out = append(out, f.Encoding.Terminator()...)
	out = append(out, val...)
	return out, nil
}

func (f UserDefinedText) SupportsVersion(v Version) error {
	return checkTextEncodingVersion(f.Encoding, v)
}

func decodeUserDefinedText(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	cur := wire.NewCursor(body[1:])
	desc, err := cur.TerminatedString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: description: %w", id, err)
	}
	val, err := cur.RestString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: value: %w", id, err)
	}
	return UserDefinedText{Encoding: enc, Description: desc, Value: val}, nil
}

func init() {
	RegisterKind("TXXX", decodeUserDefinedText)
	RegisterKind("TXX", decodeUserDefinedText)
}

// checkTextEncodingVersion implements the normative choice spec.md §9
// pins down: v2.2/v2.3 accept only ISO-8859-1 and UTF-16-with-BOM; v2.4
// accepts all four.
func checkTextEncodingVersion(enc wire.TextEncoding, v Version) error {
	if !enc.Valid() {
		return fmt.Errorf("unrecognised text encoding byte 0x%02x", byte(enc))
	}
	if v == V24 {
		return nil
	}
	if enc == wire.ISO88591 || enc == wire.UTF16 {
		return nil
	}
	return fmt.Errorf("text encoding %s is not supported in %s", enc.Name(), v)
}

// canonicalFor validates that id (already canonical/4-char) is
// representable at v: it must have a v2.2 counterpart when v == V22, and
// must not be one of the text-information identifiers v2.4 dropped when
// v == V24.
func canonicalFor(id string, v Version) (string, error) {
	switch v {
	case V22:
		short, err := wire.RemapV24ToV22(id)
		if err != nil {
			return "", fmt.Errorf("identifier %s has no ID3v2.2 form: %w", id, err)
		}
		return short, nil
	case V24:
		canon, err := wire.RemapV23ToV24(id)
		if err != nil {
			return "", fmt.Errorf("identifier %s: %w", id, err)
		}
		return canon, nil
	default:
		return id, nil
	}
}
