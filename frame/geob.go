package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// GeneralEncapsulatedObject is "GEO"/"GEOB".
type GeneralEncapsulatedObject struct {
	Encoding    wire.TextEncoding
	MimeType    string
	Filename    string
	Description string
	ObjectData  []byte
}

func (f GeneralEncapsulatedObject) Identifier() string { return "GEOB" }

func (f GeneralEncapsulatedObject) SupportsVersion(v Version) error {
	return checkTextEncodingVersion(f.Encoding, v)
}

func (f GeneralEncapsulatedObject) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	mime, err := wire.EncodeText(f.MimeType, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	filename, err := wire.EncodeText(f.Filename, f.Encoding)
	if err != nil {
		return nil, err
	}
	desc, err := wire.EncodeText(f.Description, f.Encoding)
	if err != nil {
		return nil, err
	}

	out := []byte{byte(f.Encoding)}
	out = append(out, mime...)
	out = append(out, 0x00)
	out = append(out, filename...)
	out = append(out, f.Encoding.Terminator()...)
	out = append(out, desc...)
	out = append(out, f.Encoding.Terminator()...)
	out = append(out, f.ObjectData...)
	return out, nil
}

func decodeGEOB(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	cur := wire.NewCursor(body[1:])
	mime, err := cur.TerminatedString(wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: mime type: %w", id, err)
	}
	filename, err := cur.TerminatedString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: filename: %w", id, err)
	}
	desc, err := cur.TerminatedString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: description: %w", id, err)
	}
	data := cur.Rest()

	return GeneralEncapsulatedObject{
		Encoding: enc, MimeType: mime, Filename: filename,
		Description: desc, ObjectData: data,
	}, nil
}

func init() {
	RegisterKind("GEOB", decodeGEOB)
	RegisterKind("GEO", decodeGEOB)
}
