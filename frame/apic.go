package frame

import (
	"fmt"
	"strings"

	"github.com/riverglen/id3v2/internal/wire"
)

// PictureType is the APIC picture-type byte (front cover, artist, etc).
type PictureType byte

// AttachedPicture is "PIC"/"APIC". MimeType is always stored in its full
// canonical form (e.g. "image/png"); the v2.2 3-character image-format
// code is derived from it on encode and restored to it on decode.
type AttachedPicture struct {
	Encoding    wire.TextEncoding
	MimeType    string
	PictureType PictureType
	Description string
	PictureData []byte
}

func (f AttachedPicture) Identifier() string { return "APIC" }

// v22ImageFormats maps the canonical mime type to v2.2's 3-char code and
// back; v2.2 APIC restricts mime to image/jpg (also accepted as the more
// common image/jpeg spelling) and image/png (spec.md §3).
var v22ImageFormats = map[string]string{
	"image/jpeg": "JPG",
	"image/jpg":  "JPG",
	"image/png":  "PNG",
}

var v22ImageFormatsReverse = map[string]string{
	"JPG": "image/jpeg",
	"PNG": "image/png",
}

func (f AttachedPicture) SupportsVersion(v Version) error {
	if err := checkTextEncodingVersion(f.Encoding, v); err != nil {
		return err
	}
	if v == V22 {
		if _, ok := v22ImageFormats[strings.ToLower(f.MimeType)]; !ok {
			return fmt.Errorf("attached picture: mime type %q is not representable in ID3v2.2 (only image/jpeg, image/png)", f.MimeType)
		}
	}
	return nil
}

func (f AttachedPicture) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	desc, err := wire.EncodeText(f.Description, f.Encoding)
	if err != nil {
		return nil, err
	}

	out := []byte{byte(f.Encoding)}
	if v == V22 {
		out = append(out, []byte(v22ImageFormats[strings.ToLower(f.MimeType)])...)
	} else {
		mime, err := wire.EncodeText(f.MimeType, wire.ISO88591)
		if err != nil {
			return nil, err
		}
		out = append(out, mime...)
		out = append(out, 0x00)
	}
	out = append(out, byte(f.PictureType))
	out = append(out, desc...)
	out = append(out, f.Encoding.Terminator()...)
	out = append(out, f.PictureData...)
	return out, nil
}

func decodeAPIC(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}

	cur := wire.NewCursor(body[1:])
	var mime string
	if v == V22 {
		code, err := cur.Bytes(3)
		if err != nil {
			return nil, fmt.Errorf("frame %s: image format: %w", id, err)
		}
		full, ok := v22ImageFormatsReverse[strings.ToUpper(string(code))]
		if !ok {
			return nil, fmt.Errorf("frame %s: unrecognised ID3v2.2 image format %q", id, code)
		}
		mime = full
	} else {
		raw, err := cur.TerminatedString(wire.ISO88591)
		if err != nil {
			return nil, fmt.Errorf("frame %s: mime type: %w", id, err)
		}
		mime = raw
	}

	pictureType, err := cur.Byte()
	if err != nil {
		return nil, fmt.Errorf("frame %s: picture type: %w", id, err)
	}
	desc, err := cur.TerminatedString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: description: %w", id, err)
	}
	data := cur.Rest()

	return AttachedPicture{
		Encoding: enc, MimeType: mime, PictureType: PictureType(pictureType),
		Description: desc, PictureData: data,
	}, nil
}

func init() {
	RegisterKind("APIC", decodeAPIC)
	RegisterKind("PIC", decodeAPIC)
}
