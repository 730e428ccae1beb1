package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// URLLink is a single-URL "W???" frame (every identifier starting with W
// except WXX/WXXX). The value is always ISO-8859-1 and untermined: the
// frame size bounds it.
type URLLink struct {
	ID  string
	URL string
}

func (f URLLink) Identifier() string { return f.ID }

func (f URLLink) EncodeBody(v Version) ([]byte, error) {
	return wire.EncodeText(f.URL, wire.ISO88591)
}

func (f URLLink) SupportsVersion(v Version) error {
	_, err := canonicalFor(f.ID, v)
	return err
}

func decodeURLLink(id string, body []byte, v Version) (Body, error) {
	url, err := wire.DecodeText(body, wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", id, err)
	}
	return URLLink{ID: id, URL: url}, nil
}

// UserDefinedURL is "WXX"/"WXXX": a (description, url) pair. The
// description uses the declared encoding; the URL itself is always
// ISO-8859-1.
type UserDefinedURL struct {
	Encoding    wire.TextEncoding
	Description string
	URL         string
}

func (f UserDefinedURL) Identifier() string { return "WXXX" }

func (f UserDefinedURL) EncodeBody(v Version) ([]byte, error) {
	if err := checkTextEncodingVersion(f.Encoding, v); err != nil {
		return nil, err
	}
	desc, err := wire.EncodeText(f.Description, f.Encoding)
	if err != nil {
		return nil, err
	}
	url, err := wire.EncodeText(f.URL, wire.ISO88591)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(f.Encoding)}
	out = append(out, desc...)
	out = append(out, f.Encoding.Terminator()...)
	out = append(out, url...)
	return out, nil
}

func (f UserDefinedURL) SupportsVersion(v Version) error {
	return checkTextEncodingVersion(f.Encoding, v)
}

func decodeUserDefinedURL(id string, body []byte, v Version) (Body, error) {
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
	url, err := cur.RestString(wire.ISO88591)
	if err != nil {
		return nil, fmt.Errorf("frame %s: url: %w", id, err)
	}
	return UserDefinedURL{Encoding: enc, Description: desc, URL: url}, nil
}

func init() {
	RegisterKind("WXXX", decodeUserDefinedURL)
	RegisterKind("WXX", decodeUserDefinedURL)
}
