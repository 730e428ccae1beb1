package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// UnsynchronisedLyrics is "ULT"/"USLT": shares its wire layout with Comment.
type UnsynchronisedLyrics struct {
	Encoding    wire.TextEncoding
	Language    string
	Description string
	Text        string
}

func (f UnsynchronisedLyrics) Identifier() string { return "USLT" }

func (f UnsynchronisedLyrics) SupportsVersion(v Version) error {
	if err := checkLanguage(f.Language); err != nil {
		return err
	}
	return checkTextEncodingVersion(f.Encoding, v)
}

func (f UnsynchronisedLyrics) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	return encodeLangDescText(f.Encoding, f.Language, f.Description, f.Text)
}

func decodeUSLT(id string, body []byte, v Version) (Body, error) {
	enc, lang, desc, text, err := decodeLangDescText(id, body)
	if err != nil {
		return nil, err
	}
	return UnsynchronisedLyrics{Encoding: enc, Language: lang, Description: desc, Text: text}, nil
}

func init() {
	RegisterKind("USLT", decodeUSLT)
	RegisterKind("ULT", decodeUSLT)
}

// SyncedLyricLine is one (text, time) entry in a synchronised lyrics frame.
type SyncedLyricLine struct {
	Text string
	Time int32
}

// SynchronisedLyrics is "SLT"/"SYLT".
type SynchronisedLyrics struct {
	Language    string
	Encoding    wire.TextEncoding
	Unit        TimestampUnit
	ContentType byte
	Description string
	Lines       []SyncedLyricLine
}

func (f SynchronisedLyrics) Identifier() string { return "SYLT" }

func (f SynchronisedLyrics) SupportsVersion(v Version) error {
	if err := checkLanguage(f.Language); err != nil {
		return err
	}
	if !f.Unit.valid() {
		return fmt.Errorf("synchronised lyrics: invalid timestamp unit %d", f.Unit)
	}
	return checkTextEncodingVersion(f.Encoding, v)
}

func (f SynchronisedLyrics) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	desc, err := wire.EncodeText(f.Description, f.Encoding)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(f.Encoding)}
	out = append(out, []byte(f.Language)...)
	out = append(out, byte(f.Unit), f.ContentType)
	out = append(out, desc...)
	out = append(out, f.Encoding.Terminator()...)
	for _, line := range f.Lines {
		text, err := wire.EncodeText(line.Text, f.Encoding)
		if err != nil {
			return nil, err
		}
		out = append(out, text...)
		out = append(out, f.Encoding.Terminator()...)
		out = wire.AppendInt32BE(out, line.Time)
	}
	return out, nil
}

func decodeSYLT(id string, body []byte, v Version) (Body, error) {
	if len(body) < 6 {
		return nil, fmt.Errorf("frame %s: body too short", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	lang := string(body[1:4])
	unit := TimestampUnit(body[4])
	contentType := body[5]

	cur := wire.NewCursor(body[6:])
	desc, err := cur.TerminatedString(enc)
	if err != nil {
		return nil, fmt.Errorf("frame %s: description: %w", id, err)
	}

	var lines []SyncedLyricLine
	for cur.Len() > 0 {
		text, err := cur.TerminatedString(enc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: line text: %w", id, err)
		}
		t, err := cur.Int32BE()
		if err != nil {
			return nil, fmt.Errorf("frame %s: line time: %w", id, err)
		}
		lines = append(lines, SyncedLyricLine{Text: text, Time: t})
	}

	return SynchronisedLyrics{
		Language: lang, Encoding: enc, Unit: unit, ContentType: contentType,
		Description: desc, Lines: lines,
	}, nil
}

func init() {
	RegisterKind("SYLT", decodeSYLT)
	RegisterKind("SLT", decodeSYLT)
}

func checkLanguage(lang string) error {
	if len(lang) != 3 {
		return fmt.Errorf("language code %q must be exactly 3 bytes", lang)
	}
	return nil
}

// encodeLangDescText renders the shared USLT/COMM wire layout:
// <encoding><lang(3)><description><term><text>.
func encodeLangDescText(enc wire.TextEncoding, lang, desc, text string) ([]byte, error) {
	d, err := wire.EncodeText(desc, enc)
	if err != nil {
		return nil, err
	}
	t, err := wire.EncodeText(text, enc)
	if err != nil {
		return nil, err
	}
	out := []byte{byte(enc)}
	out = append(out, []byte(lang)...)
	out = append(out, d...)
	out = append(out, enc.Terminator()...)
	out = append(out, t...)
	return out, nil
}

// decodeLangDescText parses the shared USLT/COMM wire layout.
func decodeLangDescText(id string, body []byte) (enc wire.TextEncoding, lang, desc, text string, err error) {
	if len(body) < 4 {
		return 0, "", "", "", fmt.Errorf("frame %s: body too short", id)
	}
	enc = wire.TextEncoding(body[0])
	if !enc.Valid() {
		return 0, "", "", "", fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	lang = string(body[1:4])
	cur := wire.NewCursor(body[4:])
	desc, err = cur.TerminatedString(enc)
	if err != nil {
		return 0, "", "", "", fmt.Errorf("frame %s: description: %w", id, err)
	}
	text, err = cur.RestString(enc)
	if err != nil {
		return 0, "", "", "", fmt.Errorf("frame %s: text: %w", id, err)
	}
	return enc, lang, desc, text, nil
}
