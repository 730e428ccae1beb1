package wire

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// TextEncoding identifies one of the four ID3v2 text encodings by the byte
// value that names it on the wire.
type TextEncoding byte

const (
	ISO88591 TextEncoding = 0x00
	UTF16    TextEncoding = 0x01 // with BOM, either byte order
	UTF16BE  TextEncoding = 0x02
	UTF8     TextEncoding = 0x03
)

// Name returns the encoding's ID3v2 display name.
func (e TextEncoding) Name() string {
	switch e {
	case ISO88591:
		return "ISO-8859-1"
	case UTF16:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16BE"
	case UTF8:
		return "UTF-8"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(e))
	}
}

// Valid reports whether e is one of the four defined encodings.
func (e TextEncoding) Valid() bool {
	switch e {
	case ISO88591, UTF16, UTF16BE, UTF8:
		return true
	default:
		return false
	}
}

// Terminator returns the byte sequence ending an in-band string in this
// encoding: one 0x00 for ISO-8859-1/UTF-8, two for the UTF-16 variants.
func (e TextEncoding) Terminator() []byte {
	if e == UTF16 || e == UTF16BE {
		return []byte{0x00, 0x00}
	}
	return []byte{0x00}
}

var (
	utf16LEWithBOM = unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	utf16BEPlain   = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// EncodeText renders s in the wire bytes of enc. No terminator is appended;
// callers append enc.Terminator() where the layout requires one.
func EncodeText(s string, enc TextEncoding) ([]byte, error) {
	switch enc {
	case ISO88591:
		return encodeLatin1(s)
	case UTF8:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("wire: %q is not valid UTF-8", s)
		}
		return []byte(s), nil
	case UTF16:
		// unicode.ExpectBOM encoders emit the little-endian BOM (FF FE)
		// themselves, so the output already starts with it.
		body, err := utf16LEWithBOM.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("wire: encode UTF-16: %w", err)
		}
		return body, nil
	case UTF16BE:
		body, err := utf16BEPlain.NewEncoder().Bytes([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("wire: encode UTF-16BE: %w", err)
		}
		return body, nil
	default:
		return nil, fmt.Errorf("wire: unrecognised text encoding byte 0x%02x", byte(enc))
	}
}

// DecodeText parses the wire bytes of a string (without its terminator,
// already stripped by the caller) in encoding enc.
func DecodeText(b []byte, enc TextEncoding) (string, error) {
	switch enc {
	case ISO88591:
		return decodeLatin1(b), nil
	case UTF8:
		if !utf8.Valid(b) {
			return "", fmt.Errorf("wire: invalid UTF-8 payload")
		}
		return string(b), nil
	case UTF16:
		out, err := utf16LEWithBOM.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("wire: decode UTF-16: %w", err)
		}
		return string(out), nil
	case UTF16BE:
		out, err := utf16BEPlain.NewDecoder().Bytes(b)
		if err != nil {
			return "", fmt.Errorf("wire: decode UTF-16BE: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("wire: unrecognised text encoding byte 0x%02x", byte(enc))
	}
}

func encodeLatin1(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("wire: rune %q is not representable in ISO-8859-1", r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

func decodeLatin1(b []byte) string {
	rs := make([]rune, len(b))
	for i, c := range b {
		rs[i] = rune(c)
	}
	return string(rs)
}

// SplitTerminated scans b for the terminator of enc (byte-wise, aligned to
// the encoding's code-unit width) and returns the bytes before it and the
// remainder after it. ok is false if no terminator is found.
func SplitTerminated(b []byte, enc TextEncoding) (value, rest []byte, ok bool) {
	width := len(enc.Terminator())
	for i := 0; i+width <= len(b); i += width {
		if width == 1 {
			if b[i] == 0x00 {
				return b[:i], b[i+1:], true
			}
			continue
		}
		if b[i] == 0x00 && b[i+1] == 0x00 {
			return b[:i], b[i+2:], true
		}
	}
	return nil, nil, false
}
