package frame

import "github.com/riverglen/id3v2/internal/wire"

// Comment is "COM"/"COMM", keyed by (language, description).
type Comment struct {
	Encoding    wire.TextEncoding
	Language    string
	Description string
	Text        string
}

func (f Comment) Identifier() string { return "COMM" }

func (f Comment) SupportsVersion(v Version) error {
	if err := checkLanguage(f.Language); err != nil {
		return err
	}
	return checkTextEncodingVersion(f.Encoding, v)
}

func (f Comment) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	return encodeLangDescText(f.Encoding, f.Language, f.Description, f.Text)
}

func decodeComment(id string, body []byte, v Version) (Body, error) {
	enc, lang, desc, text, err := decodeLangDescText(id, body)
	if err != nil {
		return nil, err
	}
	return Comment{Encoding: enc, Language: lang, Description: desc, Text: text}, nil
}

func init() {
	RegisterKind("COMM", decodeComment)
	RegisterKind("COM", decodeComment)
}
