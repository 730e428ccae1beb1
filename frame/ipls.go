package frame

import (
	"fmt"

	"github.com/riverglen/id3v2/internal/wire"
)

// InvolvedPerson is one (role, name) pair within an involved-people list.
type InvolvedPerson struct {
	Role string
	Name string
}

// InvolvedPeopleList is "IPL"/"IPLS", legal only in v2.2/v2.3.
type InvolvedPeopleList struct {
	Encoding wire.TextEncoding
	People   []InvolvedPerson
}

func (f InvolvedPeopleList) Identifier() string { return "IPLS" }

func (f InvolvedPeopleList) EncodeBody(v Version) ([]byte, error) {
	if err := f.SupportsVersion(v); err != nil {
		return nil, err
	}
	out := []byte{byte(f.Encoding)}
	for _, p := range f.People {
		role, err := wire.EncodeText(p.Role, f.Encoding)
		if err != nil {
			return nil, err
		}
		name, err := wire.EncodeText(p.Name, f.Encoding)
		if err != nil {
			return nil, err
		}
		out = append(out, role...)
		out = append(out, f.Encoding.Terminator()...)
		out = append(out, name...)
		out = append(out, f.Encoding.Terminator()...)
	}
	return out, nil
}

func (f InvolvedPeopleList) SupportsVersion(v Version) error {
	if v == V24 {
		return fmt.Errorf("involved people list frames are not supported in ID3v2.4 (use TIPL/TMCL text frames)")
	}
	return checkTextEncodingVersion(f.Encoding, v)
}

func decodeIPLS(id string, body []byte, v Version) (Body, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("frame %s: empty body", id)
	}
	enc := wire.TextEncoding(body[0])
	if !enc.Valid() {
		return nil, fmt.Errorf("frame %s: unrecognised text encoding byte 0x%02x", id, body[0])
	}
	cur := wire.NewCursor(body[1:])
	var people []InvolvedPerson
	for cur.Len() > 0 {
		role, err := cur.TerminatedString(enc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: role: %w", id, err)
		}
		if cur.Len() == 0 {
			break
		}
		name, err := cur.TerminatedString(enc)
		if err != nil {
			return nil, fmt.Errorf("frame %s: name: %w", id, err)
		}
		people = append(people, InvolvedPerson{Role: role, Name: name})
	}
	return InvolvedPeopleList{Encoding: enc, People: people}, nil
}

func init() {
	RegisterKind("IPLS", decodeIPLS)
	RegisterKind("IPL", decodeIPLS)
}
