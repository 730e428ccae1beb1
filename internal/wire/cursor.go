package wire

import (
	"encoding/binary"
	"fmt"
)

// Cursor is a forward-only reader over a frame body, grounded on
// mikkyang-id3-go's encodedbytes.Reader but extended with the
// encoding-aware terminator search ID3v2 string fields need.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps b for sequential reads. The returned Cursor does not copy
// b; callers must not mutate it while the Cursor is in use.
func NewCursor(b []byte) *Cursor {
	return &Cursor{data: b}
}

// Remaining returns the unread tail of the buffer.
func (c *Cursor) Remaining() []byte {
	return c.data[c.pos:]
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.data) - c.pos
}

// Byte reads a single byte.
func (c *Cursor) Byte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, fmt.Errorf("wire: unexpected end of frame body")
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// Bytes reads exactly n bytes.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, fmt.Errorf("wire: need %d bytes, only %d remain", n, c.Len())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Uint16BE reads a 2-byte big-endian unsigned integer.
func (c *Cursor) Uint16BE() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint24BE reads a 3-byte big-endian unsigned integer.
func (c *Cursor) Uint24BE() (uint32, error) {
	b, err := c.Bytes(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// Int32BE reads a 4-byte big-endian signed integer.
func (c *Cursor) Int32BE() (int32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// Uint32BE reads a 4-byte big-endian unsigned integer.
func (c *Cursor) Uint32BE() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// TerminatedString reads a string in encoding enc up to (and consuming)
// its terminator. If no terminator is found before the buffer ends, the
// remainder is returned as the string (terminator optional at end of
// body, per spec.md's trailing-string rule).
func (c *Cursor) TerminatedString(enc TextEncoding) (string, error) {
	value, rest, ok := SplitTerminated(c.Remaining(), enc)
	if !ok {
		value = c.Remaining()
		rest = nil
	}
	c.pos = len(c.data) - len(rest)
	return DecodeText(value, enc)
}

// RestString decodes every remaining byte as a string in encoding enc,
// consuming the whole remainder.
func (c *Cursor) RestString(enc TextEncoding) (string, error) {
	s, err := DecodeText(c.Remaining(), enc)
	c.pos = len(c.data)
	return s, err
}

// Rest returns and consumes every remaining byte.
func (c *Cursor) Rest() []byte {
	b := c.Remaining()
	c.pos = len(c.data)
	return b
}
