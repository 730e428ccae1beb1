// Package id3v2 implements a bidirectional codec for ID3v2.2, ID3v2.3
// and ID3v2.4 metadata tags, grounded on xonyagar-id3's per-version
// packages but generalised into one version-agnostic frame model.
package id3v2

import (
	"fmt"

	"github.com/riverglen/id3v2/frame"
	"github.com/riverglen/id3v2/internal/wire"
)

// Entry pairs one decoded frame body with the flags it carried on the
// wire (or the flags it should be encoded with).
type Entry struct {
	Flags frame.Flags
	Body  frame.Body
}

// Tag is a fully decoded ID3v2 tag: its effective version, any
// extended-header data it carried, and its ordered frame list.
type Tag struct {
	Version         int
	Unsynchronised  bool
	Experimental    bool
	TagIsAnUpdate   bool
	CRCData         *uint32
	PaddingSize     uint32
	TagRestrictions *TagRestrictions
	Entries         []Entry

	// EncodedSize is the number of bytes the tag occupied on the wire
	// (base header plus declared tag size), i.e. the offset at which the
	// audio payload following the tag begins.
	EncodedSize int
}

const baseHeaderSize = 10

// headerFlagBits gives the bit position (0 = MSB) of each base-header
// flag for v2.2 vs v2.3/v2.4, per spec.md §4.2 step 1.
type headerFlagBits struct {
	unsynchronisation, extendedHeader, experimental, footer int
}

func headerBitsFor(major int) headerFlagBits {
	if major == 2 {
		return headerFlagBits{unsynchronisation: 0, extendedHeader: -1, experimental: -1, footer: -1}
	}
	return headerFlagBits{unsynchronisation: 0, extendedHeader: 1, experimental: 2, footer: 3}
}

// Decode parses an ID3v2 tag from the start of buf, per spec.md §4.
// buf need not be trimmed to the tag's declared size; only the bytes
// the header declares are consumed.
func Decode(buf []byte) (*Tag, error) {
	if len(buf) < baseHeaderSize || string(buf[0:3]) != "ID3" {
		return nil, ErrNoTag
	}
	major := int(buf[3])
	// revision byte buf[4] is ignored, per spec.md §4.2.
	if major != 2 && major != 3 && major != 4 {
		return nil, ErrUnknownVersion
	}
	v := frame.Version(major)

	tagSize, err := wire.DecodeSynchsafeSlice(buf[6:10])
	if err != nil {
		return nil, fmt.Errorf("id3v2: tag size: %w", err)
	}
	if len(buf) < baseHeaderSize+int(tagSize) {
		return nil, fmt.Errorf("id3v2: declared tag size %d exceeds available data", tagSize)
	}
	body := buf[baseHeaderSize : baseHeaderSize+int(tagSize)]

	bits := headerBitsFor(major)
	flagByte := []byte{buf[5]}
	unsync := wire.UnpackFlag(flagByte, bits.unsynchronisation)
	hasExtHeader := bits.extendedHeader >= 0 && wire.UnpackFlag(flagByte, bits.extendedHeader)
	experimental := bits.experimental >= 0 && wire.UnpackFlag(flagByte, bits.experimental)
	hasFooter := bits.footer >= 0 && wire.UnpackFlag(flagByte, bits.footer)

	if major == 2 && flagByte[0]&0x40 != 0 {
		return nil, ErrCompressionUnsupported
	}

	if unsync {
		body = wire.ReverseUnsynchronise(body)
	}

	tag := &Tag{Version: major, Unsynchronised: unsync, Experimental: experimental, EncodedSize: baseHeaderSize + int(tagSize)}
	_ = hasFooter // footer is never written by this codec; its presence bit is read-only informational

	if hasExtHeader {
		eh, n, err := decodeExtendedHeader(body, v)
		if err != nil {
			return nil, err
		}
		tag.TagIsAnUpdate = eh.TagIsAnUpdate
		tag.CRCData = eh.CRCData
		tag.PaddingSize = eh.PaddingSize
		tag.TagRestrictions = eh.TagRestrictions
		body = body[n:]
	}

	entries, err := decodeFrames(body, v)
	if err != nil {
		return nil, err
	}
	tag.Entries = entries
	return tag, nil
}

// decodeFrames walks the frame stream until it runs out of frames or
// hits padding (a zero byte where an identifier is expected), per
// spec.md §4.4.
func decodeFrames(body []byte, v frame.Version) ([]Entry, error) {
	var entries []Entry
	base := frame.HeaderSize(v)
	for len(body) >= base {
		if body[0] == 0x00 {
			break // padding begins
		}
		h, err := frame.DecodeHeader(body, v)
		if err != nil {
			return nil, err
		}
		if h.TotalHeader+h.BodySize > len(body) {
			return nil, fmt.Errorf("frame %s: declared size exceeds remaining tag data", h.RawID)
		}
		raw := body[h.TotalHeader : h.TotalHeader+h.BodySize]
		fb, err := frame.Decode(h.ID, raw, v)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", h.RawID, err)
		}
		entries = append(entries, Entry{Flags: h.Flags, Body: fb})
		body = body[h.TotalHeader+h.BodySize:]
	}
	return entries, nil
}

// Encode renders entries as a complete ID3v2 tag using o, selecting (or
// verifying) the target version per spec.md §4.6.
func Encode(entries []Entry, o EncodeOptions) ([]byte, error) {
	v, err := selectVersion(entries, o)
	if err != nil {
		return nil, err
	}

	var body []byte
	if v != frame.V22 && o.hasExtendedHeaderData() {
		eh := extendedHeader{TagIsAnUpdate: o.TagIsAnUpdate, CRCData: o.CRCData, TagRestrictions: o.TagRestrictions}
		var ehBytes []byte
		if v == frame.V24 {
			ehBytes, err = encodeExtendedHeaderV24(eh)
			if err != nil {
				return nil, err
			}
		} else {
			ehBytes = encodeExtendedHeaderV23(eh)
		}
		body = append(body, ehBytes...)
	}

	for _, e := range entries {
		bodyBytes, err := e.Body.EncodeBody(v)
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", e.Body.Identifier(), err)
		}
		hdr, err := frame.EncodeHeader(e.Body.Identifier(), len(bodyBytes), e.Flags, v)
		if err != nil {
			return nil, err
		}
		body = append(body, hdr...)
		body = append(body, bodyBytes...)
	}

	if o.Unsynchronisation {
		body = wire.Unsynchronise(body)
	}

	if len(body) > wire.MaxSynchsafe {
		return nil, fmt.Errorf("id3v2: encoded tag size %d exceeds synchsafe maximum", len(body))
	}
	size, err := wire.EncodeSynchsafe(uint32(len(body)))
	if err != nil {
		return nil, fmt.Errorf("id3v2: %w", err)
	}

	bits := headerBitsFor(int(v))
	flagBools := make([]bool, 8)
	flagBools[bits.unsynchronisation] = o.Unsynchronisation
	if bits.extendedHeader >= 0 {
		flagBools[bits.extendedHeader] = v != frame.V22 && o.hasExtendedHeaderData()
	}
	if bits.experimental >= 0 {
		flagBools[bits.experimental] = o.Experimental
	}

	out := []byte("ID3")
	out = append(out, byte(v), 0x00)
	out = append(out, wire.PackFlags(1, flagBools...)...)
	out = append(out, size[:]...)
	out = append(out, body...)
	return out, nil
}
