package id3v2

import "github.com/riverglen/id3v2/internal/wire"

// TagRestrictions is the v2.4 extended-header tag-restrictions
// sub-section (spec.md §4.2 step 4).
type TagRestrictions struct {
	TagSize       byte // 0-3
	TextEncoding  byte // 0-1
	TextFieldSize byte // 0-3
	ImageEncoding byte // 0-1
	ImageSize     byte // 0-3
}

// Pack encodes the five restriction fields into the single packed byte
// the wire format uses.
func (r TagRestrictions) Pack() byte {
	return (r.TagSize&0x3)<<6 | (r.TextEncoding&0x1)<<5 | (r.TextFieldSize&0x3)<<3 |
		(r.ImageEncoding&0x1)<<2 | (r.ImageSize & 0x3)
}

// UnpackTagRestrictions inverts TagRestrictions.Pack.
func UnpackTagRestrictions(b byte) TagRestrictions {
	return TagRestrictions{
		TagSize:       (b >> 6) & 0x3,
		TextEncoding:  (b >> 5) & 0x1,
		TextFieldSize: (b >> 3) & 0x3,
		ImageEncoding: (b >> 2) & 0x1,
		ImageSize:     b & 0x3,
	}
}

// EncodeOptions configures Encode, matching the recognized fields of
// spec.md §6.
type EncodeOptions struct {
	// ID3Version pins the target major version (2, 3 or 4). Zero means
	// "pick the highest version every frame and option supports".
	ID3Version int

	// TextEncoding is the default text encoding new frames are assumed to
	// use when the version-selection legality check considers the tag as
	// a whole; it does not override any frame's own Encoding field.
	TextEncoding wire.TextEncoding

	// Unsynchronisation requests the unsynchronisation transform be
	// applied to the emitted frame stream.
	Unsynchronisation bool

	Experimental  bool
	TagIsAnUpdate bool

	// CRCData, when non-nil, requests an extended header carrying this
	// CRC-32 value.
	CRCData *uint32

	// TagRestrictions, when non-nil, requests a v2.4 extended header
	// tag-restrictions sub-section.
	TagRestrictions *TagRestrictions
}

// hasExtendedHeaderData reports whether any extended-header-only option
// was supplied.
func (o EncodeOptions) hasExtendedHeaderData() bool {
	return o.TagIsAnUpdate || o.CRCData != nil || o.TagRestrictions != nil
}
