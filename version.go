package id3v2

import (
	"fmt"

	"github.com/riverglen/id3v2/frame"
	"github.com/riverglen/id3v2/internal/wire"
)

// versionDefaults is the static per-version default-options table
// spec.md §4.6 calls for: the text encoding and boolean flag defaults a
// caller gets when they don't specify them.
var versionDefaults = map[int]EncodeOptions{
	2: {ID3Version: 2, TextEncoding: wire.ISO88591},
	3: {ID3Version: 3, TextEncoding: wire.ISO88591},
	4: {ID3Version: 4, TextEncoding: wire.UTF8},
}

// DefaultOptions returns the static per-version defaults for v (2, 3 or 4).
func DefaultOptions(v int) EncodeOptions {
	return versionDefaults[v]
}

// checkGlobalOptionLegality implements the per-version legality rules in
// spec.md §4.6 step 2 for the options that are not carried per-frame.
func checkGlobalOptionLegality(o EncodeOptions, v frame.Version) []string {
	var reasons []string

	textEncLegal := o.TextEncoding == wire.ISO88591 || o.TextEncoding == wire.UTF8 ||
		o.TextEncoding == wire.UTF16 || o.TextEncoding == wire.UTF16BE
	if textEncLegal {
		switch v {
		case frame.V22:
			if o.TextEncoding == wire.UTF16 || o.TextEncoding == wire.UTF16BE {
				reasons = append(reasons, fmt.Sprintf("default text encoding %s is not supported in ID3v2.2", o.TextEncoding.Name()))
			}
		case frame.V23:
			if o.TextEncoding != wire.ISO88591 && o.TextEncoding != wire.UTF16 {
				reasons = append(reasons, fmt.Sprintf("default text encoding %s is not supported in ID3v2.3", o.TextEncoding.Name()))
			}
		}
	}

	switch v {
	case frame.V22:
		if o.Experimental {
			reasons = append(reasons, "experimental flag is not supported in ID3v2.2")
		}
		if o.TagIsAnUpdate {
			reasons = append(reasons, "tagIsAnUpdate is not supported in ID3v2.2")
		}
		if o.CRCData != nil {
			reasons = append(reasons, "crcData is not supported in ID3v2.2")
		}
		if o.TagRestrictions != nil {
			reasons = append(reasons, "tagRestrictions is not supported in ID3v2.2")
		}
	case frame.V23:
		if o.TagIsAnUpdate {
			reasons = append(reasons, "tagIsAnUpdate is only supported in ID3v2.4")
		}
		if o.TagRestrictions != nil {
			reasons = append(reasons, "tagRestrictions is only supported in ID3v2.4")
		}
	}

	return reasons
}

// frameReasons checks one frame's flags and content against v, returning
// every failure reason (there are at most two: flags and content).
func frameReasons(e Entry, v frame.Version) []string {
	var reasons []string
	if err := e.Flags.SupportsVersion(v); err != nil {
		reasons = append(reasons, fmt.Sprintf("%s: %s", e.Body.Identifier(), err))
	}
	if err := e.Body.SupportsVersion(v); err != nil {
		reasons = append(reasons, fmt.Sprintf("%s: %s", e.Body.Identifier(), err))
	}
	return reasons
}

// selectVersion implements spec.md §4.6: either verify a pinned version,
// or try v2.4, v2.3, v2.2 in order and return the first every frame and
// option supports.
func selectVersion(entries []Entry, o EncodeOptions) (frame.Version, error) {
	candidates := []frame.Version{frame.V24, frame.V23, frame.V22}
	if o.ID3Version != 0 {
		candidates = []frame.Version{frame.Version(o.ID3Version)}
	}

	var attempts []VersionAttempt
	for _, v := range candidates {
		var reasons []string
		reasons = append(reasons, checkGlobalOptionLegality(o, v)...)
		for _, e := range entries {
			reasons = append(reasons, frameReasons(e, v)...)
		}
		if len(reasons) == 0 {
			return v, nil
		}
		attempts = append(attempts, VersionAttempt{Version: int(v), Reasons: reasons})
	}

	return 0, &VersionError{Attempts: attempts}
}
