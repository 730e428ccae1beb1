package id3v2

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riverglen/id3v2/internal/wire"
)

// ErrNoTag is returned when the buffer does not begin with the "ID3"
// signature.
var ErrNoTag = errors.New("id3v2: no ID3v2 tag signature found")

// ErrUnknownVersion is returned when the major version byte is not 2, 3
// or 4.
var ErrUnknownVersion = errors.New("id3v2: unknown ID3v2 major version")

// ErrCompressionUnsupported is returned when a v2.2 tag declares the
// compression flag; decoding the frame stream under compression is not
// implemented (spec.md §4.2 step 2).
var ErrCompressionUnsupported = errors.New("id3v2: ID3v2.2 whole-tag compression is not supported")

// VersionError aggregates every reason a set of frames and options could
// not be encoded at one or more candidate versions, per spec.md §6/§7's
// requirement that version-selection failures be reported as a single
// error with per-frame/per-version reasons.
type VersionError struct {
	// Attempts maps each version that was tried to the list of reasons it
	// failed, in the order versions were attempted.
	Attempts []VersionAttempt
}

// VersionAttempt is one candidate version's rejection reasons.
type VersionAttempt struct {
	Version int
	Reasons []string
}

func (e *VersionError) Error() string {
	var b strings.Builder
	b.WriteString("id3v2: no candidate ID3 version could encode this frame set:")
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "\n  v2.%d:", a.Version)
		for _, r := range a.Reasons {
			fmt.Fprintf(&b, "\n    - %s", r)
		}
	}
	return b.String()
}

// IdentifierRemapError is returned when an identifier remap between
// ID3v2.2 and ID3v2.3/4 forms has no registered mapping (spec.md §7,
// "programmer error"). It is produced by internal/wire's remap functions
// and propagated up through frame.Canonical4/EncodeHeader; aliased here so
// callers can name it without reaching into the internal package.
type IdentifierRemapError = wire.IdentifierRemapError
