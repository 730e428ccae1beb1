package wire

import "fmt"

// idPairs is the fixed v2.2 (3-char) <-> v2.3/v2.4 (4-char) identifier
// table, grounded on the per-version DeclaredFrames tables the teacher
// keeps in its v22/v23/v24 packages.
var idPairs = [][2]string{
	{"BUF", "RBUF"}, {"CNT", "PCNT"}, {"COM", "COMM"}, {"CRA", "AENC"},
	{"ETC", "ETCO"}, {"EQU", "EQUA"}, {"GEO", "GEOB"},
	{"IPL", "IPLS"}, {"LNK", "LINK"}, {"MCI", "MCDI"}, {"MLL", "MLLT"},
	{"PIC", "APIC"}, {"POP", "POPM"}, {"REV", "RVRB"}, {"RVA", "RVAD"},
	{"SLT", "SYLT"}, {"STC", "SYTC"}, {"TAL", "TALB"}, {"TBP", "TBPM"},
	{"TCM", "TCOM"}, {"TCO", "TCON"}, {"TCR", "TCOP"}, {"TDA", "TDAT"},
	{"TDY", "TDLY"}, {"TEN", "TENC"}, {"TFT", "TFLT"}, {"TIM", "TIME"},
	{"TKE", "TKEY"}, {"TLA", "TLAN"}, {"TLE", "TLEN"}, {"TMT", "TMED"},
	{"TOA", "TOPE"}, {"TOF", "TOFN"}, {"TOL", "TOLY"}, {"TOR", "TORY"},
	{"TOT", "TOAL"}, {"TP1", "TPE1"}, {"TP2", "TPE2"}, {"TP3", "TPE3"},
	{"TP4", "TPE4"}, {"TPA", "TPOS"}, {"TPB", "TPUB"}, {"TRC", "TSRC"},
	{"TRD", "TRDA"}, {"TRK", "TRCK"}, {"TSI", "TSIZ"}, {"TSS", "TSSE"},
	{"TT1", "TIT1"}, {"TT2", "TIT2"}, {"TT3", "TIT3"}, {"TXT", "TEXT"},
	{"TXX", "TXXX"}, {"TYE", "TYER"}, {"UFI", "UFID"}, {"ULT", "USLT"},
	{"WAF", "WOAF"}, {"WAR", "WOAR"}, {"WAS", "WOAS"}, {"WCM", "WCOM"},
	{"WCP", "WCOP"}, {"WPB", "WPUB"}, {"WXX", "WXXX"},
}

// droppedInV24 lists v2.3 text-information identifiers removed in v2.4
// (their semantics folded into TDRC/TDOR/TDRL).
var droppedInV24 = map[string]bool{
	"TDAT": true, "TIME": true, "TORY": true,
	"TRDA": true, "TSIZ": true, "TYER": true,
}

// IdentifierRemapError is returned when a v2.2<->v2.3/4 identifier remap
// has no registered mapping (spec.md §7, "programmer error": every
// identifier this codec itself produces is expected to have one).
type IdentifierRemapError struct {
	Identifier string
}

func (e *IdentifierRemapError) Error() string {
	return fmt.Sprintf("wire: no identifier mapping for %q", e.Identifier)
}

// RemapV22ToV24 maps a v2.2 3-character identifier to its v2.3/v2.4
// 4-character form. Fails if no mapping is registered.
func RemapV22ToV24(id string) (string, error) {
	for _, p := range idPairs {
		if p[0] == id {
			return p[1], nil
		}
	}
	return "", &IdentifierRemapError{Identifier: id}
}

// RemapV24ToV22 is the inverse of RemapV22ToV24.
func RemapV24ToV22(id string) (string, error) {
	for _, p := range idPairs {
		if p[1] == id {
			return p[0], nil
		}
	}
	return "", &IdentifierRemapError{Identifier: id}
}

// RemapV23ToV24 is the identity except for the handful of text-information
// identifiers v2.4 dropped.
func RemapV23ToV24(id string) (string, error) {
	if droppedInV24[id] {
		return "", fmt.Errorf("wire: identifier %q does not exist in ID3v2.4", id)
	}
	return id, nil
}

// RemapV24ToV23 is the identity; every v2.4 identifier this package
// produces also exists in v2.3 (the dropped set only goes the other way).
func RemapV24ToV23(id string) (string, error) {
	return id, nil
}

// IdentifierWidth returns the byte width of frame identifiers at the given
// major version (3 for v2.2, 4 for v2.3/v2.4).
func IdentifierWidth(majorVersion int) int {
	if majorVersion == 2 {
		return 3
	}
	return 4
}
