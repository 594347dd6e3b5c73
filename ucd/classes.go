package ucd

import "strconv"

// ClusterBreak is the grapheme cluster-break class of a code-point, a
// simplified variant of the UAX#29 Grapheme_Cluster_Break property.
//
// The ordinal values index the join-rule tables in package grapheme and are
// therefore frozen; reordering them silently corrupts the rules.
type ClusterBreak uint8

// All cluster-break classes.
const (
	BreakOther         ClusterBreak = iota // GB999
	BreakControl                           // GB3, GB4, GB5; includes CR and LF
	BreakExtend                            // GB9, GB9a; includes SpacingMark
	BreakRI                                // GB12, GB13
	BreakPrepend                           // GB9b
	BreakHangulL                           // GB6
	BreakHangulV                           // GB7
	BreakHangulT                           // GB8
	BreakHangulLV                          // GB6, GB7
	BreakHangulLVT                         // GB6, GB8
	BreakInCBLinker                        // GB9c
	BreakInCBConsonant                     // GB9c
	BreakExtPic                            // GB11
	BreakZWJ                               // GB9, GB11

	NumClusterBreaks
)

// Join-rule rows have 16 two-bit cells; all classes must fit.
var _ [16 - NumClusterBreaks]struct{}

var clusterBreakNames = [NumClusterBreaks]string{
	"Other", "Control", "Extend", "RI", "Prepend",
	"HangulL", "HangulV", "HangulT", "HangulLV", "HangulLVT",
	"InCBLinker", "InCBConsonant", "ExtPic", "ZWJ",
}

// Stringer for cluster-break classes.
func (cb ClusterBreak) String() string {
	if cb >= NumClusterBreaks {
		return "ClusterBreak(" + strconv.Itoa(int(cb)) + ")"
	}
	return clusterBreakNames[cb]
}

// CharacterWidth is the display width class of a code-point, derived from the
// UAX#11 East_Asian_Width property and the general category.
type CharacterWidth uint8

// All width classes. A terminal cell renderer resolves Ambiguous by context.
const (
	WidthZero CharacterWidth = iota
	WidthNarrow
	WidthWide
	WidthAmbiguous

	NumCharacterWidths
)

var characterWidthNames = [NumCharacterWidths]string{
	"Zero", "Narrow", "Wide", "Ambiguous",
}

// Stringer for width classes.
func (w CharacterWidth) String() string {
	if w >= NumCharacterWidths {
		return "CharacterWidth(" + strconv.Itoa(int(w)) + ")"
	}
	return characterWidthNames[w]
}

// PackedValue combines a cluster-break class and a width class in 8 bits.
// The low 4 bits hold the ClusterBreak ordinal, the top 2 bits the
// CharacterWidth ordinal. Bits 4 and 5 are always zero, so that width
// extraction is a single unsigned shift right by 6 in the emitted code.
type PackedValue uint8

// Pack combines a cluster-break class and a width class.
func Pack(cb ClusterBreak, w CharacterWidth) PackedValue {
	return PackedValue(uint8(cb) | uint8(w)<<6)
}

// Break returns the cluster-break class of a packed value.
func (v PackedValue) Break() ClusterBreak {
	return ClusterBreak(v & 0x0f)
}

// Width returns the width class of a packed value.
func (v PackedValue) Width() CharacterWidth {
	return CharacterWidth(v >> 6)
}

// NumCodepoints is the size of the Unicode codespace. The value array
// materializes an entry for every scalar value below it, surrogates included.
const NumCodepoints = 0x110000

// ValueArray maps every Unicode scalar value to its packed value. It is
// created by Extract and read-only from then on.
type ValueArray []PackedValue

// NewValueArray returns a value array of full codespace length with every
// entry set to the default (Other, Narrow).
func NewValueArray() ValueArray {
	values := make(ValueArray, NumCodepoints)
	def := Pack(BreakOther, WidthNarrow)
	for i := range values {
		values[i] = def
	}
	return values
}

// TrieInput widens the value array to the element type the trie builder
// operates on.
func (va ValueArray) TrieInput() []uint32 {
	widened := make([]uint32, len(va))
	for i, v := range va {
		widened[i] = uint32(v)
	}
	return widened
}
