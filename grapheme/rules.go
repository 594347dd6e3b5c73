package grapheme

import (
	"fmt"

	"github.com/npillmayer/ucdgen/ucd"
)

// Ω is what UAX#29 writes as "÷": break here. It occupies both bits of a
// transition cell, leaving 0b10 unused.
const Ω uint8 = 0b11

// JoinRules are the transition tables of the join state machine, indexed as
// JoinRules[state][lead][trail] with cluster-break ordinals for lead and
// trail. Cells hold the next state: 0 or 1 to continue the cluster, Ω to
// break before the trailing codepoint.
//
// Table 0 is the base table. Table 1 is entered after a regional-indicator
// pair has joined; it is a copy of the base table with further RI joins
// forbidden, which yields the "pair RIs, then break" approximation of
// GB12/GB13.
//
// Trailing classes run in ordinal order: Other, Control, Extend, RI,
// Prepend, HangulL, HangulV, HangulT, HangulLV, HangulLVT, InCBLinker,
// InCBConsonant, ExtPic, ZWJ.
var JoinRules = [][][]uint8{
	{
		/* Other         */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* Control       */ {Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω},
		/* Extend        */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* RI            */ {Ω, Ω, 0, 1, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* Prepend       */ {0, Ω, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		/* HangulL       */ {Ω, Ω, 0, Ω, Ω, 0, 0, Ω, 0, 0, 0, Ω, Ω, 0},
		/* HangulV       */ {Ω, Ω, 0, Ω, Ω, Ω, 0, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulT       */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulLV      */ {Ω, Ω, 0, Ω, Ω, Ω, 0, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulLVT     */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* InCBLinker    */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, 0, Ω, 0},
		/* InCBConsonant */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* ExtPic        */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* ZWJ           */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, 0, 0},
	},
	{
		/* Other         */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* Control       */ {Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω, Ω},
		/* Extend        */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* RI            */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* Prepend       */ {0, Ω, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		/* HangulL       */ {Ω, Ω, 0, Ω, Ω, 0, 0, Ω, 0, 0, 0, Ω, Ω, 0},
		/* HangulV       */ {Ω, Ω, 0, Ω, Ω, Ω, 0, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulT       */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulLV      */ {Ω, Ω, 0, Ω, Ω, Ω, 0, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* HangulLVT     */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0, Ω, Ω, 0},
		/* InCBLinker    */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, 0, Ω, 0},
		/* InCBConsonant */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* ExtPic        */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, Ω, 0},
		/* ZWJ           */ {Ω, Ω, 0, Ω, Ω, Ω, Ω, Ω, Ω, Ω, 0, Ω, 0, 0},
	},
}

// The tables index lead rows by cluster-break ordinal; a class count drift
// would corrupt the rules silently, so it panics instead.
func init() {
	for state, table := range JoinRules {
		if len(table) != int(ucd.NumClusterBreaks) {
			panic(fmt.Sprintf("join rules table %d has %d rows, want %d", state, len(table), ucd.NumClusterBreaks))
		}
	}
}

// PackRules packs the transition tables into one 32-bit word per lead class,
// two bits per trailing class, padded to 16 entries per state. Rows longer
// than 16 cells or cells above Ω cannot be represented; both are developer
// errors in the tables and rejected with a diagnostic.
func PackRules(rules [][][]uint8) ([][]uint32, error) {
	packed := make([][]uint32, len(rules))
	for i := range packed {
		packed[i] = make([]uint32, 16)
	}
	for state, table := range rules {
		for lead, row := range table {
			if len(row) > 16 {
				return nil, fmt.Errorf("rules[%d][%d]: cannot pack %d cells into 32 bits", state, lead, len(row))
			}
			var word uint32
			for trail, next := range row {
				if next > Ω {
					return nil, fmt.Errorf("rules[%d][%d][%d]: cannot pack state %d into 2 bits", state, lead, trail, next)
				}
				word |= uint32(next) << (trail * 2)
			}
			packed[state][lead] = word
		}
	}
	return packed, nil
}

// RulesSize is the byte size of the packed rules: 16 32-bit words per state.
func RulesSize(packed [][]uint32) int {
	return len(packed) * 16 * 4
}
