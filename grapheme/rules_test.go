package grapheme_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ucdgen/grapheme"
	"github.com/npillmayer/ucdgen/ucd"
)

func packedRules(t *testing.T) [][]uint32 {
	t.Helper()
	packed, err := grapheme.PackRules(grapheme.JoinRules)
	require.NoError(t, err)
	return packed
}

func TestPackRulesRoundTrip(t *testing.T) {
	packed := packedRules(t)
	for state, table := range grapheme.JoinRules {
		for lead, row := range table {
			for trail, want := range row {
				got := uint8((packed[state][lead] >> (trail * 2)) & 3)
				if got != want {
					t.Fatalf("rules[%d][%s][%s] = %d after packing, want %d",
						state, ucd.ClusterBreak(lead), ucd.ClusterBreak(trail), got, want)
				}
			}
		}
	}
}

func TestPackRulesDimensions(t *testing.T) {
	packed := packedRules(t)
	require.Len(t, packed, 2)
	for _, table := range packed {
		require.Len(t, table, 16)
	}
	assert.Equal(t, 128, grapheme.RulesSize(packed))
}

func TestPackRulesRejectsWideRows(t *testing.T) {
	_, err := grapheme.PackRules([][][]uint8{{make([]uint8, 17)}})
	assert.Error(t, err)
}

func TestPackRulesRejectsBigCells(t *testing.T) {
	_, err := grapheme.PackRules([][][]uint8{{{0, 4}}})
	assert.Error(t, err)
}

// clusters splits a class sequence with the join state machine and returns
// the number of grapheme clusters.
func clusters(packed [][]uint32, classes []ucd.ClusterBreak) int {
	if len(classes) == 0 {
		return 0
	}
	n := 1
	state := uint8(0)
	lead := uint8(classes[0])
	for _, c := range classes[1:] {
		next := grapheme.Joins(packed, state, lead, uint8(c))
		if grapheme.Done(next) {
			n++
			state = 0
		} else {
			state = next
		}
		lead = uint8(c)
	}
	return n
}

func TestJoinCombiningMark(t *testing.T) {
	packed := packedRules(t)
	// U+0041 U+0301: a letter followed by a combining acute stays one
	// cluster.
	assert.Equal(t, uint8(0), grapheme.Joins(packed, 0, uint8(ucd.BreakOther), uint8(ucd.BreakExtend)))
	assert.False(t, grapheme.Done(0))
	assert.Equal(t, 1, clusters(packed, []ucd.ClusterBreak{ucd.BreakOther, ucd.BreakExtend}))
}

func TestJoinRegionalIndicatorPairs(t *testing.T) {
	packed := packedRules(t)
	// Four RIs (two flags) pair up into exactly two clusters.
	ri := ucd.BreakRI
	assert.Equal(t, uint8(1), grapheme.Joins(packed, 0, uint8(ri), uint8(ri)))
	assert.Equal(t, grapheme.Ω, grapheme.Joins(packed, 1, uint8(ri), uint8(ri)))
	assert.Equal(t, 2, clusters(packed, []ucd.ClusterBreak{ri, ri, ri, ri}))
	// An odd run pairs greedily: two clusters again.
	assert.Equal(t, 2, clusters(packed, []ucd.ClusterBreak{ri, ri, ri}))
}

func TestJoinIndicConjunct(t *testing.T) {
	packed := packedRules(t)
	// KA VIRAMA KA: consonant, linker, consonant form one cluster.
	seq := []ucd.ClusterBreak{ucd.BreakInCBConsonant, ucd.BreakInCBLinker, ucd.BreakInCBConsonant}
	assert.Equal(t, uint8(0), grapheme.Joins(packed, 0, uint8(ucd.BreakInCBConsonant), uint8(ucd.BreakInCBLinker)))
	assert.Equal(t, uint8(0), grapheme.Joins(packed, 0, uint8(ucd.BreakInCBLinker), uint8(ucd.BreakInCBConsonant)))
	assert.Equal(t, 1, clusters(packed, seq))
}

func TestJoinVariationSelector(t *testing.T) {
	packed := packedRules(t)
	// Emoji + VS-16: Extend joins whatever it follows.
	assert.Equal(t, uint8(0), grapheme.Joins(packed, 0, uint8(ucd.BreakExtend), uint8(ucd.BreakExtend)))
	assert.Equal(t, 1, clusters(packed, []ucd.ClusterBreak{ucd.BreakExtPic, ucd.BreakExtend}))
}

func TestJoinZWJSequence(t *testing.T) {
	packed := packedRules(t)
	// ExtPic ZWJ ExtPic is the emoji join everybody cares about.
	seq := []ucd.ClusterBreak{ucd.BreakExtPic, ucd.BreakZWJ, ucd.BreakExtPic}
	assert.Equal(t, 1, clusters(packed, seq))
}

func TestJoinControlAlwaysBreaks(t *testing.T) {
	packed := packedRules(t)
	for trail := ucd.ClusterBreak(0); trail < ucd.NumClusterBreaks; trail++ {
		assert.Equal(t, grapheme.Ω, grapheme.Joins(packed, 0, uint8(ucd.BreakControl), uint8(trail)),
			"Control × %s should break", trail)
	}
}

func TestJoinHangulSyllable(t *testing.T) {
	packed := packedRules(t)
	// L V T composes a syllable; LV T extends it likewise.
	assert.Equal(t, 1, clusters(packed, []ucd.ClusterBreak{ucd.BreakHangulL, ucd.BreakHangulV, ucd.BreakHangulT}))
	assert.Equal(t, 1, clusters(packed, []ucd.ClusterBreak{ucd.BreakHangulLV, ucd.BreakHangulT}))
	assert.Equal(t, 2, clusters(packed, []ucd.ClusterBreak{ucd.BreakHangulT, ucd.BreakHangulL}))
}
