package trie

import (
	"fmt"
	"math"
)

// RootMask marks the root stage, which is indexed by the shifted codepoint
// without masking. Emitters special-case it and print the index expression
// without an '& mask' term.
const RootMask = math.MaxInt32

// A Stage is one level of a lookup trie: an immutable element sequence plus
// the shift and mask that cut a codepoint down to this stage's index bits.
type Stage struct {
	Values []uint32 // stage elements; offsets, or packed values in the leaf
	Shift  int      // right-shift applied to the codepoint before indexing
	Mask   int      // chunk-size mask; RootMask for the root stage
	Bits   int      // smallest of 8, 16, 32 admitting max(Values)
}

// A Trie is an ordered sequence of stages, root first, leaf last.
type Trie struct {
	Stages    []*Stage
	TotalSize int // Σ (Bits/8)·len(Values) over all stages
}

// Build compresses values into a trie with len(shifts)+1 stages. The shifts
// are per-stage chunk shifts, leaf first; the input of each round is the
// offset array of the previous one, and the remaining offsets become the
// root stage.
func Build(values []uint32, shifts []int) *Trie {
	cumulative := 0
	work := values
	stages := make([]*Stage, 0, len(shifts)+1)
	for _, shift := range shifts {
		compressed, offsets := compressStage(work, shift)
		stages = append(stages, &Stage{
			Values: compressed,
			Shift:  cumulative,
			Mask:   1<<shift - 1,
		})
		work = offsets
		cumulative += shift
	}
	stages = append(stages, &Stage{
		Values: work,
		Shift:  cumulative,
		Mask:   RootMask,
	})
	reverse(stages) // root first

	total := 0
	for _, s := range stages {
		s.Bits = bitsFor(s.Values)
		total += s.Bits / 8 * len(s.Values)
	}
	return &Trie{Stages: stages, TotalSize: total}
}

// Lookup replays the emitted lookup: the root stage is indexed by the shifted
// codepoint, every further stage by the previous result plus a masked bit
// field. The returned leaf element is the packed value.
func (t *Trie) Lookup(cp rune) uint32 {
	var v uint32
	for _, s := range t.Stages {
		v = s.Values[int(v)+(int(cp)>>s.Shift)&s.Mask]
	}
	return v
}

// Verify replays the lookup for every codepoint and compares it against the
// uncompressed input. A mismatch is a builder bug, reported with the first
// offending codepoint.
func (t *Trie) Verify(values []uint32) error {
	for cp, expected := range values {
		if got := t.Lookup(rune(cp)); got != expected {
			return fmt.Errorf("trie lookup mismatch for %U: got %#x, want %#x", cp, got, expected)
		}
	}
	return nil
}

// Shifts returns the per-stage chunk shifts, leaf first, undoing the
// cumulative shifts of Build. Handy for reporting which configuration won.
func (t *Trie) Shifts() []int {
	shifts := make([]int, 0, len(t.Stages)-1)
	for i := len(t.Stages) - 1; i > 0; i-- {
		shifts = append(shifts, t.Stages[i-1].Shift-t.Stages[i].Shift)
	}
	return shifts
}

// bitsFor returns the smallest element width of 8, 16 or 32 bits that admits
// the largest value of the sequence. Offsets never exceed 32 bits for a
// UCD-sized input.
func bitsFor(values []uint32) int {
	var max uint32
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	switch {
	case max <= 0xff:
		return 8
	case max <= 0xffff:
		return 16
	default:
		return 32
	}
}

func reverse(stages []*Stage) {
	for i, j := 0, len(stages)-1; i < j; i, j = i+1, j-1 {
		stages[i], stages[j] = stages[j], stages[i]
	}
}
