package grapheme

// The join state machine the emitted module implements. State 0 is the
// initial state, state 1 is entered after an RI pair, Ω terminates a
// cluster. Callers reset to state 0 after a break and make the trailing
// codepoint the lead of the next cluster. These mirror the emitted
// ucdGraphemeJoins and ucdGraphemeDone routines and back the tests.

// Joins returns the next state for a trailing cluster-break class, given the
// leading class and the current state. state must be 0 or 1; a caller seeing
// Ω resets to 0 before the next transition.
func Joins(packed [][]uint32, state, lead, trail uint8) uint8 {
	return uint8((packed[state][lead&15] >> ((trail & 15) * 2)) & 3)
}

// Done reports whether a state terminates the cluster.
func Done(state uint8) bool {
	return state == Ω
}
