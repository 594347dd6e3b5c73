package trie

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

// replayChunks checks the compressor contract: every chunk of the input is
// found at its offset in the compressed stage.
func replayChunks(t *testing.T, values []uint32, shift int, compressed, offsets []uint32) {
	t.Helper()
	chunkSize := 1 << shift
	for i, offset := range offsets {
		from := i * chunkSize
		to := from + chunkSize
		if to > len(values) {
			to = len(values)
		}
		chunk := values[from:to]
		stored := compressed[offset : int(offset)+len(chunk)]
		if !equal(chunk, stored) {
			t.Fatalf("chunk %d not reproduced at offset %d: %v != %v", i, offset, chunk, stored)
		}
	}
}

func TestCompressDeduplicates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	values := []uint32{1, 2, 3, 4, 1, 2, 3, 4, 1, 2, 3, 4}
	compressed, offsets := compressStage(values, 2)
	if len(compressed) != 4 {
		t.Errorf("compressed length = %d, want 4", len(compressed))
	}
	if len(offsets) != 3 || offsets[0] != 0 || offsets[1] != 0 || offsets[2] != 0 {
		t.Errorf("offsets = %v, want [0 0 0]", offsets)
	}
	replayChunks(t, values, 2, compressed, offsets)
}

func TestCompressReusesAlignedSubstring(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// The third chunk [3 4 5 6] never occurred as a chunk, but it sits
	// fully inside the compressed stage at element offset 2.
	values := []uint32{1, 2, 3, 4, 5, 6, 7, 8, 3, 4, 5, 6}
	compressed, offsets := compressStage(values, 2)
	if len(compressed) != 8 {
		t.Errorf("compressed length = %d, want 8", len(compressed))
	}
	if offsets[2] != 2 {
		t.Errorf("offsets[2] = %d, want 2", offsets[2])
	}
	replayChunks(t, values, 2, compressed, offsets)
}

func TestCompressFusesOverlap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// [2 3 4 5] overlaps the tail [2 3 4] of the stage; only 5 is appended.
	values := []uint32{1, 2, 3, 4, 2, 3, 4, 5}
	compressed, offsets := compressStage(values, 2)
	if len(compressed) != 5 {
		t.Errorf("compressed length = %d, want 5", len(compressed))
	}
	if offsets[1] != 1 {
		t.Errorf("offsets[1] = %d, want 1", offsets[1])
	}
	replayChunks(t, values, 2, compressed, offsets)
}

func TestCompressShortTailChunk(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	values := []uint32{1, 2, 3, 4, 3, 4}
	compressed, offsets := compressStage(values, 2)
	if len(offsets) != 2 {
		t.Fatalf("offsets length = %d, want 2", len(offsets))
	}
	// The two-element tail [3 4] is found inside [1 2 3 4].
	if offsets[1] != 2 {
		t.Errorf("offsets[1] = %d, want 2", offsets[1])
	}
	replayChunks(t, values, 2, compressed, offsets)
}

func TestFindAlignedRejectsMisalignedMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// The byte image of the haystack is 00 01 00 00 | 00 00 01 00, which
	// contains the needle's bytes 01 00 00 00 only at byte offset 1.
	haystack := []uint32{0x00000100, 0x00010000}
	needle := []uint32{0x00000001}
	if pos := findAligned(haystack, needle); pos != -1 {
		t.Errorf("findAligned = %d, want -1 for a misaligned-only match", pos)
	}
}

func TestFindAlignedFindsElementMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	haystack := []uint32{7, 8, 9, 8, 9, 10}
	if pos := findAligned(haystack, []uint32{9, 8, 9}); pos != 2 {
		t.Errorf("findAligned = %d, want 2", pos)
	}
	if pos := findAligned(haystack, []uint32{11}); pos != -1 {
		t.Errorf("findAligned = %d, want -1", pos)
	}
	if pos := findAligned(nil, []uint32{1}); pos != -1 {
		t.Errorf("findAligned on empty haystack = %d, want -1", pos)
	}
}

func TestMeasureOverlap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		prev, next []uint32
		want       int
	}{
		{[]uint32{0, 1, 2, 3, 4}, []uint32{2, 3, 4, 5}, 3},
		{[]uint32{1, 2}, []uint32{3, 4}, 0},
		{[]uint32{1, 2}, []uint32{1, 2}, 2},
		{nil, []uint32{1}, 0},
		{[]uint32{5}, []uint32{5, 5, 5, 5}, 1},
	}
	for _, c := range cases {
		if got := measureOverlap(c.prev, c.next); got != c.want {
			t.Errorf("measureOverlap(%v, %v) = %d, want %d", c.prev, c.next, got, c.want)
		}
	}
}
