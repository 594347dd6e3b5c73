package trie

import (
	"bytes"
	"context"
	"unsafe"

	pool "github.com/jolestar/go-commons-pool"
)

// elemSize is the byte size of a stage element during construction. Final
// stages may shrink to 8 or 16 bits, but the compressor always works on
// uint32 elements.
const elemSize = int(unsafe.Sizeof(uint32(0)))

// compressStage chops values into chunks of 1<<shift elements and produces
// the compressed stage along with one offset per chunk. Each offset points at
// an element-aligned occurrence of its chunk within the compressed stage.
// A trailing chunk shorter than the chunk size is treated as a full chunk of
// its own length; no padding is applied.
//
// Three tactics, in order: a cache lookup over previously seen chunks, a scan
// for an existing aligned occurrence, and tail-overlap fusion when the chunk
// has to be appended. The earliest offset always wins.
func compressStage(values []uint32, shift int) (compressed, offsets []uint32) {
	chunkSize := 1 << shift
	cache := make(map[string]uint32)
	compressed = make([]uint32, 0, len(values)/8)
	offsets = make([]uint32, 0, (len(values)+chunkSize-1)/chunkSize)
	scratch := borrowScratch()
	defer scratch.release()

	for i := 0; i < len(values); i += chunkSize {
		end := i + chunkSize
		if end > len(values) {
			end = len(values)
		}
		chunk := values[i:end]
		key := scratch.keyFor(chunk)
		offset, seen := cache[key]
		if !seen {
			if existing := findAligned(compressed, chunk); existing >= 0 {
				offset = uint32(existing)
			} else {
				overlap := measureOverlap(compressed, chunk)
				compressed = append(compressed, chunk[overlap:]...)
				offset = uint32(len(compressed) - len(chunk))
			}
			cache[key] = offset
		}
		offsets = append(offsets, offset)
	}
	return compressed, offsets
}

// findAligned looks for needle as a contiguous sub-sequence of haystack and
// returns its element index, or -1. The scan runs on the raw byte image for
// speed; a byte-level hit that does not start on an element boundary is no
// use for indexing, so misaligned hits are skipped. Advancing one byte past
// a rejected hit keeps the scan moving forward.
func findAligned(haystack, needle []uint32) int {
	if len(haystack) == 0 || len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	h := unsafe.Slice((*byte)(unsafe.Pointer(&haystack[0])), len(haystack)*elemSize)
	n := unsafe.Slice((*byte)(unsafe.Pointer(&needle[0])), len(needle)*elemSize)
	for base := 0; ; {
		i := bytes.Index(h[base:], n)
		if i < 0 {
			return -1
		}
		pos := base + i
		if pos%elemSize == 0 {
			return pos / elemSize
		}
		base = pos + 1
	}
}

// measureOverlap returns the largest k such that the last k elements of prev
// equal the first k elements of next. [0 1 2 3 4] and [2 3 4 5] overlap
// by 3.
func measureOverlap(prev, next []uint32) int {
	limit := len(prev)
	if len(next) < limit {
		limit = len(next)
	}
	for overlap := limit; overlap > 0; overlap-- {
		if equal(prev[len(prev)-overlap:], next[:overlap]) {
			return overlap
		}
	}
	return 0
}

func equal(a, b []uint32) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- Scratch pool ----------------------------------------------------------

// A scratch carries the reusable key buffer of one compression run. Scratches
// are short-lived and allocated in bursts during the candidate search, so we
// pool them.
type scratch struct {
	key []byte
}

// keyFor renders a chunk into the scratch buffer and returns the cache key.
// The buffer is reused across calls; the string conversion makes the copy
// the cache gets to keep.
func (s *scratch) keyFor(chunk []uint32) string {
	s.key = s.key[:0]
	for _, v := range chunk {
		s.key = append(s.key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(s.key)
}

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *scratch {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	return o.(*scratch)
}

func (s *scratch) release() {
	s.key = s.key[:0]
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
