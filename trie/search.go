package trie

import (
	"fmt"
	"runtime"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/sync/errgroup"
)

// A SearchReport records the total size of every candidate configuration of
// a best-trie search, keyed by candidate ordinal. It is produced by the
// single reducer, so no locking is involved.
type SearchReport struct {
	sizes *treemap.Map // candidate ordinal -> total size
}

func newSearchReport() *SearchReport {
	return &SearchReport{sizes: treemap.NewWithIntComparator()}
}

// Candidates returns the number of configurations explored.
func (r *SearchReport) Candidates() int {
	return r.sizes.Size()
}

// Size returns the total size of candidate ordinal, if it was explored.
func (r *SearchReport) Size(ordinal int) (int, bool) {
	v, ok := r.sizes.Get(ordinal)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Each visits all candidates in ordinal order.
func (r *SearchReport) Each(f func(ordinal, size int)) {
	r.sizes.Each(func(key interface{}, value interface{}) {
		f(key.(int), value.(int))
	})
}

// FindBest enumerates all shift configurations with stages-1 shifts in
// [minShift, maxShift], builds a candidate trie for each, and returns the
// smallest one together with the per-candidate size report.
//
// Candidate ordinal i decomposes into mixed-radix digits over the shift
// range, the leaf stage's digit varying fastest. Builds run concurrently
// with a bounded number of workers; each worker reads values read-only and
// owns all of its intermediate arrays. The winner is picked by total size,
// ties broken towards the smaller ordinal, so the result is deterministic no
// matter how the workers are scheduled.
func FindBest(values []uint32, minShift, maxShift, stages int) (*Trie, *SearchReport, error) {
	if minShift < 1 || maxShift < minShift {
		return nil, nil, fmt.Errorf("invalid shift bounds [%d, %d]", minShift, maxShift)
	}
	if stages < 2 {
		return nil, nil, fmt.Errorf("a trie needs at least 2 stages, got %d", stages)
	}
	delta := maxShift - minShift + 1
	candidates := 1
	for i := 1; i < stages; i++ {
		candidates *= delta
	}
	tracer().Infof("searching %d shift configurations, %d stages", candidates, stages)

	type result struct {
		ordinal int
		trie    *Trie
	}
	results := make(chan result)
	go func() {
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i < candidates; i++ {
			ordinal := i
			g.Go(func() error {
				results <- result{ordinal, Build(values, shiftsOf(ordinal, delta, minShift, stages-1))}
				return nil
			})
		}
		_ = g.Wait()
		close(results)
	}()

	report := newSearchReport()
	var best *Trie
	bestOrdinal := -1
	for res := range results {
		report.sizes.Put(res.ordinal, res.trie.TotalSize)
		if best == nil ||
			res.trie.TotalSize < best.TotalSize ||
			(res.trie.TotalSize == best.TotalSize && res.ordinal < bestOrdinal) {
			best, bestOrdinal = res.trie, res.ordinal
		}
	}
	tracer().Infof("best of %d candidates: shifts %v, %d bytes", candidates, best.Shifts(), best.TotalSize)
	return best, report, nil
}

// shiftsOf decomposes a candidate ordinal into its shift tuple. Given
// minShift=2, maxShift=3, count=3 the ordinals 0..7 yield
//
//	[2 2 2] [3 2 2] [2 3 2] [3 3 2] [2 2 3] [3 2 3] [2 3 3] [3 3 3]
func shiftsOf(ordinal, delta, minShift, count int) []int {
	shifts := make([]int, count)
	for j := range shifts {
		shifts[j] = minShift + ordinal%delta
		ordinal /= delta
	}
	return shifts
}
