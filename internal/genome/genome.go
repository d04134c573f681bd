// Package genome provides a sharded index over ivtree.Tree, one tree per
// chromosome-like key, for loading and querying genomic interval data.
package genome

import (
	"sort"
	"strings"
	"sync"

	"github.com/tidx/ivtree/ivtree"
)

// Record is the payload carried by every interval stored in the index: the
// trailing BED columns beyond chrom/start/end. Extra is the remaining
// columns joined with a tab, rather than a slice, so Record stays
// comparable and can be used directly as ivtree's payload type parameter.
type Record struct {
	Name  string
	Extra string
}

// Index is a sharded collection of interval trees keyed by chromosome name.
// The mutex guards the shard map and Add. Query, QueryPoint and MergeShard
// use a shard's tree after releasing the lock, so they are not safe to run
// concurrently with Add or MergeShard on the same chromosome. cmd/ivtree's
// load/query subcommands build the trees once and only query them
// afterward.
type Index struct {
	mu     sync.RWMutex
	shards map[string]*ivtree.Tree[int, Record]
}

// New returns an empty Index.
func New() *Index {
	return &Index{shards: make(map[string]*ivtree.Tree[int, Record])}
}

// Add inserts one interval under the given chromosome key, creating the
// shard if it does not already exist.
func (idx *Index) Add(chrom string, begin, end int, rec Record) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	shard, ok := idx.shards[chrom]
	if !ok {
		shard = ivtree.New[int, Record]()
		idx.shards[chrom] = shard
	}
	return shard.AddRange(begin, end, rec)
}

// Shard returns the tree for chrom and whether it exists.
func (idx *Index) Shard(chrom string) (*ivtree.Tree[int, Record], bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	shard, ok := idx.shards[chrom]
	return shard, ok
}

// Chromosomes returns the sorted list of chromosome keys with at least one
// shard.
func (idx *Index) Chromosomes() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, 0, len(idx.shards))
	for k := range idx.shards {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ShardCount returns the number of chromosome shards.
func (idx *Index) ShardCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.shards)
}

// IntervalCount returns the total number of intervals across all shards.
func (idx *Index) IntervalCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	total := 0
	for _, shard := range idx.shards {
		total += shard.Len()
	}
	return total
}

// Query returns every interval on chrom overlapping [begin, end). It
// returns nil if chrom has no shard.
func (idx *Index) Query(chrom string, begin, end int) []ivtree.Interval[int, Record] {
	shard, ok := idx.Shard(chrom)
	if !ok {
		return nil
	}
	return shard.Overlap(begin, end)
}

// QueryPoint returns every interval on chrom containing p.
func (idx *Index) QueryPoint(chrom string, p int) []ivtree.Interval[int, Record] {
	shard, ok := idx.Shard(chrom)
	if !ok {
		return nil
	}
	return shard.AtPoint(p)
}

// MergeShard runs Tree.MergeOverlaps on chrom's shard with a reducer that
// concatenates record names, for the "touching"/"strict" manifest merge
// modes.
func (idx *Index) MergeShard(chrom string, strict bool) {
	shard, ok := idx.Shard(chrom)
	if !ok {
		return
	}
	shard.MergeOverlaps(func(acc, next Record) Record {
		extra := acc.Extra
		switch {
		case acc.Extra == "":
			extra = next.Extra
		case next.Extra != "":
			extra = acc.Extra + "\t" + next.Extra
		}
		return Record{
			Name:  acc.Name + "+" + next.Name,
			Extra: extra,
		}
	}, strict, nil)
}
