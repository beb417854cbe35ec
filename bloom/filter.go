// Package bloom provides chunk deduplication using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/reportqa"
)

// Filter wraps a Bloom filter for content deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds content to the filter.
func (f *Filter) Add(content string) {
	f.f.AddString(content)
}

// Test returns true if the content might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(content string) bool {
	return f.f.TestString(content)
}

// DedupeChunks drops chunks whose case-folded content was already seen,
// such as running headers and footers repeated on every page, and returns
// the kept chunks with the number dropped. Positions are renumbered so they
// stay contiguous.
//
// The filter only short-circuits content that is certainly new; a chunk is
// dropped only when its content hash is in the exact seen set.
func DedupeChunks(chunks []*reportqa.Chunk, fpRate float64) ([]*reportqa.Chunk, int) {
	f := NewFilter(uint(len(chunks)), fpRate)
	seen := make(map[uint64]struct{}, len(chunks))
	out := make([]*reportqa.Chunk, 0, len(chunks))
	for _, c := range chunks {
		key := strings.ToLower(c.Content)
		h := xxhash.Sum64String(key)
		if f.Test(key) {
			if _, ok := seen[h]; ok {
				continue
			}
		}
		f.Add(key)
		seen[h] = struct{}{}
		c.Metadata.Position = len(out)
		out = append(out, c)
	}
	return out, len(chunks) - len(out)
}
