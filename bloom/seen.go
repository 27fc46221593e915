// Package bloom provides record deduplication across feed passes using
// Bloom filters. The feed re-renders posts as it scrolls, so the same
// record id surfaces repeatedly; the filter keeps memory flat no matter
// how long the scrape runs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Seen tracks record ids that have already been extracted. False
// positives are possible (a new record very rarely reported as seen);
// false negatives are not.
type Seen struct {
	f *bloom.BloomFilter
}

// NewSeen creates a filter sized for n expected records with the given
// false positive rate.
func NewSeen(n uint, fpRate float64) *Seen {
	return &Seen{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Observe records the id and reports whether it had been seen before.
func (s *Seen) Observe(id string) bool {
	return s.f.TestAndAddString(id)
}

// Test reports whether the id might have been seen, without recording
// it.
func (s *Seen) Test(id string) bool {
	return s.f.TestString(id)
}

// EstimatedCount returns the approximate number of recorded ids.
func (s *Seen) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
