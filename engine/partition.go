package engine

import (
	"github.com/juju/errors"
)

// Range is a half-open vertex interval owned by one partition.
type Range struct {
	Lo, Hi int32
}

// PartitionVertices cuts [0, n) into k near-equal ranges, earlier ranges
// one longer when k does not divide n. A multi-device layer would fan
// enactments out over these; the single-device loop here runs the whole
// set and keeps the ranges as bookkeeping.
func PartitionVertices(n, k int32) ([]Range, error) {
	if k < 1 {
		return nil, errors.Errorf("partition count %d, want at least 1", k)
	}
	if k > n && n > 0 {
		k = n
	}
	ranges := make([]Range, 0, k)
	base, extra := n/k, n%k
	lo := int32(0)
	for i := int32(0); i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges = append(ranges, Range{Lo: lo, Hi: lo + size})
		lo += size
	}
	return ranges, nil
}
