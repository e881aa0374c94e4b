// Package seq provides ordered-sequence splice and growth primitives shared
// by the text core's parallel arrays (code units and line offsets).
package seq

// GrowthFactor is the geometric growth multiplier applied when a sequence
// must be reallocated. It is exported so the doubling policy is testable.
const GrowthFactor = 2

// Grow returns s with capacity at least minCap. When reallocation is needed
// the new capacity is the larger of minCap and GrowthFactor times the current
// capacity, so repeated appends stay amortized O(1). Length and contents are
// preserved.
func Grow[T any](s []T, minCap int) []T {
	if cap(s) >= minCap {
		return s
	}
	newCap := cap(s) * GrowthFactor
	if newCap < minCap {
		newCap = minCap
	}
	grown := make([]T, len(s), newCap)
	copy(grown, s)
	return grown
}

// Splice replaces s[start:start+deleteCount] with insert and returns the
// resulting slice. The tail is moved with copy, which handles overlapping
// ranges in either direction, so the same routine serves both net-growing and
// net-shrinking edits. start and deleteCount must describe a range within s.
func Splice[T any](s []T, start, deleteCount int, insert []T) []T {
	originalLen := len(s)
	delta := len(insert) - deleteCount

	if delta > 0 {
		s = Grow(s, originalLen+delta)[:originalLen+delta]
	}

	copy(s[start+len(insert):], s[start+deleteCount:originalLen])
	copy(s[start:], insert)

	if delta < 0 {
		s = s[:originalLen+delta]
	}
	return s
}
