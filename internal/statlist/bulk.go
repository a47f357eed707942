// bulk.go holds the bulk value-reordering operations: sorts, lexicographic
// permutation stepping, and deduplication.
//
// Sorts and permutation steps share one shape: collect the current values,
// compute the new arrangement, write the values back into the same elements
// (identities survive, values do not), then rebuild all five indices. No
// incremental repair is attempted — after a sort, a value's new position has
// nothing to do with its old one, so a rebuild is the honest cost model.
//
// Deduplication is the exception: it removes whole elements, which the
// ordinary removal fan-out already handles incrementally in O(1) index work
// per removed element.

package statlist

import (
	"sort"

	"statlist.lopezb.com/internal/statlist/seq"
)

// collect snapshots the current value sequence into a slice.
func (l *List) collect() []int64 {
	vals := make([]int64, 0, l.seq.Len())
	for v := range l.seq.Values() {
		vals = append(vals, v)
	}
	return vals
}

// writeBack stores vals into the existing elements in order and rebuilds the
// indices. len(vals) must equal the list length.
func (l *List) writeBack(vals []int64) {
	i := 0
	for h := range l.seq.Handles() {
		l.seq.SetValue(h, vals[i])
		i++
	}
	l.rebuild()
}

// SortAscending reorders the values into ascending order. O(n log n).
func (l *List) SortAscending() {
	if l.seq.Len() <= 1 {
		return
	}
	vals := l.collect()
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	l.writeBack(vals)
}

// SortDescending reorders the values into descending order. O(n log n).
func (l *List) SortDescending() {
	if l.seq.Len() <= 1 {
		return
	}
	vals := l.collect()
	sort.Slice(vals, func(i, j int) bool { return vals[i] > vals[j] })
	l.writeBack(vals)
}

// NextPermutation advances the value sequence to its next lexicographic
// arrangement and reports whether one existed. When the sequence is already
// the last arrangement it wraps to the first (sorted ascending) and returns
// false — the standard lexicographic-permutation contract.
func (l *List) NextPermutation() bool {
	if l.seq.Len() <= 1 {
		return false
	}
	vals := l.collect()
	ok := nextPermutation(vals)
	l.writeBack(vals)
	return ok
}

// PreviousPermutation steps the value sequence back to its previous
// lexicographic arrangement and reports whether one existed, wrapping to the
// last arrangement (sorted descending) when the sequence was already first.
func (l *List) PreviousPermutation() bool {
	if l.seq.Len() <= 1 {
		return false
	}
	vals := l.collect()
	ok := prevPermutation(vals)
	l.writeBack(vals)
	return ok
}

// nextPermutation rearranges a into its next lexicographic permutation in
// place. Returns false (leaving a sorted ascending) when a was the last one.
func nextPermutation(a []int64) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		reverse(a)
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverse(a[i+1:])
	return true
}

// prevPermutation is the mirror of nextPermutation: it finds the previous
// arrangement, or wraps to sorted descending and returns false.
func prevPermutation(a []int64) bool {
	i := len(a) - 2
	for i >= 0 && a[i] <= a[i+1] {
		i--
	}
	if i < 0 {
		reverse(a)
		return false
	}
	j := len(a) - 1
	for a[j] >= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverse(a[i+1:])
	return true
}

func reverse(a []int64) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// RemoveDuplicates keeps the first occurrence of every value in order and
// removes the rest. O(n) traversal with O(1) index work per removal.
func (l *List) RemoveDuplicates() {
	seen := make(map[int64]struct{}, l.freq.Distinct())
	h := l.seq.Head()
	for h != seq.None {
		next := l.seq.Next(h)
		v := l.seq.Value(h)
		if _, dup := seen[v]; dup {
			l.seq.Detach(h)
			l.removeElement(h)
			l.seq.Release(h)
		} else {
			seen[v] = struct{}{}
		}
		h = next
	}
}
