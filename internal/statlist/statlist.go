// Package statlist implements an ordered in-memory container that keeps
// list-style insertion order while answering statistics queries live:
// membership, per-value frequency, min/max, median, mode, and uniform random
// sampling, each without rescanning the sequence.
//
// Architecture
// ============
//
// The order sequence (package seq) owns every element; five auxiliary indices
// hold handles or values, never storage:
//
//   - locate.Index     value -> element handles (delete/update by value)
//   - freq.Tracker     per-value counts + cached mode
//   - multiset.Multiset  all values, for min/max
//   - median.Tracker   two balanced halves, for the running median
//   - pool.Pool        swap-remove pool, for uniform sampling
//
// Every mutation flows through a single fan-out pair (addElement /
// removeElement) so the six structures can only move in lockstep. Bulk
// reorders (sorts, permutations) do not attempt incremental index repair: a
// value's new position bears no relation to its old one, so they rewrite
// values in place and rebuild all five indices in one traversal.
//
// A List is not safe for concurrent use. Callers wanting shared access
// serialize externally; see cmd/statlist-server for the locking pattern.
package statlist

import (
	"iter"

	"statlist.lopezb.com/internal/statlist/freq"
	"statlist.lopezb.com/internal/statlist/locate"
	"statlist.lopezb.com/internal/statlist/median"
	"statlist.lopezb.com/internal/statlist/multiset"
	"statlist.lopezb.com/internal/statlist/pool"
	"statlist.lopezb.com/internal/statlist/seq"
)

// List is the composite container. The zero value is not usable; call New or
// NewSeeded.
type List struct {
	seq  *seq.Sequence
	locs *locate.Index
	freq *freq.Tracker
	all  *multiset.Multiset
	med  *median.Tracker
	pool *pool.Pool
}

// New returns an empty list with a non-deterministically seeded sampler.
func New() *List {
	return newList(pool.New())
}

// NewSeeded returns an empty list whose Sample sequence is determined by
// seed. Intended for reproducible tests; production callers use New.
func NewSeeded(seed uint64) *List {
	return newList(pool.NewSeeded(seed))
}

func newList(p *pool.Pool) *List {
	return &List{
		seq:  seq.New(),
		locs: locate.New(),
		freq: freq.New(),
		all:  multiset.New(),
		med:  median.New(),
		pool: p,
	}
}

// addValue fans an insert of h's value out to the four value-keyed indices.
// The sampling pool is identity-keyed and handled by addElement; UpdateValue
// reuses this half alone because the element's identity does not change.
func (l *List) addValue(v int64, h seq.Handle) {
	l.locs.Insert(v, h)
	l.freq.Inc(v)
	l.all.Insert(v)
	l.med.Insert(v)
}

// removeValue is the removal mirror of addValue.
func (l *List) removeValue(v int64, h seq.Handle) {
	l.locs.Remove(v, h)
	l.freq.Dec(v)
	l.all.Delete(v)
	l.med.Remove(v)
}

// addElement folds a freshly linked element into all five indices.
func (l *List) addElement(h seq.Handle) {
	l.addValue(l.seq.Value(h), h)
	l.pool.Insert(h)
}

// removeElement withdraws a detached element from all five indices.
func (l *List) removeElement(h seq.Handle) {
	l.removeValue(l.seq.Value(h), h)
	l.pool.Remove(h)
}

// rebuild clears the five indices and refills them from one traversal of the
// order sequence. O(n log n), dominated by the ordered trackers. Used after
// bulk value reassignment and after split.
func (l *List) rebuild() {
	l.locs.Clear()
	l.freq.Clear()
	l.all.Clear()
	l.med.Clear()
	l.pool.Clear()
	for h := range l.seq.Handles() {
		l.addElement(h)
	}
}

// PushBack appends v to the sequence. O(log n).
func (l *List) PushBack(v int64) {
	h := l.seq.Alloc(v)
	l.seq.PushBack(h)
	l.addElement(h)
}

// PushFront prepends v to the sequence. O(log n).
func (l *List) PushFront(v int64) {
	h := l.seq.Alloc(v)
	l.seq.PushFront(h)
	l.addElement(h)
}

// PopBack removes and returns the last value. False when empty.
func (l *List) PopBack() (int64, bool) {
	return l.popEnd(l.seq.Tail())
}

// PopFront removes and returns the first value. False when empty.
func (l *List) PopFront() (int64, bool) {
	return l.popEnd(l.seq.Head())
}

func (l *List) popEnd(h seq.Handle) (int64, bool) {
	if h == seq.None {
		return 0, false
	}
	v := l.seq.Value(h)
	l.seq.Detach(h)
	l.removeElement(h)
	l.seq.Release(h)
	return v, true
}

// Front returns the first value without removing it. False when empty.
func (l *List) Front() (int64, bool) {
	if h := l.seq.Head(); h != seq.None {
		return l.seq.Value(h), true
	}
	return 0, false
}

// Back returns the last value without removing it. False when empty.
func (l *List) Back() (int64, bool) {
	if h := l.seq.Tail(); h != seq.None {
		return l.seq.Value(h), true
	}
	return 0, false
}

// Contains reports whether at least one element holds v. O(1) average.
func (l *List) Contains(v int64) bool {
	return l.freq.Contains(v)
}

// FrequencyOf returns the number of elements holding v. O(1) average.
func (l *List) FrequencyOf(v int64) int {
	return l.freq.Count(v)
}

// Min returns the smallest current value. False when empty.
func (l *List) Min() (int64, bool) {
	return l.all.Min()
}

// Max returns the largest current value. False when empty.
func (l *List) Max() (int64, bool) {
	return l.all.Max()
}

// Median returns the running median: the middle value for odd sizes, the mean
// of the two middle values (possibly fractional) for even sizes. Returns NaN
// when empty; check with math.IsNaN.
func (l *List) Median() float64 {
	return l.med.Median()
}

// Mode returns the most frequent value and its count, ties broken by the
// smallest value. False when empty.
func (l *List) Mode() (value int64, count int, ok bool) {
	return l.freq.Mode()
}

// DeleteValue removes one occurrence of v — which one is unspecified.
// Reports whether an occurrence existed; a miss leaves all state unchanged.
func (l *List) DeleteValue(v int64) bool {
	h, ok := l.locs.Any(v)
	if !ok {
		return false
	}
	l.seq.Detach(h)
	l.removeElement(h)
	l.seq.Release(h)
	return true
}

// UpdateValue rewrites one occurrence of oldValue (unspecified which) to
// newValue, in place: the element keeps its position and identity, so the
// sampling pool is untouched while the four value-keyed indices are swapped
// from old to new. Reports whether an occurrence existed.
func (l *List) UpdateValue(oldValue, newValue int64) bool {
	h, ok := l.locs.Any(oldValue)
	if !ok {
		return false
	}
	l.removeValue(oldValue, h)
	l.seq.SetValue(h, newValue)
	l.addValue(newValue, h)
	return true
}

// Values returns a lazy, restartable iteration over the current values in
// order. Each range walks the sequence fresh; do not mutate the list while
// ranging.
func (l *List) Values() iter.Seq[int64] {
	return l.seq.Values()
}

// Kth returns the value at 0-based position k. O(n). False when k is out of
// range.
func (l *List) Kth(k int) (int64, bool) {
	h, ok := l.seq.Kth(k)
	if !ok {
		return 0, false
	}
	return l.seq.Value(h), true
}

// Reverse flips the sequence order in place. O(n). Values and identities are
// unchanged, so no index is touched.
func (l *List) Reverse() {
	l.seq.Reverse()
}

// Rotate moves the last k (mod size) elements to the front. O(n). The value
// multiset is unchanged, so no index is touched. Negative k rotates left.
func (l *List) Rotate(k int) {
	if n := l.seq.Len(); n > 0 && k < 0 {
		k = k%n + n
	}
	l.seq.Rotate(k)
}

// Sample returns the value of a uniformly chosen element. False when empty.
func (l *List) Sample() (int64, bool) {
	h, ok := l.pool.Sample()
	if !ok {
		return 0, false
	}
	return l.seq.Value(h), true
}

// UniqueValues returns the distinct current values in unspecified order.
func (l *List) UniqueValues() []int64 {
	return l.freq.Values()
}

// Merge drains other into the tail of l: other's elements are appended in
// their order and folded into l's indices one by one, O(len(other)) index
// work regardless of l's size. One extra median rebalance runs after the
// batch, closing out the fold. other is left empty and remains usable.
//
// Elements move between arenas as part of the fold, so handles minted by
// other do not survive; ownership transfers wholesale, never shared.
func (l *List) Merge(other *List) {
	if other == l || other.seq.Len() == 0 {
		return
	}
	for v := range other.seq.Values() {
		h := l.seq.Alloc(v)
		l.seq.PushBack(h)
		l.addElement(h)
	}
	l.med.Rebalance()
	other.Clear()
}

// Split detaches the elements from position k onward into a new list,
// preserving their order. Split(0) moves everything (l becomes empty);
// Split(k) with k >= Len() returns an empty list and leaves l unchanged.
// Both halves rebuild their indices wholesale — simpler and safer than
// incremental partitioning, at O(n) cost.
func (l *List) Split(k int) *List {
	right := New()
	if k >= l.seq.Len() {
		return right
	}
	if k <= 0 {
		right.Merge(l)
		return right
	}

	// Copy the suffix into the new list, then truncate it off this one.
	boundary, _ := l.seq.Kth(k)
	for h := boundary; h != seq.None; h = l.seq.Next(h) {
		right.PushBack(l.seq.Value(h))
	}
	for h := boundary; h != seq.None; {
		next := l.seq.Next(h)
		l.seq.Detach(h)
		l.seq.Release(h)
		h = next
	}
	l.rebuild()
	return right
}

// Clear removes every element and resets all indices. The list stays usable.
func (l *List) Clear() {
	l.seq.Clear()
	l.locs.Clear()
	l.freq.Clear()
	l.all.Clear()
	l.med.Clear()
	l.pool.Clear()
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.seq.Len()
}

// Empty reports whether the list holds no elements.
func (l *List) Empty() bool {
	return l.seq.Len() == 0
}
