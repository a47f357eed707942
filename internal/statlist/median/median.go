// Package median maintains a running median over a stream of inserts and
// removes using the two-multiset technique: lower holds the smaller half of
// the values, upper the larger half, and the median is read off their
// adjacent ends.
//
// Balance discipline
// ==================
//
// After every insert or remove, Rebalance restores the size invariant
// |lower| - |upper| ∈ {0, 1} by moving at most one value across the boundary:
// lower's maximum up, or upper's minimum down. Because a single insert or
// remove perturbs the sizes by exactly one, one move always suffices.
//
// Removal mirrors the insertion rule to decide which half to search first
// (a value ≤ lower's max would have been placed in lower), but falls back to
// the other half: after earlier rebalances, equal values can legitimately
// live on either side of the boundary.
package median

import (
	"math"

	"statlist.lopezb.com/internal/statlist/multiset"
)

// Tracker is the two-half median structure. The zero value is not usable;
// call New.
type Tracker struct {
	lower *multiset.Multiset // smaller half, median candidates at its max
	upper *multiset.Multiset // larger half, median candidates at its min
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{lower: multiset.New(), upper: multiset.New()}
}

// Insert places v in the half the boundary dictates and rebalances.
// O(log n).
func (t *Tracker) Insert(v int64) {
	if max, ok := t.lower.Max(); !ok || v <= max {
		t.lower.Insert(v)
	} else {
		t.upper.Insert(v)
	}
	t.Rebalance()
}

// Remove drops one occurrence of v and rebalances. The half to search first
// follows the insertion rule; the other half is the fallback. Reports whether
// an occurrence was found. O(log n).
func (t *Tracker) Remove(v int64) bool {
	var found bool
	if max, ok := t.lower.Max(); ok && v <= max {
		found = t.lower.Delete(v)
		if !found {
			found = t.upper.Delete(v)
		}
	} else {
		found = t.upper.Delete(v)
		if !found {
			found = t.lower.Delete(v)
		}
	}
	t.Rebalance()
	return found
}

// Rebalance restores |lower| - |upper| ∈ {0, 1} by moving at most one value.
// Exported because batch folds (merge) finish with one extra call after the
// last element, matching the end-of-batch discipline of the fan-out protocol.
func (t *Tracker) Rebalance() {
	if t.lower.Len() > t.upper.Len()+1 {
		v, _ := t.lower.Max()
		t.lower.Delete(v)
		t.upper.Insert(v)
	} else if t.upper.Len() > t.lower.Len() {
		v, _ := t.upper.Min()
		t.upper.Delete(v)
		t.lower.Insert(v)
	}
}

// Median returns the current median: lower's maximum when the total count is
// odd, the mean of the two middle values when even. The mean can be
// fractional even for integer input. Returns NaN when empty; callers check
// with math.IsNaN.
func (t *Tracker) Median() float64 {
	if t.lower.Len() == 0 {
		return math.NaN()
	}
	lo, _ := t.lower.Max()
	if t.lower.Len() > t.upper.Len() {
		return float64(lo)
	}
	hi, _ := t.upper.Min()
	return (float64(lo) + float64(hi)) / 2
}

// Len returns the total number of tracked occurrences.
func (t *Tracker) Len() int {
	return t.lower.Len() + t.upper.Len()
}

// Halves returns the current half sizes, lower first. Used by invariant
// checks.
func (t *Tracker) Halves() (int, int) {
	return t.lower.Len(), t.upper.Len()
}

// Clear empties both halves.
func (t *Tracker) Clear() {
	t.lower.Clear()
	t.upper.Clear()
}
