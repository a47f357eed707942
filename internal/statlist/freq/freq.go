// Package freq tracks per-value occurrence counts and the current mode.
//
// The mode is kept as a cached (value, count) pair updated incrementally on
// every increment. Decrements can invalidate the cache: when the cached mode
// itself loses an occurrence, another value may silently become the new
// champion, and there is no cheap way to know which. In that one case the
// tracker rescans every remaining (value, count) pair.
//
// That repair is O(distinct values). It is the single departure from constant
// time in this tracker and it is intentional: demoting the mode is rare in
// practice, and the alternative (a count-ordered secondary index) would tax
// every increment to speed up an uncommon path.
package freq

// Tracker maps values to occurrence counts and caches the mode.
// The zero value is not usable; call New.
type Tracker struct {
	counts map[int64]int

	// Cached mode: highest count, smallest value on ties.
	// Valid whenever modeCount > 0.
	modeValue int64
	modeCount int
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{counts: make(map[int64]int)}
}

// Inc adds one occurrence of v and promotes it to cached mode if its new
// count wins outright or ties the mode with a strictly smaller value. O(1).
func (t *Tracker) Inc(v int64) {
	c := t.counts[v] + 1
	t.counts[v] = c
	if c > t.modeCount || (c == t.modeCount && v < t.modeValue) {
		t.modeValue = v
		t.modeCount = c
	}
}

// Dec removes one occurrence of v, deleting the entry at zero. If v was the
// cached mode and no longer reaches the cached count, the mode is recomputed
// by a full rescan — O(distinct values), the tracker's documented worst case.
// Decrementing an absent value is a no-op.
func (t *Tracker) Dec(v int64) {
	c, ok := t.counts[v]
	if !ok {
		return
	}
	c--
	if c == 0 {
		delete(t.counts, v)
	} else {
		t.counts[v] = c
	}
	if v == t.modeValue && c < t.modeCount {
		t.repair()
	}
}

// repair rescans all counts and rebuilds the cached mode with the usual
// tie-break (max count, then smallest value).
func (t *Tracker) repair() {
	t.modeCount = 0
	t.modeValue = 0
	for value, count := range t.counts {
		if count > t.modeCount || (count == t.modeCount && value < t.modeValue) {
			t.modeValue = value
			t.modeCount = count
		}
	}
}

// Mode returns the cached mode pair, or false when no values are tracked.
func (t *Tracker) Mode() (value int64, count int, ok bool) {
	if t.modeCount == 0 {
		return 0, 0, false
	}
	return t.modeValue, t.modeCount, true
}

// Count returns the occurrence count for v, zero when absent.
func (t *Tracker) Count(v int64) int {
	return t.counts[v]
}

// Contains reports whether v has at least one occurrence.
func (t *Tracker) Contains(v int64) bool {
	return t.counts[v] > 0
}

// Distinct returns the number of distinct values tracked.
func (t *Tracker) Distinct() int {
	return len(t.counts)
}

// Values returns the distinct values in unspecified order.
func (t *Tracker) Values() []int64 {
	vs := make([]int64, 0, len(t.counts))
	for v := range t.counts {
		vs = append(vs, v)
	}
	return vs
}

// Clear drops all counts and the cached mode.
func (t *Tracker) Clear() {
	clear(t.counts)
	t.modeValue = 0
	t.modeCount = 0
}
