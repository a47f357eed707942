// Package locate maps values to the set of element handles currently holding
// them. It answers "give me any element with value v" in O(1) average, which
// is what value-addressed deletes and updates need.
//
// Duplicates are the whole point: each occurrence of a value is a distinct
// handle in the set, so removing or updating by value touches exactly one
// occurrence while leaving the others alone. Which occurrence Any returns is
// unspecified (map iteration order); callers that care about a particular
// occurrence must address it by position instead.
package locate

import "statlist.lopezb.com/internal/statlist/seq"

// Index is the value → handle-set mapping. The zero value is not usable;
// call New.
type Index struct {
	byValue map[int64]map[seq.Handle]struct{}
}

// New returns an empty index.
func New() *Index {
	return &Index{byValue: make(map[int64]map[seq.Handle]struct{})}
}

// Insert records that handle h currently holds value v.
func (x *Index) Insert(v int64, h seq.Handle) {
	set, ok := x.byValue[v]
	if !ok {
		set = make(map[seq.Handle]struct{})
		x.byValue[v] = set
	}
	set[h] = struct{}{}
}

// Remove forgets the (v, h) association, dropping the value's set entirely
// when it empties. Unknown pairs are a no-op.
func (x *Index) Remove(v int64, h seq.Handle) {
	set, ok := x.byValue[v]
	if !ok {
		return
	}
	delete(set, h)
	if len(set) == 0 {
		delete(x.byValue, v)
	}
}

// Any returns an arbitrary handle holding v, or false when none does.
func (x *Index) Any(v int64) (seq.Handle, bool) {
	for h := range x.byValue[v] {
		return h, true
	}
	return seq.None, false
}

// Contains reports whether any element currently holds v.
func (x *Index) Contains(v int64) bool {
	return len(x.byValue[v]) > 0
}

// Clear drops every association.
func (x *Index) Clear() {
	clear(x.byValue)
}
