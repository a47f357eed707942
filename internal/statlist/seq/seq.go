// Package seq implements the order sequence: a doubly linked list of
// elements stored in an arena and addressed by stable integer handles.
//
// Why an arena instead of pointer-linked nodes?
// =============================================
//
// Several independent indices (the location index, the sampling pool) need to
// refer to the same element as the list itself. If those references were raw
// pointers, a bug in any one index could keep a detached node alive or, worse,
// reach a node after it was recycled. With an arena, the sequence alone owns
// the storage: every outside reference is a Handle, which is just an index
// into the arena slice. A released slot goes onto a free list and is reused by
// the next allocation, so the arena never shrinks but also never leaks.
//
// Handles stay valid across Reverse and Rotate because those operations only
// rewrite prev/next links; no element ever moves inside the arena.
package seq

import "iter"

// Handle identifies one element in the arena. Handles are stable for the
// lifetime of the element: they survive link rewrites (Reverse, Rotate) and
// in-place value updates, and are invalidated only by Release.
type Handle int32

// None is the null handle, used for absent links and failed lookups.
const None Handle = -1

// element is one arena slot: a value plus its ordering links.
type element struct {
	value int64
	prev  Handle
	next  Handle
}

// Sequence is the canonical total order of all current elements. The zero
// value is not usable; call New.
type Sequence struct {
	arena  []element
	free   []Handle // released slots awaiting reuse
	head   Handle
	tail   Handle
	length int
}

// New returns an empty sequence.
func New() *Sequence {
	return &Sequence{head: None, tail: None}
}

// Alloc creates a detached element holding value and returns its handle.
// The element is not part of the order until PushBack or PushFront links it.
func (s *Sequence) Alloc(value int64) Handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		s.arena[h] = element{value: value, prev: None, next: None}
		return h
	}
	s.arena = append(s.arena, element{value: value, prev: None, next: None})
	return Handle(len(s.arena) - 1)
}

// Release returns a detached element's slot to the free list. The handle must
// not be used afterwards. Releasing a still-linked element corrupts the list;
// callers detach first.
func (s *Sequence) Release(h Handle) {
	s.free = append(s.free, h)
}

// PushBack links a detached element at the tail. O(1).
func (s *Sequence) PushBack(h Handle) {
	if s.tail == None {
		s.head, s.tail = h, h
	} else {
		s.arena[s.tail].next = h
		s.arena[h].prev = s.tail
		s.tail = h
	}
	s.length++
}

// PushFront links a detached element at the head. O(1).
func (s *Sequence) PushFront(h Handle) {
	if s.head == None {
		s.head, s.tail = h, h
	} else {
		s.arena[h].next = s.head
		s.arena[s.head].prev = h
		s.head = h
	}
	s.length++
}

// Detach unlinks the element from the order, leaving its slot allocated so
// the value can still be read (PopBack reads after detaching). O(1).
func (s *Sequence) Detach(h Handle) {
	e := &s.arena[h]
	if e.prev != None {
		s.arena[e.prev].next = e.next
	} else {
		s.head = e.next
	}
	if e.next != None {
		s.arena[e.next].prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev, e.next = None, None
	s.length--
}

// Value reads the element's current value.
func (s *Sequence) Value(h Handle) int64 { return s.arena[h].value }

// SetValue overwrites the element's value in place. Links and handle are
// untouched; callers are responsible for keeping any value-keyed indices in
// step.
func (s *Sequence) SetValue(h Handle, v int64) { s.arena[h].value = v }

// Head returns the first element's handle, or None when empty.
func (s *Sequence) Head() Handle { return s.head }

// Tail returns the last element's handle, or None when empty.
func (s *Sequence) Tail() Handle { return s.tail }

// Next returns the handle after h, or None at the tail.
func (s *Sequence) Next(h Handle) Handle { return s.arena[h].next }

// Len returns the number of linked elements.
func (s *Sequence) Len() int { return s.length }

// Kth walks to the 0-based position k and returns its handle. O(n).
// Returns (None, false) when k is out of range.
func (s *Sequence) Kth(k int) (Handle, bool) {
	if k < 0 || k >= s.length {
		return None, false
	}
	h := s.head
	for ; k > 0; k-- {
		h = s.arena[h].next
	}
	return h, true
}

// Values iterates the current values in order. The returned sequence is lazy
// and restartable: each range over it walks the list fresh. Mutating the
// sequence mid-iteration is not supported.
func (s *Sequence) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for h := s.head; h != None; h = s.arena[h].next {
			if !yield(s.arena[h].value) {
				return
			}
		}
	}
}

// Handles iterates the current handles in order, for callers that need
// element identity rather than values (index rebuilds).
func (s *Sequence) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := s.head; h != None; h = s.arena[h].next {
			if !yield(h) {
				return
			}
		}
	}
}

// Reverse flips the link direction of the whole list in O(n). Values and
// handles are unchanged, so no value-keyed index is affected.
func (s *Sequence) Reverse() {
	cur := s.head
	s.tail = s.head
	var prev Handle = None
	for cur != None {
		next := s.arena[cur].next
		s.arena[cur].next = prev
		s.arena[cur].prev = next
		prev = cur
		cur = next
	}
	s.head = prev
}

// Rotate moves the last k%len elements to the front by relinking at the
// boundary. O(n) to locate the split, O(1) to reconnect. The value multiset
// is unchanged, so no index is affected.
func (s *Sequence) Rotate(k int) {
	if s.length == 0 {
		return
	}
	k %= s.length
	if k == 0 {
		return
	}
	newTail := s.head
	for steps := s.length - k - 1; steps > 0; steps-- {
		newTail = s.arena[newTail].next
	}
	newHead := s.arena[newTail].next

	s.arena[newTail].next = None
	s.arena[newHead].prev = None
	s.arena[s.tail].next = s.head
	s.arena[s.head].prev = s.tail

	s.head = newHead
	s.tail = newTail
}

// Clear unlinks and releases every element. Handles from before the call are
// all invalid afterwards.
func (s *Sequence) Clear() {
	s.arena = s.arena[:0]
	s.free = s.free[:0]
	s.head, s.tail = None, None
	s.length = 0
}
