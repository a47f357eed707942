package seq

import (
	"slices"
	"testing"
)

// collect drains the value iterator into a slice for comparison.
func collect(s *Sequence) []int64 {
	var out []int64
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

func pushBackAll(s *Sequence, vals ...int64) []Handle {
	handles := make([]Handle, 0, len(vals))
	for _, v := range vals {
		h := s.Alloc(v)
		s.PushBack(h)
		handles = append(handles, h)
	}
	return handles
}

func TestPushOrder(t *testing.T) {
	s := New()
	pushBackAll(s, 3, 1, 2)

	h := s.Alloc(5)
	s.PushFront(h)

	want := []int64{5, 3, 1, 2}
	if got := collect(s); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
}

func TestDetachMiddleAndEnds(t *testing.T) {
	s := New()
	hs := pushBackAll(s, 1, 2, 3, 4)

	s.Detach(hs[1]) // middle
	if got := collect(s); !slices.Equal(got, []int64{1, 3, 4}) {
		t.Fatalf("after middle detach: %v", got)
	}

	s.Detach(hs[0]) // head
	s.Detach(hs[3]) // tail
	if got := collect(s); !slices.Equal(got, []int64{3}) {
		t.Fatalf("after end detaches: %v", got)
	}
	if s.Head() != hs[2] || s.Tail() != hs[2] {
		t.Error("head/tail should both point at the surviving element")
	}

	s.Detach(hs[2])
	if s.Len() != 0 || s.Head() != None || s.Tail() != None {
		t.Error("empty sequence should have no head or tail")
	}
}

func TestFreeListReuse(t *testing.T) {
	s := New()
	hs := pushBackAll(s, 10, 20)

	s.Detach(hs[0])
	s.Release(hs[0])

	// The next allocation must reuse the released slot.
	h := s.Alloc(30)
	if h != hs[0] {
		t.Errorf("Alloc after Release = %d, want reused handle %d", h, hs[0])
	}
	if s.Value(h) != 30 {
		t.Errorf("reused slot value = %d, want 30", s.Value(h))
	}
}

func TestKth(t *testing.T) {
	s := New()
	pushBackAll(s, 5, 3, 1, 2)

	tests := []struct {
		k    int
		want int64
		ok   bool
	}{
		{0, 5, true},
		{1, 3, true},
		{3, 2, true},
		{4, 0, false},
		{-1, 0, false},
	}
	for _, tc := range tests {
		h, ok := s.Kth(tc.k)
		if ok != tc.ok {
			t.Errorf("Kth(%d) ok = %v, want %v", tc.k, ok, tc.ok)
			continue
		}
		if ok && s.Value(h) != tc.want {
			t.Errorf("Kth(%d) = %d, want %d", tc.k, s.Value(h), tc.want)
		}
	}
}

func TestReverse(t *testing.T) {
	s := New()
	hs := pushBackAll(s, 1, 2, 3, 4)

	s.Reverse()
	if got := collect(s); !slices.Equal(got, []int64{4, 3, 2, 1}) {
		t.Fatalf("after reverse: %v", got)
	}

	// Handles must survive a reverse untouched.
	if s.Value(hs[0]) != 1 || s.Value(hs[3]) != 4 {
		t.Error("reverse must not move values between slots")
	}

	s.Reverse()
	if got := collect(s); !slices.Equal(got, []int64{1, 2, 3, 4}) {
		t.Errorf("double reverse should restore order, got %v", got)
	}
}

func TestReverseSingleAndEmpty(t *testing.T) {
	s := New()
	s.Reverse() // empty: no-op
	if s.Len() != 0 {
		t.Fatal("reverse of empty changed length")
	}

	pushBackAll(s, 7)
	s.Reverse()
	if got := collect(s); !slices.Equal(got, []int64{7}) {
		t.Errorf("reverse of single element: %v", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want []int64
	}{
		{"by one", 1, []int64{4, 1, 2, 3}},
		{"by two", 2, []int64{3, 4, 1, 2}},
		{"full cycle", 4, []int64{1, 2, 3, 4}},
		{"modulo", 5, []int64{4, 1, 2, 3}},
		{"zero", 0, []int64{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			pushBackAll(s, 1, 2, 3, 4)
			s.Rotate(tc.k)
			if got := collect(s); !slices.Equal(got, tc.want) {
				t.Errorf("Rotate(%d) = %v, want %v", tc.k, got, tc.want)
			}
		})
	}
}

func TestRotateEmpty(t *testing.T) {
	s := New()
	s.Rotate(3) // must not panic
	if s.Len() != 0 {
		t.Error("rotate of empty changed length")
	}
}

func TestValuesRestartable(t *testing.T) {
	s := New()
	pushBackAll(s, 1, 2, 3)

	vals := s.Values()
	first := make([]int64, 0, 3)
	for v := range vals {
		first = append(first, v)
	}
	second := make([]int64, 0, 3)
	for v := range vals {
		second = append(second, v)
	}
	if !slices.Equal(first, second) {
		t.Errorf("second iteration %v differs from first %v", second, first)
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	s := New()
	pushBackAll(s, 1, 2, 3)

	count := 0
	for range s.Values() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break iterated %d values", count)
	}
}

func TestSetValue(t *testing.T) {
	s := New()
	hs := pushBackAll(s, 1, 2, 3)

	s.SetValue(hs[1], 99)
	if got := collect(s); !slices.Equal(got, []int64{1, 99, 3}) {
		t.Errorf("after SetValue: %v", got)
	}
}

func TestClear(t *testing.T) {
	s := New()
	pushBackAll(s, 1, 2, 3)
	s.Clear()

	if s.Len() != 0 || s.Head() != None {
		t.Error("clear left elements behind")
	}
	pushBackAll(s, 9)
	if got := collect(s); !slices.Equal(got, []int64{9}) {
		t.Errorf("sequence unusable after clear: %v", got)
	}
}
