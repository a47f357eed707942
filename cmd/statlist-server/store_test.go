package main

import (
	"fmt"
	"sync"
	"testing"

	"statlist.lopezb.com/internal/statlist"
)

func TestStoreWithCreatesViewDoesNot(t *testing.T) {
	s := NewStore()

	if s.View("absent", func(l *statlist.List) { t.Error("fn called for absent list") }) {
		t.Error("View reported an absent list as present")
	}
	if s.Exists("absent") {
		t.Error("View created the list")
	}

	s.With("jobs", func(l *statlist.List) { l.PushBack(1) })
	if !s.Exists("jobs") {
		t.Error("With did not create the list")
	}

	called := false
	if !s.View("jobs", func(l *statlist.List) {
		called = true
		if l.Len() != 1 {
			t.Errorf("Len() = %d, want 1", l.Len())
		}
	}) {
		t.Error("View missed an existing list")
	}
	if !called {
		t.Error("View did not run fn")
	}
}

func TestStoreDeleteAndCount(t *testing.T) {
	s := NewStore()
	for i := 0; i < 10; i++ {
		s.With(fmt.Sprintf("list-%d", i), func(l *statlist.List) {})
	}

	if got := s.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}
	if !s.Delete("list-3") {
		t.Error("Delete() = false for an existing list")
	}
	if s.Delete("list-3") {
		t.Error("Delete() = true for an already deleted list")
	}
	if got := s.Count(); got != 9 {
		t.Errorf("Count() = %d after delete, want 9", got)
	}
}

func TestStoreWithPair(t *testing.T) {
	s := NewStore()
	s.With("left", func(l *statlist.List) { l.PushBack(1) })

	s.WithPair("left", "right", func(a, b *statlist.List) {
		if a.Len() != 1 {
			t.Errorf("first list Len() = %d, want 1", a.Len())
		}
		if b.Len() != 0 {
			t.Errorf("second list Len() = %d, want 0", b.Len())
		}
		b.Merge(a)
	})

	if !s.Exists("right") {
		t.Error("WithPair did not create the second list")
	}
	s.View("right", func(l *statlist.List) {
		if l.Len() != 1 {
			t.Errorf("merged Len() = %d, want 1", l.Len())
		}
	})
}

// Opposite-order pairs exercise the ascending-shard lock ordering; with a
// naive argument-order acquisition this test deadlocks under -race or -count.
func TestStoreWithPairOppositeOrders(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.WithPair("alpha", "omega", func(a, b *statlist.List) { a.PushBack(1) })
		}()
		go func() {
			defer wg.Done()
			s.WithPair("omega", "alpha", func(a, b *statlist.List) { a.PushBack(1) })
		}()
	}
	wg.Wait()

	total := 0
	s.View("alpha", func(l *statlist.List) { total += l.Len() })
	s.View("omega", func(l *statlist.List) { total += l.Len() })
	if total != 100 {
		t.Errorf("total pushed = %d, want 100", total)
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			name := fmt.Sprintf("list-%d", g%4)
			for i := 0; i < 200; i++ {
				s.With(name, func(l *statlist.List) { l.PushBack(int64(i)) })
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		s.View(fmt.Sprintf("list-%d", i), func(l *statlist.List) { total += l.Len() })
	}
	if total != 8*200 {
		t.Errorf("total elements = %d, want %d", total, 8*200)
	}
}
