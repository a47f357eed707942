// store.go implements the sharded registry of named lists.
//
// A statlist.List provides no internal locking (by contract: single-threaded,
// see the package doc), so the server owns all synchronization. The registry
// partitions list names across 128 shards, each guarded by its own mutex.
// Two clients working on lists in different shards proceed in parallel; the
// per-shard mutex serializes access to any one list, which is exactly the
// external serialization the container requires.
//
// Names map to shards with xxhash64 modulo the shard count. Every access
// takes the exclusive lock — there is no read path, because even queries like
// L.SAMPLE advance the list's random source.
//
// Two-list commands (L.MERGE, L.SPLIT) need two shards at once. Locks are
// always acquired in ascending shard order, so two concurrent cross-shard
// commands can never deadlock against each other.

package main

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"statlist.lopezb.com/internal/statlist"
)

// shardCount balances contention against per-shard bookkeeping. Named lists
// are coarse objects, so fewer shards than a byte-value store suffice.
const shardCount = 128

// shard guards one slice of the name space.
type shard struct {
	mu    sync.Mutex
	lists map[string]*statlist.List
}

// Store routes list names to shards.
type Store struct {
	shards [shardCount]*shard
}

// NewStore creates an empty registry.
func NewStore() *Store {
	s := &Store{}
	for i := range s.shards {
		s.shards[i] = &shard{lists: make(map[string]*statlist.List)}
	}
	return s
}

func shardIndex(name string) int {
	return int(xxhash.Sum64String(name) % shardCount)
}

// With runs fn on the named list under its shard lock, creating the list if
// it does not exist yet. fn must not retain the list past its return.
func (s *Store) With(name string, fn func(l *statlist.List)) {
	sh := s.shards[shardIndex(name)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	l, ok := sh.lists[name]
	if !ok {
		l = statlist.New()
		sh.lists[name] = l
	}
	fn(l)
}

// View runs fn on the named list if it exists and reports whether it did.
// Missing lists are not created, so pure queries never leave empty lists
// behind. The shard lock is exclusive here too: queries like Sample mutate
// the list's random source.
func (s *Store) View(name string, fn func(l *statlist.List)) bool {
	sh := s.shards[shardIndex(name)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	l, ok := sh.lists[name]
	if ok {
		fn(l)
	}
	return ok
}

// WithPair runs fn on two named lists, creating either if absent. Shard locks
// are taken in ascending index order; when both names land in one shard a
// single lock is held. The names must differ.
func (s *Store) WithPair(nameA, nameB string, fn func(a, b *statlist.List)) {
	ia, ib := shardIndex(nameA), shardIndex(nameB)
	if ia == ib {
		sh := s.shards[ia]
		sh.mu.Lock()
		defer sh.mu.Unlock()
		fn(sh.get(nameA), sh.get(nameB))
		return
	}

	lo, hi := s.shards[ia], s.shards[ib]
	if ia > ib {
		lo, hi = hi, lo
	}
	lo.mu.Lock()
	defer lo.mu.Unlock()
	hi.mu.Lock()
	defer hi.mu.Unlock()
	fn(s.shards[ia].get(nameA), s.shards[ib].get(nameB))
}

// get returns the named list, creating it if needed. Caller holds the lock.
func (sh *shard) get(name string) *statlist.List {
	l, ok := sh.lists[name]
	if !ok {
		l = statlist.New()
		sh.lists[name] = l
	}
	return l
}

// Delete removes the named list entirely, reporting whether it existed.
func (s *Store) Delete(name string) bool {
	sh := s.shards[shardIndex(name)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, ok := sh.lists[name]
	if ok {
		delete(sh.lists, name)
	}
	return ok
}

// Exists reports whether the named list is present.
func (s *Store) Exists(name string) bool {
	sh := s.shards[shardIndex(name)]
	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, ok := sh.lists[name]
	return ok
}

// Count returns the number of named lists across all shards.
func (s *Store) Count() int {
	total := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		total += len(sh.lists)
		sh.mu.Unlock()
	}
	return total
}
