// Package pool implements the uniform sampling pool: a slice of element
// handles plus a reverse-position map, giving O(1) insert, O(1) removal and
// O(1) uniform sampling over the current elements.
//
// Removal uses the classic swap-remove: the departing slot is overwritten
// with the slice's last entry, whose reverse-index entry is then repointed.
// Order inside the pool is meaningless — only membership matters — so the
// swap costs nothing semantically.
package pool

import (
	"math/rand/v2"

	"statlist.lopezb.com/internal/statlist/seq"
)

// Pool is the sampling pool. The zero value is not usable; call New or
// NewSeeded.
type Pool struct {
	items []seq.Handle
	pos   map[seq.Handle]int // handle -> index into items
	rng   *rand.Rand
}

// New returns an empty pool with a non-deterministically seeded source.
// Each pool owns its source; nothing here touches the process-wide generator,
// so independent pools never contend or correlate.
func New() *Pool {
	return NewSeeded(rand.Uint64())
}

// NewSeeded returns an empty pool whose sampling sequence is fully determined
// by seed. Intended for reproducible tests.
func NewSeeded(seed uint64) *Pool {
	return &Pool{
		pos: make(map[seq.Handle]int),
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Insert appends h to the pool. O(1). Inserting a handle twice corrupts the
// reverse index; the orchestrator's fan-out guarantees uniqueness.
func (p *Pool) Insert(h seq.Handle) {
	p.pos[h] = len(p.items)
	p.items = append(p.items, h)
}

// Remove deletes h via swap-remove. O(1). Absent handles are a no-op.
func (p *Pool) Remove(h seq.Handle) {
	i, ok := p.pos[h]
	if !ok {
		return
	}
	last := len(p.items) - 1
	if i != last {
		p.items[i] = p.items[last]
		p.pos[p.items[i]] = i
	}
	p.items = p.items[:last]
	delete(p.pos, h)
}

// Sample returns a uniformly chosen handle, or false when the pool is empty.
func (p *Pool) Sample() (seq.Handle, bool) {
	if len(p.items) == 0 {
		return seq.None, false
	}
	return p.items[p.rng.IntN(len(p.items))], true
}

// Len returns the number of pooled handles.
func (p *Pool) Len() int {
	return len(p.items)
}

// Clear empties the pool. The random source is kept, so a seeded pool stays
// reproducible across clears.
func (p *Pool) Clear() {
	p.items = p.items[:0]
	clear(p.pos)
}
