/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package value

import "fmt"

// blockSize is the number of cells per arena block. Blocks are
// allocated as fixed-size arrays behind a pointer so that a cell's
// address, once handed out as a PairRef, never moves even while the
// arena keeps growing — the stability spec.md §3.2 and §4.4 require.
const blockSize = 4096

type cell struct {
	car, cdr Value
	mark     bool
	free     bool
}

// Arena is the cons heap: a growable, append-mostly store of Pair
// cells with a free list for recycling cells the collector reclaims.
type Arena struct {
	blocks []*[blockSize]cell
	n      int
	free   []int32
	sense  bool
}

// NewArena returns an empty cons heap.
func NewArena() *Arena {
	return &Arena{}
}

// PairRef is a stable reference to one cell of an Arena. Two PairRefs
// are the same pair exactly when both fields compare equal, which is
// what `eq?` on pairs reduces to (spec.md §4.3.1).
type PairRef struct {
	arena *Arena
	idx   int32
}

func (a *Arena) at(idx int32) *cell {
	return &a.blocks[idx/blockSize][idx%blockSize]
}

// Cons allocates a new pair holding car/cdr, reusing a freed cell if
// one is available.
func (a *Arena) Cons(car, cdr Value) PairRef {
	var idx int32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = int32(a.n)
		if int(idx)/blockSize == len(a.blocks) {
			a.blocks = append(a.blocks, &[blockSize]cell{})
		}
		a.n++
	}
	*a.at(idx) = cell{car: car, cdr: cdr, mark: a.sense}
	return PairRef{arena: a, idx: idx}
}

func (p PairRef) checkLive() {
	c := p.arena.at(p.idx)
	if c.free {
		panic(fmt.Sprintf("internal error: use of freed pair at arena index %d", p.idx))
	}
}

func (p PairRef) Car() Value {
	p.checkLive()
	return p.arena.at(p.idx).car
}

func (p PairRef) Cdr() Value {
	p.checkLive()
	return p.arena.at(p.idx).cdr
}

func (p PairRef) SetCar(v Value) {
	p.checkLive()
	p.arena.at(p.idx).car = v
}

func (p PairRef) SetCdr(v Value) {
	p.checkLive()
	p.arena.at(p.idx).cdr = v
}

// Same reports whether p and q name the same cell in the same arena.
func (p PairRef) Same(q PairRef) bool {
	return p.arena == q.arena && p.idx == q.idx
}

// Len returns the number of arena slots ever allocated, live or
// freed (a recycled slot is not counted twice) — used by internal/gc
// for dump reporting and for its growth threshold.
func (a *Arena) Len() int { return a.n }

// Collect runs one mark-sweep cycle: markRoots is called with the
// freshly-flipped "reachable" sense so the caller (internal/gc) can
// mark every cell reachable from its roots via the mark callback; Collect then
// sweeps every unmarked, non-free cell onto the free list, clearing
// its car/cdr so the host GC can reclaim whatever they pointed to.
// Cells allocated after Collect returns carry the new sense already,
// so they read as "reached" until the next cycle actually marks them
// — the invariant spec.md §4.5 asks for (new allocations never freed
// before the collector has had a chance to evaluate them).
func (a *Arena) Collect(markRoots func(mark func(PairRef))) (freed int) {
	newSense := !a.sense
	markRoots(func(p PairRef) {
		p.arena.at(p.idx).mark = newSense
	})
	for i := 0; i < a.n; i++ {
		c := a.blocks[i/blockSize][i%blockSize]
		if c.free || c.mark == newSense {
			continue
		}
		cl := &a.blocks[i/blockSize][i%blockSize]
		cl.free = true
		cl.car = Value{}
		cl.cdr = Value{}
		a.free = append(a.free, int32(i))
		freed++
	}
	a.sense = newSense
	return freed
}

// DumpCell exposes one cell's raw state for internal/gc's debug dump.
func (a *Arena) DumpCell(i int) (mark, free bool, car, cdr Value) {
	c := a.blocks[i/blockSize][i%blockSize]
	return c.mark, c.free, c.car, c.cdr
}
