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

import (
	"testing"

	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/symtab"
)

func TestTruthy(t *testing.T) {
	if Bool(false).Truthy() {
		t.Fatalf("#f must be falsy")
	}
	cases := []Value{Bool(true), Nil(), Num(number.Int(0)), Str(NewString("")), None()}
	for _, v := range cases {
		if !v.Truthy() {
			t.Fatalf("everything but #f must be truthy, got falsy for tag %v", v.Tag())
		}
	}
}

func TestMustTagPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic reading Bool() off a Number value")
		}
	}()
	Num(number.Int(1)).Bool()
}

func TestSymbolIdentityThroughValue(t *testing.T) {
	st := symtab.NewTable()
	a := Sym(st.Intern("x"))
	b := Sym(st.Intern("x"))
	if a.Sym() != b.Sym() {
		t.Fatalf("two Values wrapping the same interned name must carry equal Symbols")
	}
}

func TestConsStability(t *testing.T) {
	a := NewArena()
	p := a.Cons(Num(number.Int(1)), Nil())
	if p.Car().Num().Int64() != 1 {
		t.Fatalf("expected car 1")
	}
	p.SetCar(Num(number.Int(2)))
	if p.Car().Num().Int64() != 2 {
		t.Fatalf("SetCar must be visible through the same PairRef")
	}
}

func TestConsStabilityAcrossGrowth(t *testing.T) {
	a := NewArena()
	first := a.Cons(Num(number.Int(42)), Nil())
	// force several block boundaries
	for i := 0; i < blockSize*3; i++ {
		a.Cons(Nil(), Nil())
	}
	if first.Car().Num().Int64() != 42 {
		t.Fatalf("a PairRef handed out before arena growth must still read correctly after growth")
	}
}

func TestSameIdentity(t *testing.T) {
	a := NewArena()
	p := a.Cons(Nil(), Nil())
	q := a.Cons(Nil(), Nil())
	if !p.Same(p) {
		t.Fatalf("a pair must be Same as itself")
	}
	if p.Same(q) {
		t.Fatalf("two distinct Cons calls must not be Same")
	}
}

func TestListLenProperAndDottedAndCircular(t *testing.T) {
	a := NewArena()
	proper := FromSlice(a, []Value{Num(number.Int(1)), Num(number.Int(2)), Num(number.Int(3))})
	if n, kind := ListLen(proper); kind != ProperList || n != 3 {
		t.Fatalf("expected proper list of length 3, got n=%d kind=%v", n, kind)
	}

	dotted := FromSliceDotted(a, []Value{Num(number.Int(1))}, Num(number.Int(2)))
	if _, kind := ListLen(dotted); kind != DottedList {
		t.Fatalf("a dotted list must report DottedList, got %v", kind)
	}

	// circular: (cdr p) == p, a 1-cycle whose period is 1
	p := a.Cons(Num(number.Int(1)), Nil())
	p.SetCdr(PairVal(p))
	if n, kind := ListLen(PairVal(p)); kind != CircularList || n != 1 {
		t.Fatalf("a circular list must report CircularList with its period, got n=%d kind=%v", n, kind)
	}
}

func TestEquality(t *testing.T) {
	a := NewArena()
	if !Eq(Bool(true), Bool(true)) {
		t.Fatalf("eq? on equal booleans must be true")
	}
	s1 := NewString("abc")
	s2 := NewString("abc")
	if Eq(Str(s1), Str(s2)) {
		t.Fatalf("eq? on two distinct string objects with equal content must be false")
	}
	if !Equal(Str(s1), Str(s2)) {
		t.Fatalf("equal? must compare string contents structurally")
	}

	l1 := FromSlice(a, []Value{Num(number.Int(1)), Num(number.Int(2))})
	l2 := FromSlice(a, []Value{Num(number.Int(1)), Num(number.Int(2))})
	if Eq(l1, l2) {
		t.Fatalf("eq? on two freshly consed equal lists must be false")
	}
	if !Equal(l1, l2) {
		t.Fatalf("equal? must recurse through pair structure")
	}
}

func TestEqualHandlesCycles(t *testing.T) {
	a := NewArena()
	p := a.Cons(Num(number.Int(1)), Nil())
	p.SetCdr(PairVal(p))
	q := a.Cons(Num(number.Int(1)), Nil())
	q.SetCdr(PairVal(q))
	// Must terminate rather than looping forever.
	_ = Equal(PairVal(p), PairVal(q))
}

func TestEnvShadowing(t *testing.T) {
	st := symtab.NewTable()
	x := st.Intern("x")
	top := NewEnv()
	top.Define(x, Num(number.Int(1)))
	child := top.Child()
	child.Define(x, Num(number.Int(2)))

	if child.Lookup(x).Num().Int64() != 2 {
		t.Fatalf("inner binding must shadow outer")
	}
	if top.Lookup(x).Num().Int64() != 1 {
		t.Fatalf("outer binding must be untouched by shadowing in a child frame")
	}
}

func TestEnvSetNeverCreates(t *testing.T) {
	st := symtab.NewTable()
	top := NewEnv()
	defer func() {
		if recover() == nil {
			t.Fatalf("set! on an unbound variable must panic")
		}
	}()
	top.Set(st.Intern("never-defined"), Bool(true))
}

func TestEnvSetMutatesNearestFrame(t *testing.T) {
	st := symtab.NewTable()
	x := st.Intern("x")
	top := NewEnv()
	top.Define(x, Num(number.Int(1)))
	child := top.Child()
	child.Set(x, Num(number.Int(9)))
	if top.Lookup(x).Num().Int64() != 9 {
		t.Fatalf("set! must mutate the frame that owns the binding, not shadow it")
	}
}

func TestArenaCollectFreesUnreachable(t *testing.T) {
	a := NewArena()
	reachable := a.Cons(Num(number.Int(1)), Nil())
	_ = a.Cons(Num(number.Int(2)), Nil()) // unreachable after this point

	freed := a.Collect(func(mark func(PairRef)) {
		mark(reachable)
	})
	if freed != 1 {
		t.Fatalf("expected exactly 1 freed cell, got %d", freed)
	}
	if reachable.Car().Num().Int64() != 1 {
		t.Fatalf("a marked-reachable pair must survive collection")
	}
}

func TestArenaCollectRecyclesFreedCells(t *testing.T) {
	a := NewArena()
	_ = a.Cons(Num(number.Int(1)), Nil())
	before := a.Len()
	a.Collect(func(mark func(PairRef)) {}) // mark nothing: everything dies
	a.Cons(Nil(), Nil())
	after := a.Len()
	if after != before {
		t.Fatalf("a freed cell must be recycled by the next Cons rather than growing the arena, before=%d after=%d", before, after)
	}
}

func TestArenaUseAfterFreePanics(t *testing.T) {
	a := NewArena()
	p := a.Cons(Num(number.Int(1)), Nil())
	a.Collect(func(mark func(PairRef)) {}) // p is now freed
	defer func() {
		if recover() == nil {
			t.Fatalf("reading a freed PairRef must panic")
		}
	}()
	p.Car()
}
