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

package primitive

import (
	"testing"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/value"
)

func TestDispatchAdd(t *testing.T) {
	a := value.NewArena()
	got := Dispatch(opcode.OpAdd, a, []value.Value{value.Num(number.Int(1)), value.Num(number.Int(2)), value.Num(number.Int(3))})
	if got.Num().Int64() != 6 {
		t.Fatalf("(+ 1 2 3) = %v, want 6", got)
	}
}

func TestDispatchConsCarCdr(t *testing.T) {
	a := value.NewArena()
	p := Dispatch(opcode.OpCons, a, []value.Value{value.Num(number.Int(1)), value.Num(number.Int(2))})
	if !p.IsPair() {
		t.Fatalf("cons must produce a pair")
	}
	if Dispatch(opcode.OpCar, a, []value.Value{p}).Num().Int64() != 1 {
		t.Fatalf("car of (cons 1 2) must be 1")
	}
	if Dispatch(opcode.OpCdr, a, []value.Value{p}).Num().Int64() != 2 {
		t.Fatalf("cdr of (cons 1 2) must be 2")
	}
}

func TestDispatchListRefOutOfRangePanics(t *testing.T) {
	a := value.NewArena()
	lst := value.FromSlice(a, []value.Value{value.Num(number.Int(1)), value.Num(number.Int(2))})
	defer func() {
		r := recover()
		e, ok := r.(*errkind.Error)
		if !ok {
			t.Fatalf("list-ref past the end must panic with *errkind.Error, got %v", r)
		}
		if e.Kind != errkind.RangeError {
			t.Fatalf("list-ref past the end must raise range-error, got %v", e.Kind)
		}
	}()
	Dispatch(opcode.OpListRef, a, []value.Value{lst, value.Num(number.Int(5))})
}

func TestDispatchLengthOfCircularListReturnsPeriod(t *testing.T) {
	a := value.NewArena()
	p := a.Cons(value.Num(number.Int(1)), value.Nil())
	p.SetCdr(value.PairVal(p))
	got := Dispatch(opcode.OpLength, a, []value.Value{value.PairVal(p)})
	if got.Num().Int64() != 1 {
		t.Fatalf("length of a 1-cycle must be 1 (the period), got %v", got)
	}
}

func TestDispatchIsListAcceptsCircular(t *testing.T) {
	a := value.NewArena()
	p := a.Cons(value.Num(number.Int(1)), value.Nil())
	p.SetCdr(value.PairVal(p))
	got := Dispatch(opcode.OpIsList, a, []value.Value{value.PairVal(p)})
	if !got.Bool() {
		t.Fatalf("list? must return #t for a circular list per spec.md §4.4")
	}
}

func TestDispatchEqualityLevels(t *testing.T) {
	a := value.NewArena()
	s1 := value.Str(value.NewString("abc"))
	s2 := value.Str(value.NewString("abc"))

	if Dispatch(opcode.OpEq, a, []value.Value{s1, s2}).Bool() {
		t.Fatalf("eq? on two distinct string objects must be false")
	}
	if !Dispatch(opcode.OpEqual, a, []value.Value{s1, s2}).Bool() {
		t.Fatalf("equal? must compare string contents structurally")
	}
	if !Dispatch(opcode.OpNumEq, a, []value.Value{value.Num(number.Int(1)), value.Num(number.Float(1.0))}).Bool() {
		t.Fatalf("= must hold across numeric arms")
	}
}

func TestDispatchNotImplementedBytevectorRaisesDomainError(t *testing.T) {
	a := value.NewArena()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("a reserved-but-unimplemented opcode must panic rather than silently succeed")
		}
		e, ok := r.(*errkind.Error)
		if !ok || e.Kind != errkind.DomainError {
			t.Fatalf("a reserved-but-unimplemented opcode must raise domain-error, got %v", r)
		}
	}()
	Dispatch(opcode.OpBytevector, a, nil)
}

func TestSQLValueConversions(t *testing.T) {
	if got := sqlValue(nil); got.Bool() != false {
		t.Fatalf("a SQL NULL must convert to #f")
	}
	if got := sqlValue(int64(42)); !got.IsNumber() || got.Num().Int64() != 42 {
		t.Fatalf("an int64 scan result must convert to a Number Int, got %v", got)
	}
	if got := sqlValue([]byte("hi")); !got.IsString() || got.Str().String() != "hi" {
		t.Fatalf("a []byte scan result (text columns) must convert to a String, got %v", got)
	}
}

func TestDispatchVectorRefSetRoundtrip(t *testing.T) {
	a := value.NewArena()
	vec := Dispatch(opcode.OpMakeVector, a, []value.Value{value.Num(number.Int(3)), value.Bool(false)})
	Dispatch(opcode.OpVectorSet, a, []value.Value{vec, value.Num(number.Int(1)), value.Num(number.Int(42))})
	got := Dispatch(opcode.OpVectorRef, a, []value.Value{vec, value.Num(number.Int(1))})
	if got.Num().Int64() != 42 {
		t.Fatalf("vector-set! then vector-ref must round-trip, got %v", got)
	}
}
