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

// list.go collects the small pair-chain walks shared by the
// evaluator, the reader and the `list?`/`length`/`append` primitives,
// so each of those packages doesn't reinvent Floyd's cycle check.

// ListKind classifies how a pair chain ends, per spec.md §4.4's
// tortoise/hare contract: a list is either Nil-terminated (Proper), a
// cycle (Circular), or ends in a non-pair, non-nil tail (Dotted).
type ListKind uint8

const (
	ProperList ListKind = iota
	DottedList
	CircularList
)

// ListLen walks v (which must start at Nil or a Pair chain) using
// Floyd's tortoise/hare and reports its length alongside how it ends.
// For ProperList, n is the element count. For DottedList, n is the
// number of pairs walked before the non-pair tail. For CircularList,
// n is the cycle's period (spec.md §4.4, Testable Property #7) rather
// than the number of hops to the meeting point.
func ListLen(v Value) (n int, kind ListKind) {
	slow, fast := v, v
	for {
		if fast.IsNil() {
			return n, ProperList
		}
		if !fast.IsPair() {
			return n, DottedList
		}
		fast = fast.Pair().Cdr()
		n++
		if fast.IsNil() {
			return n, ProperList
		}
		if !fast.IsPair() {
			return n, DottedList
		}
		fast = fast.Pair().Cdr()
		n++
		slow = slow.Pair().Cdr()
		if fast.IsPair() && slow.IsPair() && fast.Pair().Same(slow.Pair()) {
			return cyclePeriod(fast.Pair()), CircularList
		}
	}
}

// cyclePeriod counts the pairs in the cycle containing p by walking
// cdrs from p until p is reached again.
func cyclePeriod(p PairRef) int {
	n := 1
	for cur := p.Cdr(); !cur.Pair().Same(p); cur = cur.Pair().Cdr() {
		n++
	}
	return n
}

// ToSlice flattens a proper list into a slice. Callers must have
// already confirmed properness (e.g. via ListLen) when that matters;
// ToSlice itself simply stops at the first non-pair cdr, treating it
// as the end of the (possibly improper) list.
func ToSlice(v Value) []Value {
	var out []Value
	for v.IsPair() {
		out = append(out, v.Pair().Car())
		v = v.Pair().Cdr()
	}
	return out
}

// FromSlice builds a proper list out of items, terminated by Nil.
func FromSlice(a *Arena, items []Value) Value {
	result := Nil()
	for i := len(items) - 1; i >= 0; i-- {
		result = PairVal(a.Cons(items[i], result))
	}
	return result
}

// FromSliceDotted builds a list out of items terminated by tail
// instead of Nil, i.e. the representation of `(a b . c)`.
func FromSliceDotted(a *Arena, items []Value, tail Value) Value {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = PairVal(a.Cons(items[i], result))
	}
	return result
}
