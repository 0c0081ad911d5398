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

// Eq implements `eq?`: identity for heap objects, value equality for
// the small immediates where Scheme programs expect it to just work
// (booleans, chars, the empty list, interns, symbols, numbers).
func Eq(a, b Value) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagNone, TagNil:
		return true
	case TagBool:
		return a.Bool() == b.Bool()
	case TagChar:
		return a.Char() == b.Char()
	case TagIntern:
		return a.Intern() == b.Intern()
	case TagSymbol:
		return a.Sym() == b.Sym()
	case TagNumber:
		return a.Num() == b.Num()
	case TagPair:
		return a.Pair().Same(b.Pair())
	case TagString:
		return a.Str() == b.Str()
	case TagVector:
		return a.Vec() == b.Vec()
	case TagPort:
		return a.Port() == b.Port()
	case TagFunction:
		return a.Func() == b.Func()
	case TagProcedure:
		return a.Proc() == b.Proc()
	case TagEnv:
		return a.Env() == b.Env()
	}
	return false
}

// Eqv implements `eqv?`. This implementation draws no exactness
// distinction finer than the numeric tower already does, so it
// coincides with Eq — matching the teacher's own (exactness-free)
// numeric model.
func Eqv(a, b Value) bool {
	return Eq(a, b)
}

// Equal implements `equal?`: recursive structural equality over
// pairs, strings and vectors, falling back to Eqv everywhere else.
// Pair recursion is cycle-safe: a pair of (left, right) cells visited
// once before is taken as equal without descending again, which is
// enough to terminate on the equal-shaped-cycle case spec.md §4.3.3
// describes without needing a general graph-isomorphism check.
func Equal(a, b Value) bool {
	return equalRec(a, b, map[[2]PairRef]bool{})
}

func equalRec(a, b Value, seen map[[2]PairRef]bool) bool {
	if a.tag != b.tag {
		return false
	}
	switch a.tag {
	case TagString:
		return string(a.Str().Runes) == string(b.Str().Runes)
	case TagVector:
		av, bv := a.Vec(), b.Vec()
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !equalRec(av.Items[i], bv.Items[i], seen) {
				return false
			}
		}
		return true
	case TagPair:
		ap, bp := a.Pair(), b.Pair()
		key := [2]PairRef{ap, bp}
		if seen[key] {
			return true
		}
		seen[key] = true
		return equalRec(ap.Car(), bp.Car(), seen) && equalRec(ap.Cdr(), bp.Cdr(), seen)
	default:
		return Eqv(a, b)
	}
}
