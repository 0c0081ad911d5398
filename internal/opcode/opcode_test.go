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

package opcode

import "testing"

func TestEverySyntaxKeywordIsNamedAndRoundtrips(t *testing.T) {
	for op := OpNone + 1; op < opSyntaxEnd; op++ {
		name := Name(op)
		if name == "" {
			t.Fatalf("syntax op %d has no name", op)
		}
		got, ok := Lookup(name)
		if !ok || got != op {
			t.Fatalf("Lookup(%q) = %v,%v; want %v,true", name, got, ok, op)
		}
		if !IsSyntax(op) || IsPrimitive(op) {
			t.Fatalf("%q must classify as syntax, not primitive", name)
		}
	}
}

func TestEveryPrimitiveIsNamedAndRoundtrips(t *testing.T) {
	for op := opSyntaxEnd + 1; op < opPrimitiveEnd; op++ {
		name := Name(op)
		if name == "" {
			t.Fatalf("primitive op %d has no name", op)
		}
		got, ok := Lookup(name)
		if !ok || got != op {
			t.Fatalf("Lookup(%q) = %v,%v; want %v,true", name, got, ok, op)
		}
		if !IsPrimitive(op) || IsSyntax(op) {
			t.Fatalf("%q must classify as primitive, not syntax", name)
		}
	}
}

func TestElseAndArrowAreSyntaxSentinels(t *testing.T) {
	if !IsSyntax(OpElse) || !IsSyntax(OpArrow) {
		t.Fatalf("else/=> must classify as syntax-side sentinels so the evaluator can recognise them by identity")
	}
}

func TestAllCoversEveryNamedOp(t *testing.T) {
	all := All()
	if len(all) != len(names) {
		t.Fatalf("All() returned %d ops, want %d (one per named entry)", len(all), len(names))
	}
}

func TestLookupUnknownNameFails(t *testing.T) {
	if _, ok := Lookup("this-is-not-a-builtin"); ok {
		t.Fatalf("Lookup of an unregistered name must report ok=false")
	}
}
