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

package symtab

import "testing"

func TestInternIdentity(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("foo")
	b := tbl.Intern("foo")
	if a != b {
		t.Fatalf("two interns of the same name must compare equal")
	}
	c := tbl.Intern("bar")
	if a == c {
		t.Fatalf("interns of different names must not compare equal")
	}
}

func TestInternAcrossTablesDiffer(t *testing.T) {
	t1 := NewTable()
	t2 := NewTable()
	a := t1.Intern("foo")
	b := t2.Intern("foo")
	if a == b {
		t.Fatalf("symbols from distinct tables must not compare equal even with the same name")
	}
}

func TestString(t *testing.T) {
	tbl := NewTable()
	s := tbl.Intern("hello")
	if s.String() != "hello" {
		t.Fatalf("expected %q, got %q", "hello", s.String())
	}
}

func TestGensymUnique(t *testing.T) {
	tbl := NewTable()
	seen := make(map[Symbol]bool)
	for i := 0; i < 1000; i++ {
		g := tbl.Gensym()
		if seen[g] {
			t.Fatalf("gensym produced a duplicate at iteration %d", i)
		}
		seen[g] = true
	}
}

func TestGensymTextInternsToSameSymbol(t *testing.T) {
	tbl := NewTable()
	g := tbl.Gensym()
	if tbl.Intern(g.String()) != g {
		t.Fatalf("interning the gensym's own text should resolve back to it")
	}
}

func TestZeroValueInvalid(t *testing.T) {
	var s Symbol
	if s.Valid() {
		t.Fatalf("zero Symbol must report invalid")
	}
}
