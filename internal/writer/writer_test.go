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

package writer

import (
	"testing"

	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/value"
)

func TestWriteQuotesStringsDisplayDoesNot(t *testing.T) {
	s := value.Str(value.NewString(`hi "there"`))
	if got := Write(s); got != `"hi \"there\""` {
		t.Fatalf("Write must escape and quote strings, got %q", got)
	}
	if got := Display(s); got != `hi "there"` {
		t.Fatalf("Display must print raw string content, got %q", got)
	}
}

func TestWriteCharVsDisplayChar(t *testing.T) {
	c := value.Char('a')
	if got := Write(c); got != `#\a` {
		t.Fatalf("Write must use #\\x char notation, got %q", got)
	}
	if got := Display(c); got != "a" {
		t.Fatalf("Display must print the literal rune, got %q", got)
	}
}

func TestWriteNamedChars(t *testing.T) {
	if got := Write(value.Char(' ')); got != `#\space` {
		t.Fatalf("expected #\\space, got %q", got)
	}
	if got := Write(value.Char('\n')); got != `#\newline` {
		t.Fatalf("expected #\\newline, got %q", got)
	}
}

func TestWriteList(t *testing.T) {
	a := value.NewArena()
	l := value.FromSlice(a, []value.Value{value.Num(number.Int(1)), value.Num(number.Int(2))})
	if got := Write(l); got != "(1 2)" {
		t.Fatalf("expected (1 2), got %q", got)
	}
}

func TestWriteDottedPair(t *testing.T) {
	a := value.NewArena()
	p := a.Cons(value.Num(number.Int(1)), value.Num(number.Int(2)))
	if got := Write(value.PairVal(p)); got != "(1 . 2)" {
		t.Fatalf("expected (1 . 2), got %q", got)
	}
}

func TestWriteCircularListEmitsEllipsis(t *testing.T) {
	a := value.NewArena()
	p := a.Cons(value.Num(number.Int(1)), value.Nil())
	p.SetCdr(value.PairVal(p))
	got := Write(value.PairVal(p))
	if got != "(1 ...)" {
		t.Fatalf("expected a cycle to render as (1 ...), got %q", got)
	}
}

func TestWriteVector(t *testing.T) {
	v := value.VecVal(value.NewVector([]value.Value{value.Num(number.Int(1)), value.Bool(true)}))
	if got := Write(v); got != "#(1 #t)" {
		t.Fatalf("expected #(1 #t), got %q", got)
	}
}
