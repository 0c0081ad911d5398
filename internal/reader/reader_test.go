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

package reader

import (
	"testing"

	"github.com/launix-de/scmcore/internal/symtab"
	"github.com/launix-de/scmcore/internal/value"
)

func readOne(t *testing.T, src string) value.Value {
	t.Helper()
	r := New(symtab.NewTable(), value.NewArena())
	r.Feed(src)
	v, ok, err := r.Next()
	if err != nil {
		t.Fatalf("read %q: %v", src, err)
	}
	if !ok {
		t.Fatalf("read %q: no form produced", src)
	}
	return v
}

func TestReadDottedPair(t *testing.T) {
	v := readOne(t, "(1 . 2)")
	if !v.IsPair() {
		t.Fatalf("expected a pair")
	}
	if v.Pair().Car().Num().Int64() != 1 || v.Pair().Cdr().Num().Int64() != 2 {
		t.Fatalf("expected (1 . 2), got car=%v cdr=%v", v.Pair().Car(), v.Pair().Cdr())
	}
}

func TestReadVector(t *testing.T) {
	v := readOne(t, "#(1 2 3)")
	if !v.IsVector() || len(v.Vec().Items) != 3 {
		t.Fatalf("expected a 3-element vector, got %v", v)
	}
}

func TestReadBooleans(t *testing.T) {
	if !readOne(t, "#t").Bool() {
		t.Fatalf("#t must read as true")
	}
	if readOne(t, "#f").Bool() {
		t.Fatalf("#f must read as false")
	}
}

func TestReadCharLiteral(t *testing.T) {
	if readOne(t, `#\a`).Char() != 'a' {
		t.Fatalf("expected #\\a to read as 'a'")
	}
	if readOne(t, `#\space`).Char() != ' ' {
		t.Fatalf("expected #\\space to read as a literal space")
	}
}

func TestReadNumericForms(t *testing.T) {
	if readOne(t, "42").Num().Int64() != 42 {
		t.Fatalf("expected 42 to read as an Int")
	}
	if !readOne(t, "3.5").Num().IsFloat() {
		t.Fatalf("expected 3.5 to read as a Float")
	}
	if !readOne(t, "1+2i").Num().IsComplex() {
		t.Fatalf("expected 1+2i to read as a Complex")
	}
}

func TestReadQuoteSugar(t *testing.T) {
	v := readOne(t, "'x")
	items := value.ToSlice(v)
	if len(items) != 2 || !items[0].IsSymbol() || items[0].Sym().String() != "quote" {
		t.Fatalf("'x must expand to (quote x), got %v", v)
	}
}

func TestReadUnterminatedListAwaitsMoreInput(t *testing.T) {
	r := New(symtab.NewTable(), value.NewArena())
	r.Feed("(1 2")
	_, ok, err := r.Next()
	if ok {
		t.Fatalf("an unterminated list must not produce a complete form")
	}
	if err == nil {
		t.Fatalf("an unterminated list must report an error the host can distinguish as incomplete")
	}
	r.Feed(" 3)")
	v, ok, err := r.Next()
	if err != nil || !ok {
		t.Fatalf("feeding the rest of the form must let Next succeed, err=%v ok=%v", err, ok)
	}
	if n, kind := value.ListLen(v); kind != value.ProperList || n != 3 {
		t.Fatalf("expected a proper 3-element list once fed completely, got %v", v)
	}
}

func TestReadAllStopsAtIncompleteForm(t *testing.T) {
	r := New(symtab.NewTable(), value.NewArena())
	r.Feed("1 2 (3")
	forms, err := r.ReadAll()
	if err == nil {
		t.Fatalf("ReadAll must report the trailing incomplete form's error")
	}
	if err.Error() != "syntax-error: "+ErrUnterminated {
		t.Fatalf("expected the unterminated-list error, got %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected the 2 complete forms read before the incomplete one, got %d", len(forms))
	}
}
