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

// Package reader is the external reader collaborator (spec.md §6): a
// narrow "character source → next Value" contract. Grounded on
// scm/parser.go's tokenize/readFrom, retargeted at the arena-backed
// Pair/Value types instead of teacher's []Scmer slices, and extended
// with vectors, char literals and quasiquote sugar.
package reader

import (
	"strconv"
	"strings"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/symtab"
	"github.com/launix-de/scmcore/internal/value"
)

// ErrUnterminated is the message a Reader panics/returns with when
// input ends before a list or vector's closing paren — hosts (like
// internal/interp.Repl) match on this to switch to a continuation
// prompt instead of reporting a real syntax error.
const ErrUnterminated = "expecting matching )"

// Reader incrementally tokenizes and parses Scheme source text, one
// top-level form at a time. Feed appends more text to parse; Next
// pops the next complete form, if any is buffered.
type Reader struct {
	symtab *symtab.Table
	arena  *value.Arena
	toks   []token
}

// New builds a Reader that interns symbols through symtab and builds
// pairs in arena.
func New(symtab *symtab.Table, arena *value.Arena) *Reader {
	return &Reader{symtab: symtab, arena: arena}
}

// Feed tokenizes src and appends the tokens to the pending buffer.
func (r *Reader) Feed(src string) {
	r.toks = append(r.toks, tokenize(src)...)
}

// Next pops and parses one top-level form. ok is false if the pending
// buffer is empty (not an error — just nothing more to read yet).
func (r *Reader) Next() (v value.Value, ok bool, err error) {
	if len(r.toks) == 0 {
		return value.Value{}, false, nil
	}
	saved := r.toks
	defer func() {
		if rec := recover(); rec != nil {
			if e, isErr := rec.(*errkind.Error); isErr {
				// Restore the pre-attempt token buffer: a failed parse
				// (most commonly an unterminated list) must not lose
				// the tokens it already consumed, since the caller will
				// Feed more text and retry the whole form from scratch.
				r.toks = saved
				err = e
				return
			}
			panic(rec)
		}
	}()
	v = r.readForm()
	return v, true, nil
}

// ReadAll reads and returns every complete top-level form currently
// buffered. At the first form that fails to parse (including an
// incomplete one) it stops and returns the forms read so far together
// with that form's error.
func (r *Reader) ReadAll() ([]value.Value, error) {
	var out []value.Value
	for len(r.toks) > 0 {
		v, ok, err := r.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *Reader) pop() token {
	if len(r.toks) == 0 {
		panic(errkind.New(errkind.SyntaxError, ErrUnterminated))
	}
	t := r.toks[0]
	r.toks = r.toks[1:]
	return t
}

func (r *Reader) peek() (token, bool) {
	if len(r.toks) == 0 {
		return token{}, false
	}
	return r.toks[0], true
}

func (r *Reader) readForm() value.Value {
	t := r.pop()
	switch t.kind {
	case tokLParen:
		return r.readList()
	case tokVectorOpen:
		return r.readVector()
	case tokRParen:
		panic(errkind.New(errkind.SyntaxError, "unexpected )"))
	case tokQuote:
		return r.wrap("quote")
	case tokQuasiquote:
		return r.wrap("quasiquote")
	case tokUnquote:
		return r.wrap("unquote")
	case tokUnquoteSplicing:
		return r.wrap("unquote-splicing")
	case tokAtom:
		return r.atom(t.text)
	case tokString:
		return value.Str(value.NewString(t.text))
	}
	panic(errkind.New(errkind.SyntaxError, "unreadable token"))
}

func (r *Reader) wrap(sym string) value.Value {
	inner := r.readForm()
	return value.PairVal(r.arena.Cons(value.Sym(r.symtab.Intern(sym)), value.PairVal(r.arena.Cons(inner, value.Nil()))))
}

// readList reads forms until a matching `)`, honoring a `.`
// dotted-tail marker immediately before it.
func (r *Reader) readList() value.Value {
	var items []value.Value
	for {
		t, ok := r.peek()
		if !ok {
			panic(errkind.New(errkind.SyntaxError, ErrUnterminated))
		}
		if t.kind == tokRParen {
			r.pop()
			return value.FromSlice(r.arena, items)
		}
		if t.kind == tokAtom && t.text == "." {
			r.pop()
			tail := r.readForm()
			closeTok := r.pop()
			if closeTok.kind != tokRParen {
				panic(errkind.New(errkind.SyntaxError, ErrUnterminated))
			}
			return value.FromSliceDotted(r.arena, items, tail)
		}
		items = append(items, r.readForm())
	}
}

func (r *Reader) readVector() value.Value {
	var items []value.Value
	for {
		t, ok := r.peek()
		if !ok {
			panic(errkind.New(errkind.SyntaxError, ErrUnterminated))
		}
		if t.kind == tokRParen {
			r.pop()
			return value.VecVal(value.NewVector(items))
		}
		items = append(items, r.readForm())
	}
}

func (r *Reader) atom(text string) value.Value {
	switch {
	case text == "#t" || text == "#true":
		return value.Bool(true)
	case text == "#f" || text == "#false":
		return value.Bool(false)
	case strings.HasPrefix(text, "#\\"):
		return readChar(text)
	}
	if n, ok := parseNumber(text); ok {
		return value.Num(n)
	}
	return value.Sym(r.symtab.Intern(text))
}

var namedChars = map[string]rune{
	"space": ' ', "newline": '\n', "tab": '\t', "return": '\r', "null": 0,
}

func readChar(text string) value.Value {
	body := text[2:]
	if r, ok := namedChars[strings.ToLower(body)]; ok {
		return value.Char(r)
	}
	if strings.HasPrefix(body, "x") || strings.HasPrefix(body, "X") {
		if n, err := strconv.ParseInt(body[1:], 16, 32); err == nil {
			return value.Char(rune(n))
		}
	}
	runes := []rune(body)
	if len(runes) >= 1 {
		return value.Char(runes[0])
	}
	panic(errkind.New(errkind.SyntaxError, "malformed character literal: "+text))
}

func parseNumber(text string) (number.Number, bool) {
	if text == "" || text == "." || text == "-" || text == "+" {
		return number.Number{}, false
	}
	if strings.HasSuffix(text, "i") && len(text) > 1 {
		if c, err := strconv.ParseComplex(text[:len(text)-1]+"i", 128); err == nil {
			return number.Complex(complex128(c)), true
		}
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return number.Int(i), true
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return number.Float(f), true
	}
	return number.Number{}, false
}
