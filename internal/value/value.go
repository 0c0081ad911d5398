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

// Package value is the interpreter's heap: the tagged Value union
// (spec.md §3.1), the cons arena (§3.2, §4.4), environment frames
// (§3.6, §4.3), closures/macros (§3.5), and the shared Port/Function
// wrappers. They live in one package because they are mutually
// recursive types — see DESIGN.md for why this mirrors the teacher's
// own `scm` package layout rather than splitting into several.
package value

import (
	"fmt"

	"github.com/launix-de/scmcore/internal/errkind"
	"github.com/launix-de/scmcore/internal/number"
	"github.com/launix-de/scmcore/internal/opcode"
	"github.com/launix-de/scmcore/internal/symtab"
)

// Tag identifies which variant a Value currently holds.
type Tag uint8

const (
	TagNone Tag = iota
	TagNil
	TagBool
	TagChar
	TagIntern
	TagNumber
	TagSymbol
	TagPair
	TagString
	TagVector
	TagPort
	TagFunction
	TagProcedure
	TagEnv
)

var tagNames = [...]string{
	"none", "nil", "bool", "char", "intern", "number", "symbol",
	"pair", "string", "vector", "port", "function", "procedure", "env",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Value is the universal datum (spec.md §3.1): a tag plus a payload
// that only ever holds the Go type matching that tag.
type Value struct {
	tag     Tag
	payload any
}

func (v Value) Tag() Tag { return v.tag }

// Constructors

func None() Value                     { return Value{tag: TagNone} }
func Nil() Value                      { return Value{tag: TagNil} }
func Bool(b bool) Value               { return Value{tag: TagBool, payload: b} }
func Char(r rune) Value               { return Value{tag: TagChar, payload: r} }
func Intern(op opcode.Op) Value       { return Value{tag: TagIntern, payload: op} }
func Num(n number.Number) Value       { return Value{tag: TagNumber, payload: n} }
func Sym(s symtab.Symbol) Value       { return Value{tag: TagSymbol, payload: s} }
func PairVal(p PairRef) Value         { return Value{tag: TagPair, payload: p} }
func Str(s *StringObj) Value          { return Value{tag: TagString, payload: s} }
func VecVal(v *VectorObj) Value       { return Value{tag: TagVector, payload: v} }
func PortVal(p *Port) Value           { return Value{tag: TagPort, payload: p} }
func FuncVal(f *Function) Value       { return Value{tag: TagFunction, payload: f} }
func ProcVal(p *Proc) Value           { return Value{tag: TagProcedure, payload: p} }
func EnvVal(e *Env) Value             { return Value{tag: TagEnv, payload: e} }

// Predicates

func (v Value) IsNone() bool      { return v.tag == TagNone }
func (v Value) IsNil() bool       { return v.tag == TagNil }
func (v Value) IsBool() bool      { return v.tag == TagBool }
func (v Value) IsChar() bool      { return v.tag == TagChar }
func (v Value) IsIntern() bool    { return v.tag == TagIntern }
func (v Value) IsNumber() bool    { return v.tag == TagNumber }
func (v Value) IsSymbol() bool    { return v.tag == TagSymbol }
func (v Value) IsPair() bool      { return v.tag == TagPair }
func (v Value) IsString() bool    { return v.tag == TagString }
func (v Value) IsVector() bool    { return v.tag == TagVector }
func (v Value) IsPort() bool      { return v.tag == TagPort }
func (v Value) IsFunction() bool  { return v.tag == TagFunction }
func (v Value) IsProcedure() bool { return v.tag == TagProcedure }
func (v Value) IsEnv() bool       { return v.tag == TagEnv }

// IsCallable reports whether v can stand in operator position.
func (v Value) IsCallable() bool { return v.tag == TagFunction || v.tag == TagProcedure }

// Accessors. Each panics with a type-error if the tag does not match;
// callers (mainly internal/primitive and internal/eval) are expected
// to check Tag()/Is*() first when the value came from user code, so
// these panics only fire on an interpreter-internal inconsistency.

func (v Value) mustTag(t Tag) {
	if v.tag != t {
		panic(errkind.Newf(errkind.TypeError, fmt.Sprintf("expected %s, got %s", t, v.tag), v))
	}
}

func (v Value) Bool() bool {
	v.mustTag(TagBool)
	return v.payload.(bool)
}

func (v Value) Char() rune {
	v.mustTag(TagChar)
	return v.payload.(rune)
}

func (v Value) Intern() opcode.Op {
	v.mustTag(TagIntern)
	return v.payload.(opcode.Op)
}

func (v Value) Num() number.Number {
	v.mustTag(TagNumber)
	return v.payload.(number.Number)
}

func (v Value) Sym() symtab.Symbol {
	v.mustTag(TagSymbol)
	return v.payload.(symtab.Symbol)
}

func (v Value) Pair() PairRef {
	v.mustTag(TagPair)
	return v.payload.(PairRef)
}

func (v Value) Str() *StringObj {
	v.mustTag(TagString)
	return v.payload.(*StringObj)
}

func (v Value) Vec() *VectorObj {
	v.mustTag(TagVector)
	return v.payload.(*VectorObj)
}

func (v Value) Port() *Port {
	v.mustTag(TagPort)
	return v.payload.(*Port)
}

func (v Value) Func() *Function {
	v.mustTag(TagFunction)
	return v.payload.(*Function)
}

func (v Value) Proc() *Proc {
	v.mustTag(TagProcedure)
	return v.payload.(*Proc)
}

func (v Value) Env() *Env {
	v.mustTag(TagEnv)
	return v.payload.(*Env)
}

// Truthy implements Scheme's "everything but #f is true" rule, used
// by `if`/`cond`/`and`/`or`/`when`/`unless`.
func (v Value) Truthy() bool {
	return !(v.tag == TagBool && !v.payload.(bool))
}

// StringObj is the shared, mutable wide-character buffer backing a
// Scheme string. It is a plain Go-GC-managed reference type: several
// Values can alias the same *StringObj, which is exactly what
// "reference-counted" buys the teacher in a language without cycles
// through strings — Go's collector already gives us that for free.
type StringObj struct {
	Runes []rune
}

func NewString(s string) *StringObj { return &StringObj{Runes: []rune(s)} }

func (s *StringObj) String() string { return string(s.Runes) }

// VectorObj is the shared, mutable sequence backing a Scheme vector.
type VectorObj struct {
	Items []Value
}

func NewVector(items []Value) *VectorObj { return &VectorObj{Items: items} }
