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

// Package opcode enumerates the built-in identity of every syntax
// keyword and primitive procedure the evaluator knows about. An Op is
// the payload of an Intern value (spec.md §3.1): the evaluator
// dispatches special forms and primitive calls by a single table
// lookup on the Op rather than by string comparison.
package opcode

// Op is the identity of a built-in name, either a syntax keyword
// handled directly by the evaluator or a primitive procedure handed
// to the dispatch table in internal/primitive.
type Op uint16

const (
	OpNone Op = iota

	// Syntax keywords (spec.md §4.1.2)
	OpQuote
	OpQuasiquote
	OpUnquote
	OpUnquoteSplicing
	OpIf
	OpCond
	OpWhen
	OpUnless
	OpAnd
	OpOr
	OpBegin
	OpDefine
	OpSet
	OpLambda
	OpDefineMacro
	OpApply
	OpElse // internal sentinel recognised by identity in cond
	OpArrow // "=>" internal sentinel recognised by identity in cond

	opSyntaxEnd

	// Primitive arithmetic / comparison
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpLt
	OpLe
	OpGt
	OpGe
	OpNumEq
	OpSqrt
	OpAbs
	OpQuotient
	OpRemainder
	OpModulo

	// Equality / predicates
	OpEq
	OpEqv
	OpEqual
	OpNot
	OpIsNull
	OpIsPair
	OpIsList
	OpIsSymbol
	OpIsString
	OpIsNumber
	OpIsProcedure
	OpIsBoolean
	OpIsChar
	OpIsVector
	OpIsPort

	// Pairs / lists
	OpCons
	OpCar
	OpCdr
	OpSetCar
	OpSetCdr
	OpList
	OpLength
	OpListRef
	OpAppend
	OpReverse
	OpMap
	OpFilter
	OpForEach

	// Symbols
	OpSymbolToString
	OpStringToSymbol
	OpGensym

	// Strings
	OpStringLength
	OpStringRef
	OpStringAppend
	OpSubstring
	OpStringToList
	OpListToString

	// Vectors
	OpMakeVector
	OpVector
	OpVectorRef
	OpVectorSet
	OpVectorLength
	OpVectorToList
	OpListToVector

	// Chars
	OpCharToInteger
	OpIntegerToChar

	// Ports / IO
	OpDisplay
	OpWrite
	OpNewline
	OpReadChar
	OpPeekChar
	OpWriteChar
	OpClosePort
	OpOpenInputString
	OpOpenOutputString
	OpGetOutputString
	OpOpenWebsocketPort
	OpOpenSQLPort
	OpSQLQuery

	// Errors / control
	OpError
	OpCallCC
	OpExit

	// Bytevectors (reserved, not implemented — spec.md §9)
	OpBytevector
	OpBytevectorLength
	OpBytevectorRef
	OpBytevectorSet

	opPrimitiveEnd
)

var names = map[Op]string{
	OpQuote:             "quote",
	OpQuasiquote:        "quasiquote",
	OpUnquote:           "unquote",
	OpUnquoteSplicing:   "unquote-splicing",
	OpIf:                "if",
	OpCond:              "cond",
	OpWhen:              "when",
	OpUnless:            "unless",
	OpAnd:               "and",
	OpOr:                "or",
	OpBegin:             "begin",
	OpDefine:            "define",
	OpSet:               "set!",
	OpLambda:            "lambda",
	OpDefineMacro:       "define-macro",
	OpApply:             "apply",
	OpElse:              "else",
	OpArrow:             "=>",
	OpAdd:               "+",
	OpSub:               "-",
	OpMul:               "*",
	OpDiv:               "/",
	OpLt:                "<",
	OpLe:                "<=",
	OpGt:                ">",
	OpGe:                ">=",
	OpNumEq:             "=",
	OpSqrt:              "sqrt",
	OpAbs:               "abs",
	OpQuotient:          "quotient",
	OpRemainder:         "remainder",
	OpModulo:            "modulo",
	OpEq:                "eq?",
	OpEqv:               "eqv?",
	OpEqual:             "equal?",
	OpNot:               "not",
	OpIsNull:            "null?",
	OpIsPair:            "pair?",
	OpIsList:            "list?",
	OpIsSymbol:          "symbol?",
	OpIsString:          "string?",
	OpIsNumber:          "number?",
	OpIsProcedure:       "procedure?",
	OpIsBoolean:         "boolean?",
	OpIsChar:            "char?",
	OpIsVector:          "vector?",
	OpIsPort:            "port?",
	OpCons:              "cons",
	OpCar:               "car",
	OpCdr:               "cdr",
	OpSetCar:            "set-car!",
	OpSetCdr:            "set-cdr!",
	OpList:              "list",
	OpLength:            "length",
	OpListRef:           "list-ref",
	OpAppend:            "append",
	OpReverse:           "reverse",
	OpMap:               "map",
	OpFilter:            "filter",
	OpForEach:           "for-each",
	OpSymbolToString:    "symbol->string",
	OpStringToSymbol:    "string->symbol",
	OpGensym:            "gensym",
	OpStringLength:      "string-length",
	OpStringRef:         "string-ref",
	OpStringAppend:      "string-append",
	OpSubstring:         "substring",
	OpStringToList:      "string->list",
	OpListToString:      "list->string",
	OpMakeVector:        "make-vector",
	OpVector:            "vector",
	OpVectorRef:         "vector-ref",
	OpVectorSet:         "vector-set!",
	OpVectorLength:      "vector-length",
	OpVectorToList:      "vector->list",
	OpListToVector:      "list->vector",
	OpCharToInteger:     "char->integer",
	OpIntegerToChar:     "integer->char",
	OpDisplay:           "display",
	OpWrite:             "write",
	OpNewline:           "newline",
	OpReadChar:          "read-char",
	OpPeekChar:          "peek-char",
	OpWriteChar:         "write-char",
	OpClosePort:         "close-port",
	OpOpenInputString:   "open-input-string",
	OpOpenOutputString:  "open-output-string",
	OpGetOutputString:   "get-output-string",
	OpOpenWebsocketPort: "open-websocket-port",
	OpOpenSQLPort:       "open-sql-port",
	OpSQLQuery:          "sql-query",
	OpError:             "error",
	OpCallCC:            "call/cc",
	OpExit:              "exit",
	OpBytevector:        "bytevector",
	OpBytevectorLength:  "bytevector-length",
	OpBytevectorRef:     "bytevector-ref",
	OpBytevectorSet:     "bytevector-set!",
}

var byName map[string]Op

func init() {
	byName = make(map[string]Op, len(names))
	for op, name := range names {
		byName[name] = op
	}
}

// Name returns the canonical source-level spelling of op, or "" if op
// is not a known built-in.
func Name(op Op) string { return names[op] }

// Lookup finds the Op bound to name, if any of the built-ins use it.
func Lookup(name string) (Op, bool) {
	op, ok := byName[name]
	return op, ok
}

// IsSyntax reports whether op is a special form handled directly by
// the evaluator rather than a primitive procedure.
func IsSyntax(op Op) bool { return op > OpNone && op < opSyntaxEnd }

// IsPrimitive reports whether op identifies a primitive procedure.
func IsPrimitive(op Op) bool { return op > opSyntaxEnd && op < opPrimitiveEnd }

// All returns every named Op (syntax keywords and primitives alike),
// in no particular order — internal/interp uses it to seed a fresh
// top-level environment with one Intern binding per built-in name.
func All() []Op {
	out := make([]Op, 0, len(names))
	for op := range names {
		out = append(out, op)
	}
	return out
}
