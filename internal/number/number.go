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

// Package number implements the three-arm numeric tower (Int, Float,
// Complex) and the promotion/demotion discipline that keeps it total
// and associative where defined. See spec.md §3.4.
package number

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Kind identifies which arm of the tower a Number currently occupies.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindComplex
)

// Number is a value from the numeric tower. Only one of i/f/c is
// meaningful, selected by kind. Construction always normalizes via
// the collapse rules in spec.md §3.4: an integral float that fits in
// int64 becomes an Int, and a Complex with zero imaginary part is
// demoted to its real part (then subject to the same Int collapse).
type Number struct {
	kind Kind
	i    int64
	f    float64
	c    complex128
}

// Int constructs an integer Number.
func Int(v int64) Number { return Number{kind: KindInt, i: v} }

// Float constructs a Number from a float64, collapsing to Int when
// the value is exactly integral and fits in int64.
func Float(v float64) Number {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return Number{kind: KindInt, i: int64(v)}
	}
	return Number{kind: KindFloat, f: v}
}

// Complex constructs a Number from a complex128, collapsing to the
// real arm (then the Int arm) when the imaginary part is exactly zero.
func Complex(v complex128) Number {
	if imag(v) == 0 {
		return Float(real(v))
	}
	return Number{kind: KindComplex, c: v}
}

func (n Number) Kind() Kind { return n.kind }
func (n Number) IsInt() bool     { return n.kind == KindInt }
func (n Number) IsFloat() bool   { return n.kind == KindFloat }
func (n Number) IsComplex() bool { return n.kind == KindComplex }

// Int64 returns the integer value, truncating float/complex arms.
func (n Number) Int64() int64 {
	switch n.kind {
	case KindInt:
		return n.i
	case KindFloat:
		return int64(n.f)
	default:
		return int64(real(n.c))
	}
}

// Float64 widens the number to a float64, discarding any imaginary part.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return float64(n.i)
	case KindFloat:
		return n.f
	default:
		return real(n.c)
	}
}

// Complex128 widens the number to complex128.
func (n Number) Complex128() complex128 {
	switch n.kind {
	case KindInt:
		return complex(float64(n.i), 0)
	case KindFloat:
		return complex(n.f, 0)
	default:
		return n.c
	}
}

func (n Number) String() string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindFloat:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	default:
		re, im := real(n.c), imag(n.c)
		if im >= 0 {
			return fmt.Sprintf("%g+%gi", re, im)
		}
		return fmt.Sprintf("%g%gi", re, im)
	}
}

// rank orders the arms so binary ops can promote to the wider one.
func rank(k Kind) int { return int(k) }

// Add implements integer overflow-checked addition widening to Float,
// and promotion to Complex/Float per spec.md §3.4.
func Add(a, b Number) Number { return binOp(a, b, addInt, func(x, y float64) float64 { return x + y }, func(x, y complex128) complex128 { return x + y }) }
func Sub(a, b Number) Number { return binOp(a, b, subInt, func(x, y float64) float64 { return x - y }, func(x, y complex128) complex128 { return x - y }) }
func Mul(a, b Number) Number { return binOp(a, b, mulInt, func(x, y float64) float64 { return x * y }, func(x, y complex128) complex128 { return x * y }) }

// Div divides in floating point (or complex, if either operand is
// Complex), so it never truncates; the result is then normalized like
// any other, so an exact integral quotient such as 4/2 comes back as
// Int 2 while 1/2 gives Float 0.5.
func Div(a, b Number) Number {
	if a.kind == KindComplex || b.kind == KindComplex {
		return Complex(a.Complex128() / b.Complex128())
	}
	return Float(a.Float64() / b.Float64())
}

func addInt(x, y int64) (int64, bool) {
	s := x + y
	overflow := (y > 0 && s < x) || (y < 0 && s > x)
	return s, overflow
}
func subInt(x, y int64) (int64, bool) {
	s := x - y
	overflow := (y < 0 && s < x) || (y > 0 && s > x)
	return s, overflow
}
func mulInt(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	p := x * y
	overflow := p/y != x
	return p, overflow
}

func binOp(a, b Number, iop func(int64, int64) (int64, bool), fop func(float64, float64) float64, cop func(complex128, complex128) complex128) Number {
	if a.kind == KindComplex || b.kind == KindComplex {
		return Complex(cop(a.Complex128(), b.Complex128()))
	}
	if a.kind == KindInt && b.kind == KindInt {
		if v, overflow := iop(a.i, b.i); !overflow {
			return Int(v)
		}
		return Float(fop(float64(a.i), float64(b.i)))
	}
	return Float(fop(a.Float64(), b.Float64()))
}

// Comparable reports whether neither operand is complex. The ordering
// functions below do not check this themselves; the primitive layer
// raises domain-error when it is false.
func Comparable(a, b Number) bool {
	return a.kind != KindComplex && b.kind != KindComplex
}

func Less(a, b Number) bool    { return a.Float64() < b.Float64() }
func Greater(a, b Number) bool { return a.Float64() > b.Float64() }
func LessEq(a, b Number) bool  { return a.Float64() <= b.Float64() }
func GreaterEq(a, b Number) bool { return a.Float64() >= b.Float64() }

// Equal holds across arms per spec.md §3.4: Int 1 = Float 1.0 =
// Complex{1,0} (which already collapsed to Int 1 at construction).
func Equal(a, b Number) bool {
	if a.kind == KindComplex || b.kind == KindComplex {
		return a.Complex128() == b.Complex128()
	}
	return a.Float64() == b.Float64()
}

// Neg returns the additive inverse, preserving the arm.
func Neg(a Number) Number {
	switch a.kind {
	case KindInt:
		return Int(-a.i)
	case KindFloat:
		return Float(-a.f)
	default:
		return Complex(-a.c)
	}
}

// Sqrt follows R7RS: negative reals produce a complex result.
func Sqrt(a Number) Number {
	if a.kind == KindComplex {
		return Complex(cmplx.Sqrt(a.c))
	}
	f := a.Float64()
	if f < 0 {
		return Complex(cmplx.Sqrt(complex(f, 0)))
	}
	return Float(math.Sqrt(f))
}
