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

package number

import (
	"math"
	"testing"
)

func TestFloatCollapsesToInt(t *testing.T) {
	n := Float(3.0)
	if !n.IsInt() || n.Int64() != 3 {
		t.Fatalf("Float(3.0) should collapse to Int 3, got kind=%v val=%v", n.Kind(), n)
	}
}

func TestFloatStaysFloat(t *testing.T) {
	n := Float(3.5)
	if !n.IsFloat() {
		t.Fatalf("Float(3.5) should stay Float, got kind=%v", n.Kind())
	}
}

func TestComplexZeroImagCollapses(t *testing.T) {
	n := Complex(complex(2, 0))
	if !n.IsInt() || n.Int64() != 2 {
		t.Fatalf("Complex with zero imaginary part should collapse to Int, got kind=%v", n.Kind())
	}
}

func TestComplexNonZeroImagStays(t *testing.T) {
	n := Complex(complex(1, 2))
	if !n.IsComplex() {
		t.Fatalf("Complex(1+2i) should stay Complex, got kind=%v", n.Kind())
	}
}

func TestAddIntOverflowPromotes(t *testing.T) {
	n := Add(Int(math.MaxInt64), Int(1))
	if !n.IsFloat() {
		t.Fatalf("int64 overflow on Add should promote to Float, got kind=%v", n.Kind())
	}
}

func TestAddIntStaysInt(t *testing.T) {
	n := Add(Int(2), Int(3))
	if !n.IsInt() || n.Int64() != 5 {
		t.Fatalf("Add(2,3) should be Int 5, got %v", n)
	}
}

func TestDivIntegralQuotientCollapsesToInt(t *testing.T) {
	n := Div(Int(4), Int(2))
	if !n.IsInt() {
		t.Fatalf("an integral quotient collapses to Int like any integral float; got kind=%v", n.Kind())
	}
	if n.Float64() != 2.0 {
		t.Fatalf("expected 2.0, got %v", n.Float64())
	}
}

func TestEqualAcrossArms(t *testing.T) {
	if !Equal(Int(1), Float(1.0)) {
		t.Fatalf("Int 1 and Float 1.0 must compare equal")
	}
	if !Equal(Int(1), Complex(complex(1, 0))) {
		t.Fatalf("Int 1 and a zero-imaginary Complex must compare equal")
	}
}

func TestComparableRejectsComplex(t *testing.T) {
	if Comparable(Complex(complex(1, 1)), Int(1)) {
		t.Fatalf("a genuinely complex operand must not be Comparable")
	}
	if !Comparable(Int(1), Float(2.0)) {
		t.Fatalf("Int/Float operands must be Comparable")
	}
}

func TestSqrtNegativeProducesComplex(t *testing.T) {
	n := Sqrt(Int(-4))
	if !n.IsComplex() {
		t.Fatalf("sqrt of a negative real must produce a Complex result, got kind=%v", n.Kind())
	}
}

func TestSqrtPositiveStaysReal(t *testing.T) {
	n := Sqrt(Int(4))
	if n.IsComplex() {
		t.Fatalf("sqrt of a positive real must not produce a Complex result")
	}
	if n.Float64() != 2.0 {
		t.Fatalf("expected 2.0, got %v", n.Float64())
	}
}

func TestNegPreservesArm(t *testing.T) {
	if !Neg(Int(5)).IsInt() {
		t.Fatalf("Neg of an Int must stay an Int")
	}
	if !Neg(Float(5.5)).IsFloat() {
		t.Fatalf("Neg of a Float must stay a Float")
	}
}
