// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package value

import (
	"fmt"
	"strconv"
)

// NumberClass distinguishes the internal representations of a numeric value.
type NumberClass uint8

const (
	// IntegerClass indicates a signed 64bit integer representation.
	IntegerClass NumberClass = iota
	// RealClass indicates a 64bit floating point representation.
	RealClass
	// ComplexClass indicates a complex number representation.
	ComplexClass
)

// Number is a numeric value, held as either an integer, a real or a complex
// number.  Integers and reals are mutually comparable by magnitude, whereas
// complex numbers are unordered.
type Number struct {
	class   NumberClass
	integer int64
	real    float64
	cplx    complex128
}

// NewInteger constructs an integer-valued number.
func NewInteger(val int64) Number {
	return Number{class: IntegerClass, integer: val}
}

// NewReal constructs a real-valued number.
func NewReal(val float64) Number {
	return Number{class: RealClass, real: val}
}

// NewComplex constructs a complex-valued number.
func NewComplex(val complex128) Number {
	return Number{class: ComplexClass, cplx: val}
}

// Kind implementation for the Value interface.
func (v Number) Kind() Kind { return NumberKind }

// Class returns the internal representation of this number.
func (v Number) Class() NumberClass { return v.class }

// Int returns this number as an integer.  This will panic if the number is not
// integer valued.
func (v Number) Int() int64 {
	if v.class != IntegerClass {
		panic("number is not an integer")
	}
	//
	return v.integer
}

// Real returns this number as a real.  This will panic if the number is not
// real valued.
func (v Number) Real() float64 {
	if v.class != RealClass {
		panic("number is not a real")
	}
	//
	return v.real
}

// Complex returns this number as a complex number.  This will panic if the
// number is not complex valued.
func (v Number) Complex() complex128 {
	if v.class != ComplexClass {
		panic("number is not complex")
	}
	//
	return v.cplx
}

// Equal implementation for the Value interface.  Numbers of different classes
// are never equal, even when their magnitudes coincide.
func (v Number) Equal(other Value) bool {
	o, ok := other.(Number)
	//
	if !ok || v.class != o.class {
		return false
	}
	//
	switch v.class {
	case IntegerClass:
		return v.integer == o.integer
	case RealClass:
		return v.real == o.real
	default:
		return v.cplx == o.cplx
	}
}

func (v Number) String() string {
	switch v.class {
	case IntegerClass:
		return strconv.FormatInt(v.integer, 10)
	case RealClass:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v.cplx)
	}
}

func (v Number) isValue() {}

// Compare determines the relative ordering of two numbers, where possible.
// Integers and reals are compared by magnitude; complex numbers have no
// natural ordering and, hence, are incomparable with everything (including
// themselves).
func (v Number) Compare(o Number) (int, bool) {
	if v.class == ComplexClass || o.class == ComplexClass {
		return 0, false
	} else if v.class == IntegerClass && o.class == IntegerClass {
		switch {
		case v.integer < o.integer:
			return -1, true
		case v.integer > o.integer:
			return 1, true
		default:
			return 0, true
		}
	}
	// Mixed (or real) comparison by magnitude.
	var (
		lhs = v.magnitude()
		rhs = o.magnitude()
	)
	//
	switch {
	case lhs < rhs:
		return -1, true
	case lhs > rhs:
		return 1, true
	default:
		return 0, true
	}
}

func (v Number) magnitude() float64 {
	if v.class == IntegerClass {
		return float64(v.integer)
	}
	//
	return v.real
}
