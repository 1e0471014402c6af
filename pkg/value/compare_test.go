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
	"testing"
	"time"
)

func TestCompareOrdered(t *testing.T) {
	var (
		earlier = NewDateTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		later   = NewDateTime(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	)
	//
	tests := []struct {
		lhs      Value
		rhs      Value
		expected int
	}{
		{NewInteger(1), NewInteger(2), -1},
		{NewInteger(2), NewInteger(2), 0},
		{NewInteger(3), NewInteger(2), 1},
		// Integers and reals compare by magnitude.
		{NewInteger(1), NewReal(1.5), -1},
		{NewReal(2.5), NewInteger(2), 1},
		{Text("abc"), Text("abd"), -1},
		{Boolean(false), Boolean(true), -1},
		{earlier, later, -1},
		{later, later, 0},
		// Sequences order lexicographically, shorter prefix first.
		{Array{NewInteger(1)}, Array{NewInteger(1), NewInteger(2)}, -1},
		{Array{NewInteger(2)}, Array{NewInteger(1), NewInteger(2)}, 1},
		{Object{{"a", NewInteger(1)}}, Object{{"a", NewInteger(2)}}, -1},
		{Object{{"a", NewInteger(1)}}, Object{{"b", NewInteger(0)}}, -1},
		{NewMissing(), NewUnexpectedMissing(), -1},
	}
	//
	for _, test := range tests {
		c, ok := Compare(test.lhs, test.rhs)
		//
		if !ok {
			t.Errorf("expected %s and %s to be comparable", test.lhs, test.rhs)
		} else if c != test.expected {
			t.Errorf("Compare(%s, %s) == %d, expected %d", test.lhs, test.rhs, c, test.expected)
		}
	}
}

func TestCompareUnordered(t *testing.T) {
	tests := []struct {
		lhs Value
		rhs Value
	}{
		// Values of different kinds are incomparable.
		{NewInteger(1), Text("1")},
		{Boolean(true), NewInteger(1)},
		{NewMissing(), Text("")},
		// Complex numbers have no natural ordering.
		{NewComplex(complex(1, 2)), NewComplex(complex(1, 2))},
		{NewComplex(complex(1, 0)), NewInteger(1)},
		// Incomparability propagates out of composites.
		{Array{NewInteger(1)}, Array{Text("1")}},
		{Object{{"a", NewInteger(1)}}, Object{{"a", Text("1")}}},
	}
	//
	for _, test := range tests {
		if _, ok := Compare(test.lhs, test.rhs); ok {
			t.Errorf("expected %s and %s to be incomparable", test.lhs, test.rhs)
		}
		// A partial ordering rejects both directions.
		if LessOrEqual(test.lhs, test.rhs) || GreaterOrEqual(test.lhs, test.rhs) {
			t.Errorf("expected no ordering between %s and %s", test.lhs, test.rhs)
		}
	}
}
