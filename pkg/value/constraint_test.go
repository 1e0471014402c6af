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
)

func TestConstraintAcceptance(t *testing.T) {
	tests := []struct {
		constraint Constraint
		value      Value
		accepted   bool
	}{
		{Any{}, NewMissing(), true},
		{Any{}, Text("anything"), true},
		{Not{Any{}}, Text("anything"), false},
		{Not{Minimum{NewInteger(0)}}, NewInteger(-1), true},
		{OneOf{NewInteger(1), Text("two")}, Text("two"), true},
		{OneOf{NewInteger(1), Text("two")}, Text("three"), false},
		{OneOf{}, NewMissing(), false},
		{Minimum{NewInteger(0)}, NewInteger(0), true},
		{Minimum{NewInteger(0)}, NewInteger(-1), false},
		{Minimum{NewInteger(0)}, NewReal(0.5), true},
		// Values incomparable with the bound are rejected.
		{Minimum{NewInteger(0)}, Text("x"), false},
		{Maximum{NewInteger(10)}, NewInteger(10), true},
		{Maximum{NewInteger(10)}, NewInteger(11), false},
		{MinimumLength(2), Text("ab"), true},
		{MinimumLength(2), Text("a"), false},
		{MaximumLength(2), Text("ab"), true},
		{MaximumLength(2), Text("abc"), false},
	}
	//
	for _, test := range tests {
		err := test.constraint.Validate(test.value)
		//
		if test.accepted && err != nil {
			t.Errorf("expected %s to accept %s, got %v", test.constraint, test.value, err)
		} else if !test.accepted && err == nil {
			t.Errorf("expected %s to reject %s", test.constraint, test.value)
		}
	}
}

func TestLengthConstraintInvalidForNonText(t *testing.T) {
	for _, constraint := range []Constraint{MinimumLength(1), MaximumLength(1)} {
		err := constraint.Validate(NewInteger(5))
		//
		if err == nil {
			t.Fatalf("expected %s to reject a number", constraint)
		}
		//
		if _, ok := err.FailedConstraints[0].(*InvalidConstraintError); !ok {
			t.Errorf("expected an invalid constraint error, got %v", err.FailedConstraints[0])
		}
	}
}

func TestContractAggregatesAllFailures(t *testing.T) {
	// Number, at least zero, at most ten.
	contract := NewContract(NumberKind, Minimum{NewInteger(0)}, Maximum{NewInteger(10)})
	// A text value fails the type constraint and both bounds (being
	// incomparable with either).
	err := contract.Validate(Text("x"))
	//
	if err == nil {
		t.Fatal("expected validation to fail")
	} else if len(err.FailedConstraints) != 3 {
		t.Fatalf("expected 3 failed constraints, got %d", len(err.FailedConstraints))
	}
	// First failure is the type mismatch.
	typeError, ok := err.FailedConstraints[0].(*TypeError)
	//
	if !ok {
		t.Fatalf("expected a type error first, got %v", err.FailedConstraints[0])
	} else if typeError.Expected != NumberKind || typeError.Received != TextKind {
		t.Errorf("unexpected type error %v", typeError)
	}
}

func TestContractNoShortCircuit(t *testing.T) {
	contract := NewContract(NumberKind, Minimum{NewInteger(0)})
	// A valid value produces no error at all.
	if err := contract.Validate(NewInteger(5)); err != nil {
		t.Errorf("expected acceptance, got %v", err)
	}
	// An in-range value of the wrong kind fails only the type constraint.
	err := contract.Validate(Boolean(true))
	//
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	//
	for _, failed := range err.FailedConstraints {
		if _, ok := failed.(*TypeError); !ok {
			// Booleans are incomparable with numbers, so the bound fails too.
			if _, ok := failed.(*ValueError); !ok {
				t.Errorf("unexpected failure %v", failed)
			}
		}
	}
}

func TestConstraintEquality(t *testing.T) {
	tests := []struct {
		lhs   Constraint
		rhs   Constraint
		equal bool
	}{
		{Any{}, Any{}, true},
		{Any{}, Not{Any{}}, false},
		{Not{Minimum{NewInteger(0)}}, Not{Minimum{NewInteger(0)}}, true},
		{OneOf{NewInteger(1)}, OneOf{NewInteger(1)}, true},
		{OneOf{NewInteger(1)}, OneOf{NewInteger(2)}, false},
		{Minimum{NewInteger(0)}, Minimum{NewInteger(0)}, true},
		{Minimum{NewInteger(0)}, Maximum{NewInteger(0)}, false},
		{MinimumLength(2), MinimumLength(2), true},
		{MinimumLength(2), MaximumLength(2), false},
	}
	//
	for _, test := range tests {
		if test.lhs.Equal(test.rhs) != test.equal {
			t.Errorf("expected %s.Equal(%s) == %t", test.lhs, test.rhs, test.equal)
		}
	}
}
