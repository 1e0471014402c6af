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

import "fmt"

// TypeConstraint requires a value to be of a given kind.
type TypeConstraint struct {
	// Expected kind of value.
	Expected Kind
}

// IsType constructs a type constraint for a given kind.
func IsType(kind Kind) TypeConstraint {
	return TypeConstraint{kind}
}

// Validate evaluates this type constraint against a given value, returning
// nil on acceptance.
func (c TypeConstraint) Validate(val Value) *ValidationError {
	if received := val.Kind(); received != c.Expected {
		return &ValidationError{
			OffendingValue: val,
			FailedConstraints: []ConstraintError{
				&TypeError{Expected: c.Expected, Received: received},
			},
		}
	}
	//
	return nil
}

// Equal determines whether this type constraint is identical to another.
func (c TypeConstraint) Equal(other TypeConstraint) bool {
	return c.Expected == other.Expected
}

func (c TypeConstraint) String() string {
	return fmt.Sprintf("isType(%s)", c.Expected)
}

// Contract combines an expected type with zero or more value constraints,
// every one of which a value must satisfy to be accepted.  Validation never
// short-circuits: each constraint is always evaluated so that the resulting
// report lists every rule the value failed, not merely the first.  Contracts
// are immutable and safely shared across concurrent evaluations.
type Contract struct {
	// ExpectedType every value must have.
	ExpectedType TypeConstraint
	// Constraints every value must additionally satisfy.
	Constraints []Constraint
}

// NewContract constructs a contract from an expected kind and zero or more
// value constraints.
func NewContract(kind Kind, constraints ...Constraint) Contract {
	return Contract{IsType(kind), constraints}
}

// Validate evaluates every rule of this contract against a given value.  A
// nil result indicates acceptance; otherwise, the returned error aggregates
// all failed rules in evaluation order.
func (c Contract) Validate(val Value) *ValidationError {
	var failed []ConstraintError
	//
	if err := c.ExpectedType.Validate(val); err != nil {
		failed = append(failed, err.FailedConstraints...)
	}
	//
	for _, ith := range c.Constraints {
		if err := ith.Validate(val); err != nil {
			failed = append(failed, err.FailedConstraints...)
		}
	}
	//
	if len(failed) == 0 {
		return nil
	}
	//
	return &ValidationError{OffendingValue: val, FailedConstraints: failed}
}

// Equal determines whether this contract is structurally identical to
// another.
func (c Contract) Equal(other Contract) bool {
	if !c.ExpectedType.Equal(other.ExpectedType) {
		return false
	} else if len(c.Constraints) != len(other.Constraints) {
		return false
	}
	//
	for i := range c.Constraints {
		if !c.Constraints[i].Equal(other.Constraints[i]) {
			return false
		}
	}
	//
	return true
}

func (c Contract) String() string {
	str := c.ExpectedType.String()
	//
	for _, ith := range c.Constraints {
		str = fmt.Sprintf("%s & %s", str, ith)
	}
	//
	return str
}
