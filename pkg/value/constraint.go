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
	"strings"
)

// Constraint is an acceptance predicate over a single value.  Evaluating a
// constraint is a pure, total, side-effect free function: it either accepts
// the value (nil result) or describes exactly which rule failed and why.
// Constraints are immutable and, hence, can be shared freely across
// concurrently executing evaluations.
type Constraint interface {
	fmt.Stringer
	// Validate evaluates this constraint against a given value, returning nil
	// on acceptance.
	Validate(val Value) *ValidationError
	// Equal determines whether this constraint is structurally identical to
	// another.
	Equal(other Constraint) bool
	// isConstraint seals this interface, keeping the union closed.
	isConstraint()
}

// Reject a value with a single failed-constraint error.
func rejectValue(val Value, c Constraint) *ValidationError {
	return &ValidationError{
		OffendingValue:    val,
		FailedConstraints: []ConstraintError{&ValueError{c}},
	}
}

// Reject a value against which a given constraint is not meaningful.
func rejectConstraint(val Value, c Constraint) *ValidationError {
	return &ValidationError{
		OffendingValue:    val,
		FailedConstraints: []ConstraintError{&InvalidConstraintError{c}},
	}
}

// ============================================================================
// Any
// ============================================================================

// Any accepts every value.
type Any struct{}

// Validate implementation for the Constraint interface.
func (c Any) Validate(val Value) *ValidationError { return nil }

// Equal implementation for the Constraint interface.
func (c Any) Equal(other Constraint) bool {
	_, ok := other.(Any)
	return ok
}

func (c Any) String() string { return "any" }

func (c Any) isConstraint() {}

// ============================================================================
// Not
// ============================================================================

// Not accepts exactly those values its underlying constraint rejects.
type Not struct {
	// Constraint being negated.
	Constraint Constraint
}

// Validate implementation for the Constraint interface.
func (c Not) Validate(val Value) *ValidationError {
	if err := c.Constraint.Validate(val); err == nil {
		return rejectValue(val, c)
	}
	//
	return nil
}

// Equal implementation for the Constraint interface.
func (c Not) Equal(other Constraint) bool {
	if o, ok := other.(Not); ok {
		return c.Constraint.Equal(o.Constraint)
	}
	//
	return false
}

func (c Not) String() string {
	return fmt.Sprintf("not(%s)", c.Constraint)
}

func (c Not) isConstraint() {}

// ============================================================================
// OneOf
// ============================================================================

// OneOf accepts exactly those values deeply equal to one of a given set of
// allowed values.
type OneOf []Value

// Validate implementation for the Constraint interface.
func (c OneOf) Validate(val Value) *ValidationError {
	for _, allowed := range c {
		if val.Equal(allowed) {
			return nil
		}
	}
	//
	return rejectValue(val, c)
}

// Equal implementation for the Constraint interface.
func (c OneOf) Equal(other Constraint) bool {
	o, ok := other.(OneOf)
	//
	if !ok || len(c) != len(o) {
		return false
	}
	//
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}
	//
	return true
}

func (c OneOf) String() string {
	var items []string
	//
	for _, ith := range c {
		items = append(items, ith.String())
	}
	//
	return fmt.Sprintf("oneOf(%s)", strings.Join(items, ","))
}

func (c OneOf) isConstraint() {}

// ============================================================================
// Minimum / Maximum
// ============================================================================

// Minimum accepts values ordered at or above a given bound.  Values
// incomparable with the bound (e.g. of a different kind) are rejected.
type Minimum struct {
	// Bound below which values are rejected.
	Bound Value
}

// Validate implementation for the Constraint interface.
func (c Minimum) Validate(val Value) *ValidationError {
	if GreaterOrEqual(val, c.Bound) {
		return nil
	}
	//
	return rejectValue(val, c)
}

// Equal implementation for the Constraint interface.
func (c Minimum) Equal(other Constraint) bool {
	if o, ok := other.(Minimum); ok {
		return c.Bound.Equal(o.Bound)
	}
	//
	return false
}

func (c Minimum) String() string {
	return fmt.Sprintf("minimum(%s)", c.Bound)
}

func (c Minimum) isConstraint() {}

// Maximum accepts values ordered at or below a given bound.  Values
// incomparable with the bound are rejected.
type Maximum struct {
	// Bound above which values are rejected.
	Bound Value
}

// Validate implementation for the Constraint interface.
func (c Maximum) Validate(val Value) *ValidationError {
	if LessOrEqual(val, c.Bound) {
		return nil
	}
	//
	return rejectValue(val, c)
}

// Equal implementation for the Constraint interface.
func (c Maximum) Equal(other Constraint) bool {
	if o, ok := other.(Maximum); ok {
		return c.Bound.Equal(o.Bound)
	}
	//
	return false
}

func (c Maximum) String() string {
	return fmt.Sprintf("maximum(%s)", c.Bound)
}

func (c Maximum) isConstraint() {}

// ============================================================================
// MinimumLength / MaximumLength
// ============================================================================

// MinimumLength accepts text values of at least a given length (in bytes).
// Applying it to any other kind of value is an invalid constraint.
type MinimumLength uint

// Validate implementation for the Constraint interface.
func (c MinimumLength) Validate(val Value) *ValidationError {
	text, ok := val.(Text)
	//
	if !ok {
		return rejectConstraint(val, c)
	} else if uint(len(text)) < uint(c) {
		return rejectValue(val, c)
	}
	//
	return nil
}

// Equal implementation for the Constraint interface.
func (c MinimumLength) Equal(other Constraint) bool {
	o, ok := other.(MinimumLength)
	return ok && c == o
}

func (c MinimumLength) String() string {
	return fmt.Sprintf("minimumLength(%d)", uint(c))
}

func (c MinimumLength) isConstraint() {}

// MaximumLength accepts text values of at most a given length (in bytes).
// Applying it to any other kind of value is an invalid constraint.
type MaximumLength uint

// Validate implementation for the Constraint interface.
func (c MaximumLength) Validate(val Value) *ValidationError {
	text, ok := val.(Text)
	//
	if !ok {
		return rejectConstraint(val, c)
	} else if uint(len(text)) > uint(c) {
		return rejectValue(val, c)
	}
	//
	return nil
}

// Equal implementation for the Constraint interface.
func (c MaximumLength) Equal(other Constraint) bool {
	o, ok := other.(MaximumLength)
	return ok && c == o
}

func (c MaximumLength) String() string {
	return fmt.Sprintf("maximumLength(%d)", uint(c))
}

func (c MaximumLength) isConstraint() {}
