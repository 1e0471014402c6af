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

// ConstraintError describes a single instance of a failed constraint
// evaluation against a single value.  The variants are closed: a type
// mismatch, a failed value constraint, or a constraint which is not meaningful
// for the kind of value it was applied to.
type ConstraintError interface {
	error
	// isConstraintError seals this interface, keeping the union closed.
	isConstraintError()
}

// TypeError indicates that a value was not of the kind its contract expected.
type TypeError struct {
	// Expected kind as dictated by the contract.
	Expected Kind
	// Received kind of the offending value.
	Received Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected type `%s`, received type `%s`", e.Expected, e.Received)
}

func (e *TypeError) isConstraintError() {}

// ValueError indicates that a value failed a given constraint.
type ValueError struct {
	// Constraint which failed.
	Constraint Constraint
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("failed value constraint %s", e.Constraint)
}

func (e *ValueError) isConstraintError() {}

// InvalidConstraintError indicates that a constraint was applied to a value of
// a kind for which it has no meaning (e.g. a length constraint against a
// boolean).
type InvalidConstraintError struct {
	// Constraint which was inapplicable.
	Constraint Constraint
}

func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("constraint %s is invalid for this value", e.Constraint)
}

func (e *InvalidConstraintError) isConstraintError() {}

// ValidationError aggregates every failed constraint arising from validating a
// single value against a contract.  It is always returned as a plain value,
// never raised as a panic, and carries enough context to explain exactly why
// the value was rejected.
type ValidationError struct {
	// OffendingValue is the value which failed validation.
	OffendingValue Value
	// FailedConstraints lists every rule the value failed, in evaluation
	// order.
	FailedConstraints []ConstraintError
}

func (e *ValidationError) Error() string {
	var reasons []string
	//
	for _, ith := range e.FailedConstraints {
		reasons = append(reasons, ith.Error())
	}
	//
	return fmt.Sprintf("value %s is invalid: %s", e.OffendingValue, strings.Join(reasons, "; "))
}

// ParseError indicates that a given piece of text could not be parsed into a
// value.
type ParseError struct {
	// Text which failed to parse.
	Text string
	// Underlying cause, if any.
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot parse value from %q: %v", e.Text, e.Cause)
	}
	//
	return fmt.Sprintf("cannot parse value from %q", e.Text)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As traversal.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
