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

import "strings"

// Compare determines the relative ordering of two values, where one exists.
// The ordering is partial: values of different kinds are incomparable, as are
// complex numbers.  Arrays and objects are ordered lexicographically by their
// elements, provided every pairwise comparison is itself defined.  The second
// result indicates whether the ordering is defined at all.
func Compare(lhs Value, rhs Value) (int, bool) {
	if lhs.Kind() != rhs.Kind() {
		return 0, false
	}
	//
	switch l := lhs.(type) {
	case Missing:
		return compareMissing(l, rhs.(Missing)), true
	case Boolean:
		return compareBoolean(l, rhs.(Boolean)), true
	case Number:
		return l.Compare(rhs.(Number))
	case Text:
		return strings.Compare(string(l), string(rhs.(Text))), true
	case DateTime:
		return l.Time().Compare(rhs.(DateTime).Time()), true
	case Array:
		return compareSequence(l, rhs.(Array))
	case Object:
		return compareObject(l, rhs.(Object))
	}
	//
	panic("unreachable")
}

// LessOrEqual determines whether lhs <= rhs holds.  Following the conventions
// of a partial ordering, this is false whenever the two values are
// incomparable.
func LessOrEqual(lhs Value, rhs Value) bool {
	c, ok := Compare(lhs, rhs)
	return ok && c <= 0
}

// GreaterOrEqual determines whether lhs >= rhs holds, being false whenever the
// two values are incomparable.
func GreaterOrEqual(lhs Value, rhs Value) bool {
	c, ok := Compare(lhs, rhs)
	return ok && c >= 0
}

// An expectedly missing value orders below an unexpectedly missing one.
func compareMissing(lhs Missing, rhs Missing) int {
	switch {
	case lhs.Unexpected() == rhs.Unexpected():
		return 0
	case rhs.Unexpected():
		return -1
	default:
		return 1
	}
}

func compareBoolean(lhs Boolean, rhs Boolean) int {
	switch {
	case lhs == rhs:
		return 0
	case bool(rhs):
		return -1
	default:
		return 1
	}
}

func compareSequence(lhs []Value, rhs []Value) (int, bool) {
	n := min(len(lhs), len(rhs))
	//
	for i := 0; i < n; i++ {
		c, ok := Compare(lhs[i], rhs[i])
		//
		if !ok {
			return 0, false
		} else if c != 0 {
			return c, true
		}
	}
	// Shared prefix identical, shorter sequence orders first.
	switch {
	case len(lhs) < len(rhs):
		return -1, true
	case len(lhs) > len(rhs):
		return 1, true
	default:
		return 0, true
	}
}

func compareObject(lhs Object, rhs Object) (int, bool) {
	n := min(len(lhs), len(rhs))
	//
	for i := 0; i < n; i++ {
		if c := strings.Compare(lhs[i].Key, rhs[i].Key); c != 0 {
			return c, true
		}
		//
		c, ok := Compare(lhs[i].Value, rhs[i].Value)
		//
		if !ok {
			return 0, false
		} else if c != 0 {
			return c, true
		}
	}
	//
	switch {
	case len(lhs) < len(rhs):
		return -1, true
	case len(lhs) > len(rhs):
		return 1, true
	default:
		return 0, true
	}
}
