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
	"time"
)

// Kind identifies the variant of a dynamic runtime value.  The set of kinds is
// closed, and every consumer of Value is expected to match exhaustively over
// it.
type Kind uint8

const (
	// MissingKind indicates a rich null value.
	MissingKind Kind = iota
	// BooleanKind indicates a true / false value.
	BooleanKind
	// NumberKind indicates a numeric value (integer, real or complex).
	NumberKind
	// TextKind indicates a string value.
	TextKind
	// DateTimeKind indicates a point (or partial point) in time.
	DateTimeKind
	// ArrayKind indicates an ordered sequence of values.
	ArrayKind
	// ObjectKind indicates an ordered mapping from unique keys to values.
	ObjectKind
)

// String returns a human-readable name for this kind.
func (k Kind) String() string {
	switch k {
	case MissingKind:
		return "missing"
	case BooleanKind:
		return "boolean"
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case DateTimeKind:
		return "dateTime"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	}
	//
	panic(fmt.Sprintf("unknown value kind (%d)", uint8(k)))
}

// Value is the dynamic runtime representation of a single table cell.  Values
// form a closed tagged union over the variants enumerated by Kind, and are
// immutable once constructed.  Elements of composite values (arrays, objects)
// are themselves values, recursively.
type Value interface {
	// Kind returns the variant tag of this value.
	Kind() Kind
	// Equal determines whether this value is (deeply) identical to another.
	Equal(other Value) bool
	// String returns a human-readable rendering of this value, suitable for
	// inclusion in error reports.
	String() string
	// isValue seals this interface against external implementations, thereby
	// keeping the union closed.
	isValue()
}

// ============================================================================
// Missing
// ============================================================================

// Missing is a rich null value.  It differentiates between data which is
// absent as expected, and data which is absent due to some upstream error
// (e.g. a failed conversion).
type Missing struct {
	unexpected bool
}

// NewMissing constructs an expectedly absent value.
func NewMissing() Missing {
	return Missing{false}
}

// NewUnexpectedMissing constructs a value which is absent due to some error.
func NewUnexpectedMissing() Missing {
	return Missing{true}
}

// Kind implementation for the Value interface.
func (v Missing) Kind() Kind { return MissingKind }

// Unexpected reports whether this value is absent due to some error.
func (v Missing) Unexpected() bool { return v.unexpected }

// Equal implementation for the Value interface.
func (v Missing) Equal(other Value) bool {
	if o, ok := other.(Missing); ok {
		return v.unexpected == o.unexpected
	}
	//
	return false
}

func (v Missing) String() string {
	if v.unexpected {
		return "null!"
	}
	//
	return "null"
}

func (v Missing) isValue() {}

// ============================================================================
// Boolean
// ============================================================================

// Boolean is a true / false value.
type Boolean bool

// Kind implementation for the Value interface.
func (v Boolean) Kind() Kind { return BooleanKind }

// Equal implementation for the Value interface.
func (v Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && v == o
}

func (v Boolean) String() string {
	return fmt.Sprintf("%t", bool(v))
}

func (v Boolean) isValue() {}

// ============================================================================
// Text
// ============================================================================

// Text is a string value.
type Text string

// Kind implementation for the Value interface.
func (v Text) Kind() Kind { return TextKind }

// Equal implementation for the Value interface.
func (v Text) Equal(other Value) bool {
	o, ok := other.(Text)
	return ok && v == o
}

func (v Text) String() string {
	return fmt.Sprintf("%q", string(v))
}

func (v Text) isValue() {}

// ============================================================================
// DateTime
// ============================================================================

// DateTime is a point in time, held internally in UTC.
type DateTime struct {
	instant time.Time
}

// NewDateTime constructs a datetime value from a given time, normalising it to
// UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime{t.UTC()}
}

// Kind implementation for the Value interface.
func (v DateTime) Kind() Kind { return DateTimeKind }

// Time returns the underlying instant.
func (v DateTime) Time() time.Time { return v.instant }

// Equal implementation for the Value interface.
func (v DateTime) Equal(other Value) bool {
	o, ok := other.(DateTime)
	return ok && v.instant.Equal(o.instant)
}

func (v DateTime) String() string {
	return v.instant.Format(time.RFC3339Nano)
}

func (v DateTime) isValue() {}

// ============================================================================
// Array
// ============================================================================

// Array is an ordered sequence of values.
type Array []Value

// Kind implementation for the Value interface.
func (v Array) Kind() Kind { return ArrayKind }

// Equal implementation for the Value interface.
func (v Array) Equal(other Value) bool {
	o, ok := other.(Array)
	//
	if !ok || len(v) != len(o) {
		return false
	}
	//
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	//
	return true
}

func (v Array) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, ith := range v {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(ith.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

func (v Array) isValue() {}

// ============================================================================
// Object
// ============================================================================

// Field is a single key / value pairing within an object.
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from unique keys to values.  Key uniqueness is
// an invariant established at construction time (e.g. by the literal parser)
// and assumed everywhere else.
type Object []Field

// Kind implementation for the Value interface.
func (v Object) Kind() Kind { return ObjectKind }

// Get returns the value held under a given key, if any.
func (v Object) Get(key string) (Value, bool) {
	for _, field := range v {
		if field.Key == key {
			return field.Value, true
		}
	}
	//
	return nil, false
}

// Equal implementation for the Value interface.
func (v Object) Equal(other Value) bool {
	o, ok := other.(Object)
	//
	if !ok || len(v) != len(o) {
		return false
	}
	//
	for i := range v {
		if v[i].Key != o[i].Key || !v[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	//
	return true
}

func (v Object) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, field := range v {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(fmt.Sprintf("%q:%s", field.Key, field.Value.String()))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

func (v Object) isValue() {}
