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
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// MarshalJSON implementation for the json.Marshaler interface.  Missing
// values encode as null, irrespective of whether they were expected.
func (v Missing) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implementation for the json.Marshaler interface.
func (v Boolean) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(v))
}

// MarshalJSON implementation for the json.Marshaler interface.  Complex
// numbers have no JSON counterpart and, hence, encode as strings (e.g.
// "(1+2i)").
func (v Number) MarshalJSON() ([]byte, error) {
	switch v.class {
	case IntegerClass:
		return json.Marshal(v.integer)
	case RealClass:
		return json.Marshal(v.real)
	default:
		return json.Marshal(strconv.FormatComplex(v.cplx, 'g', -1, 128))
	}
}

// MarshalJSON implementation for the json.Marshaler interface.
func (v Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(v))
}

// MarshalJSON implementation for the json.Marshaler interface.  Datetimes
// encode as RFC 3339 strings, which the literal parser recognises on the way
// back in.
func (v DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.instant.Format(time.RFC3339Nano))
}

// MarshalJSON implementation for the json.Marshaler interface.
func (v Array) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(v))
}

// MarshalJSON implementation for the json.Marshaler interface.  Unlike a map,
// field order is preserved.
func (v Object) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	//
	buffer.WriteString("{")
	//
	for i, field := range v {
		if i != 0 {
			buffer.WriteString(",")
		}
		//
		key, err := json.Marshal(field.Key)
		//
		if err != nil {
			return nil, err
		}
		//
		buffer.Write(key)
		buffer.WriteString(":")
		//
		val, err := json.Marshal(field.Value)
		//
		if err != nil {
			return nil, err
		}
		//
		buffer.Write(val)
	}
	//
	buffer.WriteString("}")
	//
	return buffer.Bytes(), nil
}
