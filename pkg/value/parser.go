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

// The literal syntax for values piggybacks on JSON.  JSON literal syntax
// overlaps with a lot of other textual formats (strict and quoted CSV,
// Python, TOML, etc): the text `"abc"` describes a string in all of them, and
// likewise for number literals.  Hence, one parser covers every boundary
// format the engine cares about.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Parse parses a single textual literal into a value.  Null parses as an
// expectedly missing value, numbers parse as integers where possible (reals
// otherwise), and strings holding an RFC 3339 timestamp parse as datetimes.
// Arrays and objects parse recursively, with object key order preserved and
// duplicate keys rejected.
func Parse(text string) (Value, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	// Distinguish integers from reals.
	decoder.UseNumber()
	//
	val, err := parseValue(decoder)
	//
	if err != nil {
		return nil, &ParseError{Text: text, Cause: err}
	}
	// Reject trailing tokens (e.g. "1 2").
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Text: text, Cause: errors.New("trailing characters")}
	}
	//
	return val, nil
}

func parseValue(decoder *json.Decoder) (Value, error) {
	token, err := decoder.Token()
	//
	if err != nil {
		return nil, err
	}
	//
	switch t := token.(type) {
	case nil:
		return NewMissing(), nil
	case bool:
		return Boolean(t), nil
	case json.Number:
		return parseNumber(t)
	case string:
		return parseText(t), nil
	case json.Delim:
		switch t {
		case '[':
			return parseArray(decoder)
		case '{':
			return parseObject(decoder)
		}
	}
	//
	return nil, fmt.Errorf("unexpected token %v", token)
}

func parseNumber(num json.Number) (Value, error) {
	if i, err := num.Int64(); err == nil {
		return NewInteger(i), nil
	} else if r, err := num.Float64(); err == nil {
		return NewReal(r), nil
	}
	//
	return nil, fmt.Errorf("unrepresentable number %s", num)
}

// A string literal holding a timestamp denotes a datetime; anything else is
// plain text.
func parseText(text string) Value {
	if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
		return NewDateTime(t)
	}
	//
	return Text(text)
}

func parseArray(decoder *json.Decoder) (Value, error) {
	var elements Array
	//
	for decoder.More() {
		element, err := parseValue(decoder)
		//
		if err != nil {
			return nil, err
		}
		//
		elements = append(elements, element)
	}
	// Consume closing delimiter.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	//
	return elements, nil
}

func parseObject(decoder *json.Decoder) (Value, error) {
	var (
		fields Object
		seen   = make(map[string]bool)
	)
	//
	for decoder.More() {
		token, err := decoder.Token()
		//
		if err != nil {
			return nil, err
		}
		// Keys are always strings at this point.
		key := token.(string)
		//
		if seen[key] {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		//
		seen[key] = true
		//
		element, err := parseValue(decoder)
		//
		if err != nil {
			return nil, err
		}
		//
		fields = append(fields, Field{Key: key, Value: element})
	}
	// Consume closing delimiter.
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	//
	return fields, nil
}
