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
package yaml

import (
	"fmt"
	"time"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/consensys/go-datakit/pkg/value"
	"gopkg.in/yaml.v3"
)

// Schemas are declared in YAML, one entry per column.  For example:
//
//	columns:
//	  - name: age
//	    type: number
//	    constraints:
//	      - minimum: 0
//	  - name: label
//	    type: text
//	    constraints:
//	      - maximumLength: 32
//	      - not:
//	          oneOf: ["reserved"]

// FromBytes parses a YAML schema declaration into a schema.
func FromBytes(data []byte) (table.Schema, error) {
	var (
		decl   schemaDecl
		schema table.Schema
	)
	//
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return schema, err
	}
	//
	for _, column := range decl.Columns {
		kind, err := kindOf(column.Type)
		//
		if err != nil {
			return schema, err
		}
		//
		var constraints []value.Constraint
		//
		for i := range column.Constraints {
			constraint, err := parseConstraint(&column.Constraints[i])
			//
			if err != nil {
				return schema, err
			}
			//
			constraints = append(constraints, constraint)
		}
		//
		schema = schema.WithColumn(column.Name, value.NewContract(kind, constraints...))
	}
	//
	return schema, nil
}

type schemaDecl struct {
	Columns []columnDecl `yaml:"columns"`
}

type columnDecl struct {
	Name        string      `yaml:"name"`
	Type        string      `yaml:"type"`
	Constraints []yaml.Node `yaml:"constraints"`
}

func kindOf(name string) (value.Kind, error) {
	switch name {
	case "missing":
		return value.MissingKind, nil
	case "boolean":
		return value.BooleanKind, nil
	case "number":
		return value.NumberKind, nil
	case "text":
		return value.TextKind, nil
	case "dateTime", "datetime":
		return value.DateTimeKind, nil
	case "array":
		return value.ArrayKind, nil
	case "object":
		return value.ObjectKind, nil
	}
	//
	return 0, fmt.Errorf("unknown value type %q", name)
}

// A constraint is either the bare scalar "any", or a single-entry mapping
// from a constraint name to its argument.
func parseConstraint(node *yaml.Node) (value.Constraint, error) {
	if node.Kind == yaml.ScalarNode && node.Value == "any" {
		return value.Any{}, nil
	} else if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return nil, fmt.Errorf("malformed constraint at line %d", node.Line)
	}
	//
	var (
		name     = node.Content[0].Value
		argument = node.Content[1]
	)
	//
	switch name {
	case "not":
		inner, err := parseConstraint(argument)
		//
		if err != nil {
			return nil, err
		}
		//
		return value.Not{Constraint: inner}, nil
	case "oneOf":
		if argument.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("oneOf expects a sequence at line %d", argument.Line)
		}
		//
		var allowed value.OneOf
		//
		for _, item := range argument.Content {
			val, err := parseLiteral(item)
			//
			if err != nil {
				return nil, err
			}
			//
			allowed = append(allowed, val)
		}
		//
		return allowed, nil
	case "minimum":
		bound, err := parseLiteral(argument)
		//
		if err != nil {
			return nil, err
		}
		//
		return value.Minimum{Bound: bound}, nil
	case "maximum":
		bound, err := parseLiteral(argument)
		//
		if err != nil {
			return nil, err
		}
		//
		return value.Maximum{Bound: bound}, nil
	case "minimumLength":
		var length uint
		//
		if err := argument.Decode(&length); err != nil {
			return nil, err
		}
		//
		return value.MinimumLength(length), nil
	case "maximumLength":
		var length uint
		//
		if err := argument.Decode(&length); err != nil {
			return nil, err
		}
		//
		return value.MaximumLength(length), nil
	}
	//
	return nil, fmt.Errorf("unknown constraint %q", name)
}

// Literals follow the same conventions as the textual literal parser: null
// denotes a missing value, and strings holding an RFC 3339 timestamp denote
// datetimes.
func parseLiteral(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return parseScalar(node)
	case yaml.SequenceNode:
		var elements value.Array
		//
		for _, item := range node.Content {
			element, err := parseLiteral(item)
			//
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, element)
		}
		//
		return elements, nil
	case yaml.MappingNode:
		var fields value.Object
		//
		for i := 0; i+1 < len(node.Content); i += 2 {
			element, err := parseLiteral(node.Content[i+1])
			//
			if err != nil {
				return nil, err
			}
			//
			fields = append(fields, value.Field{Key: node.Content[i].Value, Value: element})
		}
		//
		return fields, nil
	}
	//
	return nil, fmt.Errorf("malformed literal at line %d", node.Line)
}

func parseScalar(node *yaml.Node) (value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.NewMissing(), nil
	case "!!bool":
		var b bool
		//
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		//
		return value.Boolean(b), nil
	case "!!int":
		var i int64
		//
		if err := node.Decode(&i); err != nil {
			return nil, err
		}
		//
		return value.NewInteger(i), nil
	case "!!float":
		var r float64
		//
		if err := node.Decode(&r); err != nil {
			return nil, err
		}
		//
		return value.NewReal(r), nil
	case "!!timestamp":
		var t time.Time
		//
		if err := node.Decode(&t); err != nil {
			return nil, err
		}
		//
		return value.NewDateTime(t), nil
	case "!!str":
		if t, err := time.Parse(time.RFC3339Nano, node.Value); err == nil {
			return value.NewDateTime(t), nil
		}
		//
		return value.Text(node.Value), nil
	}
	//
	return nil, fmt.Errorf("unsupported literal %q at line %d", node.Value, node.Line)
}
