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
package table

import (
	"errors"
	"testing"

	"github.com/consensys/go-datakit/pkg/value"
)

// Construct a table from a schema and a sequence of rows, failing the test on
// any error.
func mustTable(t *testing.T, schema Schema, rows ...[]value.Value) *Table {
	t.Helper()
	//
	tbl := FromSchema(schema)
	//
	for _, row := range rows {
		if err := tbl.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}
	//
	return tbl
}

func numberSchema(names ...string) Schema {
	schema := NewSchema()
	//
	for _, name := range names {
		schema = schema.WithColumn(name, value.NewContract(value.NumberKind))
	}
	//
	return schema
}

func TestResolveOrdinal(t *testing.T) {
	tbl := mustTable(t, numberSchema("x", "y"))
	//
	if _, err := tbl.Column(Ordinal(1)); err != nil {
		t.Errorf("expected ordinal 1 to resolve, got %v", err)
	}
	// Out-of-range ordinals fail with an unknown column error.
	var unknown *UnknownColumnError
	//
	if _, err := tbl.Column(Ordinal(2)); !errors.As(err, &unknown) {
		t.Errorf("expected an unknown column error, got %v", err)
	}
}

func TestResolveName(t *testing.T) {
	tbl := mustTable(t, numberSchema("x", "y"))
	//
	contract, err := tbl.ColumnContract(Name("y"))
	//
	if err != nil {
		t.Fatal(err)
	} else if contract.Name != "y" {
		t.Errorf("resolved wrong column %q", contract.Name)
	}
	//
	var unknown *UnknownColumnError
	//
	if _, err := tbl.Column(Name("z")); !errors.As(err, &unknown) {
		t.Errorf("expected an unknown column error, got %v", err)
	}
}

func TestResolveAmbiguousName(t *testing.T) {
	// A schema is free to declare duplicate names; resolving one must fail
	// deterministically rather than pick an arbitrary match.
	tbl := mustTable(t, numberSchema("x", "x"))
	//
	var unknown *UnknownColumnError
	//
	if _, err := tbl.Column(Name("x")); !errors.As(err, &unknown) {
		t.Errorf("expected an unknown column error, got %v", err)
	}
}

func TestAddEmptyColumn(t *testing.T) {
	tbl := NewTable()
	contract := ColumnContract{Name: "x", Contract: value.NewContract(value.NumberKind)}
	//
	if err := tbl.AddEmptyColumn(contract); err != nil {
		t.Fatal(err)
	}
	//
	if tbl.Width() != 1 {
		t.Fatalf("expected width 1, got %d", tbl.Width())
	}
	// Names are unique.
	var exists *ColumnExistsError
	//
	if err := tbl.AddEmptyColumn(contract); !errors.As(err, &exists) {
		t.Errorf("expected a column exists error, got %v", err)
	} else if exists.Ordinal != 0 || exists.Name != "x" {
		t.Errorf("unexpected error contents %v", exists)
	}
}

func TestAddRowDimensions(t *testing.T) {
	tbl := FromSchema(numberSchema("x", "y"))
	//
	var dimension *DimensionError
	//
	if err := tbl.AddRow([]value.Value{value.NewInteger(1)}); !errors.As(err, &dimension) {
		t.Errorf("expected a dimension error, got %v", err)
	}
	//
	if err := tbl.AddRow([]value.Value{value.NewInteger(1), value.NewInteger(2)}); err != nil {
		t.Fatal(err)
	}
	//
	if tbl.Height() != 1 {
		t.Errorf("expected height 1, got %d", tbl.Height())
	}
}

func TestRemoveColumn(t *testing.T) {
	tbl := mustTable(t, numberSchema("x", "y", "z"))
	//
	if err := tbl.RemoveColumn(Name("y")); err != nil {
		t.Fatal(err)
	}
	//
	if tbl.Width() != 2 {
		t.Fatalf("expected width 2, got %d", tbl.Width())
	}
	// Remaining columns shift down.
	contract, err := tbl.ColumnContract(Ordinal(1))
	//
	if err != nil {
		t.Fatal(err)
	} else if contract.Name != "z" {
		t.Errorf("expected column \"z\" at ordinal 1, got %q", contract.Name)
	}
}

func TestAlterColumn(t *testing.T) {
	tbl := mustTable(t, numberSchema("x"),
		[]value.Value{value.NewInteger(-1)},
	)
	// Valid under the original contract...
	if err := tbl.ValidateTable(); err != nil {
		t.Fatal(err)
	}
	// ...but not under a tightened one.
	tightened := ColumnContract{
		Name:     "x",
		Contract: value.NewContract(value.NumberKind, value.Minimum{Bound: value.NewInteger(0)}),
	}
	//
	if err := tbl.AlterColumn(Name("x"), tightened); err != nil {
		t.Fatal(err)
	}
	//
	if err := tbl.ValidateTable(); err == nil {
		t.Error("expected validation to fail under the tightened contract")
	}
}

func TestMapColumn(t *testing.T) {
	tbl := mustTable(t, numberSchema("x"),
		[]value.Value{value.NewInteger(1)},
		[]value.Value{value.NewInteger(2)},
	)
	//
	double := func(v value.Value) value.Value {
		return value.NewInteger(v.(value.Number).Int() * 2)
	}
	//
	if err := tbl.MapColumn(Name("x"), double); err != nil {
		t.Fatal(err)
	}
	//
	column, _ := tbl.Column(Name("x"))
	//
	if !column[0].Equal(value.NewInteger(2)) || !column[1].Equal(value.NewInteger(4)) {
		t.Errorf("unexpected column contents %v", column)
	}
}

func TestMapColumnIf(t *testing.T) {
	tbl := mustTable(t, numberSchema("x", "flag"),
		[]value.Value{value.NewInteger(1), value.NewInteger(1)},
		[]value.Value{value.NewInteger(2), value.NewInteger(0)},
	)
	//
	double := func(v value.Value) value.Value {
		return value.NewInteger(v.(value.Number).Int() * 2)
	}
	// Only rows where "flag" is nonzero are mapped.
	nonzero := Predicate{
		Column: Name("flag"),
		Test:   func(v value.Value) bool { return !v.Equal(value.NewInteger(0)) },
	}
	//
	if err := tbl.MapColumnIf(Name("x"), double, []Predicate{nonzero}); err != nil {
		t.Fatal(err)
	}
	//
	column, _ := tbl.Column(Name("x"))
	//
	if !column[0].Equal(value.NewInteger(2)) || !column[1].Equal(value.NewInteger(2)) {
		t.Errorf("unexpected column contents %v", column)
	}
}
