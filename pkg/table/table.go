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
	"fmt"

	"github.com/consensys/go-datakit/pkg/value"
)

// Column is an ordered sequence of values, indexed by row number.  Every
// column is owned exclusively by its enclosing table.
type Column []value.Value

// ColumnContract pairs a column name with the contract every value in the
// corresponding column must satisfy.  Contracts are immutable during
// validation.
type ColumnContract struct {
	// Name of the column.
	Name string
	// Contract every value of the column must satisfy.
	Contract value.Contract
}

// ColumnId addresses a column of a table, either by its ordinal position or
// by its (unique) name.
type ColumnId interface {
	fmt.Stringer
	// isColumnId seals this interface, keeping the union closed.
	isColumnId()
}

// Ordinal addresses a column by its position within the table.
type Ordinal uint

func (o Ordinal) String() string { return fmt.Sprintf("#%d", uint(o)) }

func (o Ordinal) isColumnId() {}

// Name addresses a column by the name of its contract.
type Name string

func (n Name) String() string { return string(n) }

func (n Name) isColumnId() {}

// Table is an ordered collection of columns paired 1:1 with their contracts,
// where columns[i] is validated against contracts[i].  Tables are constructed
// once (e.g. from parsed literals or an external data source) and then
// validated zero or more times; validation is strictly read-only, whilst any
// mutation requires exclusive access via a pointer receiver.
type Table struct {
	columns   []Column
	contracts []ColumnContract
	// Number of rows held in each column.
	height uint
}

// NewTable constructs an empty table with no columns.
func NewTable() *Table {
	return &Table{}
}

// FromSchema constructs an empty table whose columns match the contracts of a
// given schema.
func FromSchema(schema Schema) *Table {
	var tbl Table
	//
	tbl.contracts = append(tbl.contracts, schema.ColumnContracts...)
	tbl.columns = make([]Column, len(schema.ColumnContracts))
	//
	return &tbl
}

// Height returns the number of rows in this table.
func (t *Table) Height() uint {
	return t.height
}

// Width returns the number of columns in this table.
func (t *Table) Width() uint {
	return uint(len(t.columns))
}

// ColumnContracts returns the contracts of this table, in column order.
func (t *Table) ColumnContracts() []ColumnContract {
	return t.contracts
}

// Column returns the data of the column addressed by a given id.
func (t *Table) Column(id ColumnId) (Column, error) {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return nil, err
	}
	//
	return t.columns[ordinal], nil
}

// ColumnContract returns the contract of the column addressed by a given id.
func (t *Table) ColumnContract(id ColumnId) (ColumnContract, error) {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return ColumnContract{}, err
	}
	//
	return t.contracts[ordinal], nil
}

// AddEmptyColumn appends a new (empty) column under a given contract.  This
// fails if a column of the same name already exists.
func (t *Table) AddEmptyColumn(contract ColumnContract) error {
	for i, ith := range t.contracts {
		if ith.Name == contract.Name {
			return &ColumnExistsError{Ordinal: uint(i), Name: contract.Name}
		}
	}
	//
	t.contracts = append(t.contracts, contract)
	t.columns = append(t.columns, nil)
	//
	return nil
}

// RemoveColumn removes the column addressed by a given id, along with its
// contract.
func (t *Table) RemoveColumn(id ColumnId) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	t.contracts = append(t.contracts[:ordinal], t.contracts[ordinal+1:]...)
	t.columns = append(t.columns[:ordinal], t.columns[ordinal+1:]...)
	//
	return nil
}

// AddRow appends a row of values, one per column.
func (t *Table) AddRow(row []value.Value) error {
	if uint(len(row)) != t.Width() {
		return &DimensionError{Expected: t.Width(), Received: uint(len(row))}
	}
	//
	for i, val := range row {
		t.columns[i] = append(t.columns[i], val)
	}
	//
	t.height++
	//
	return nil
}

// AlterColumn replaces the contract of the column addressed by a given id.
// The column data itself is untouched (and may well be invalid under the new
// contract).
func (t *Table) AlterColumn(id ColumnId, contract ColumnContract) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	t.contracts[ordinal] = contract
	//
	return nil
}

// MapColumn applies a pure function to every cell of the column addressed by
// a given id, replacing each cell with the function's result.
func (t *Table) MapColumn(id ColumnId, fn func(value.Value) value.Value) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	column := t.columns[ordinal]
	//
	for row := range column {
		column[row] = fn(column[row])
	}
	//
	return nil
}

// Predicate gates a row-wise operation on the value some other column holds
// at the same row.
type Predicate struct {
	// Column whose value is inspected.
	Column ColumnId
	// Test applied to that value.
	Test func(value.Value) bool
}

// MapColumnIf applies a pure function to every cell of the column addressed
// by a given id, but only on rows where every predicate accepts the value its
// own column holds at that row.
func (t *Table) MapColumnIf(id ColumnId, fn func(value.Value) value.Value, predicates []Predicate) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	// Resolve predicate columns up front, so a bad id fails the whole
	// operation rather than some prefix of it.
	ordinals := make([]uint, len(predicates))
	//
	for i, p := range predicates {
		if ordinals[i], err = t.resolveColumnId(p.Column); err != nil {
			return err
		}
	}
	//
	for row := uint(0); row < t.height; row++ {
		accepted := true
		//
		for i, p := range predicates {
			if !p.Test(t.columns[ordinals[i]][row]) {
				accepted = false
				break
			}
		}
		//
		if accepted {
			t.columns[ordinal][row] = fn(t.columns[ordinal][row])
		}
	}
	//
	return nil
}

// Resolve a column id into an ordinal index.  An ordinal resolves iff it lies
// within the table's width; a name resolves iff exactly one contract carries
// it (duplicate names are deliberately treated as unresolvable, rather than
// picking an arbitrary match).
func (t *Table) resolveColumnId(id ColumnId) (uint, error) {
	switch id := id.(type) {
	case Ordinal:
		if uint(id) < t.Width() {
			return uint(id), nil
		}
	case Name:
		var (
			matches uint
			ordinal uint
		)
		//
		for i, ith := range t.contracts {
			if ith.Name == string(id) {
				matches++
				ordinal = uint(i)
			}
		}
		//
		if matches == 1 {
			return ordinal, nil
		}
	}
	//
	return 0, &UnknownColumnError{Id: id}
}
