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
	"sort"
	"strings"

	"github.com/consensys/go-datakit/pkg/value"
)

// RowError pairs a row index with the validation failure reported for the
// value at that row.
type RowError struct {
	// Row index of the offending value.
	Row uint
	// Err describes why the value was rejected.
	Err *value.ValidationError
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// UnknownColumnError indicates that a column id could not be resolved: an
// out-of-range ordinal, a name no contract carries, or a name carried by more
// than one contract.
type UnknownColumnError struct {
	// Id which failed to resolve.
	Id ColumnId
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %s", e.Id)
}

// ColumnExistsError indicates an attempt to add a column under a name already
// taken.
type ColumnExistsError struct {
	// Ordinal of the existing column.
	Ordinal uint
	// Name of the existing column.
	Name string
}

func (e *ColumnExistsError) Error() string {
	return fmt.Sprintf("column %q already exists at ordinal %d", e.Name, e.Ordinal)
}

// DimensionError indicates a row whose width does not match the table.
type DimensionError struct {
	// Expected width (i.e. that of the table).
	Expected uint
	// Received width (i.e. that of the offending row).
	Received uint
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("row has %d values but table has %d columns", e.Received, e.Expected)
}

// InvalidValuesError indicates a column holding one or more values which
// violate its contract.  It carries a copy of the contract alongside every
// failure, in ascending row order.
type InvalidValuesError struct {
	// Contract of the offending column.
	Contract ColumnContract
	// Errors for every invalid value of the column, in ascending row order.
	Errors []RowError
}

func (e *InvalidValuesError) Error() string {
	return fmt.Sprintf("column %q contains %d invalid value(s)", e.Contract.Name, len(e.Errors))
}

// InvalidDataError aggregates per-column validation failures across a whole
// table, keyed by column name.  Only columns holding at least one invalid
// value contribute an entry.
type InvalidDataError struct {
	// Columns maps each invalid column's name to its failures, in ascending
	// row order.
	Columns map[string][]RowError
}

func (e *InvalidDataError) Error() string {
	names := make([]string, 0, len(e.Columns))
	//
	for name := range e.Columns {
		names = append(names, fmt.Sprintf("%q", name))
	}
	// Deterministic rendering.
	sort.Strings(names)
	//
	return fmt.Sprintf("table contains invalid values in column(s) %s", strings.Join(names, ", "))
}
