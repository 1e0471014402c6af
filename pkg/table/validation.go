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

	"github.com/consensys/go-datakit/pkg/util"
)

// ValidateColumn checks every value of the column addressed by a given id
// against that column's contract.  The scan never aborts early: every value
// is evaluated and every failure recorded, so one pass yields the complete
// diagnostic picture.  On failure, the resulting InvalidValuesError lists
// failures in ascending row order.  An unresolvable id fails immediately with
// UnknownColumnError, without any validation being attempted.
func (t *Table) ValidateColumn(id ColumnId) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	return t.validateColumn(ordinal, t.contracts[ordinal])
}

// ValidateColumnAgainstContract checks every value of the column addressed by
// a given id against an arbitrary contract, rather than the column's own.
func (t *Table) ValidateColumnAgainstContract(id ColumnId, contract ColumnContract) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	return t.validateColumn(ordinal, contract)
}

// ValidateTable checks every column of this table against its contract.  All
// columns are always checked (no early abort on the first failing column),
// with per-column failures aggregated by column name.  A nil result indicates
// the whole table is valid.
func (t *Table) ValidateTable() error {
	stats := util.NewPerfStats()
	defer stats.Log("Table validation")
	//
	return t.validateAgainstContracts(t.contracts, true)
}

// ValidateTableAgainstSchema checks every column of this table against the
// contracts of a foreign schema, by position.  In strict mode, table columns
// beyond the schema's width are an error; otherwise they are simply not
// checked.
func (t *Table) ValidateTableAgainstSchema(schema Schema, strict bool) error {
	return t.validateAgainstContracts(schema.ColumnContracts, strict)
}

func (t *Table) validateColumn(ordinal uint, contract ColumnContract) error {
	var failures []RowError
	//
	for row, val := range t.columns[ordinal] {
		if err := contract.Contract.Validate(val); err != nil {
			failures = append(failures, RowError{Row: uint(row), Err: err})
		}
	}
	//
	if len(failures) == 0 {
		return nil
	}
	//
	return &InvalidValuesError{Contract: contract, Errors: failures}
}

func (t *Table) validateAgainstContracts(contracts []ColumnContract, strict bool) error {
	failures := make(map[string][]RowError)
	//
	for ordinal := uint(0); ordinal < t.Width(); ordinal++ {
		if ordinal >= uint(len(contracts)) {
			if strict {
				return &UnknownColumnError{Id: Ordinal(ordinal)}
			}
			// Minimal matching: surplus columns are not checked.
			break
		}
		//
		if err := t.validateColumn(ordinal, contracts[ordinal]); err != nil {
			var invalid *InvalidValuesError
			// Invalid values are aggregated; anything else is propagated
			// immediately rather than silently discarded.
			if !errors.As(err, &invalid) {
				return err
			}
			//
			failures[t.contracts[ordinal].Name] = invalid.Errors
		}
	}
	//
	if len(failures) == 0 {
		return nil
	}
	//
	return &InvalidDataError{Columns: failures}
}
