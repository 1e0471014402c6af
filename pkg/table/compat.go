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
	"strings"
)

// SchemaError describes a single way in which a table fails to satisfy the
// expectations of a foreign schema.
type SchemaError interface {
	error
	// isSchemaError seals this interface, keeping the union closed.
	isSchemaError()
}

// ConflictingContractsError indicates a column the table shares with the
// schema, but under a different contract.
type ConflictingContractsError struct {
	// Expected contract, as declared by the schema.
	Expected ColumnContract
	// Received contract, as declared by the table.
	Received ColumnContract
}

func (e *ConflictingContractsError) Error() string {
	return fmt.Sprintf("column %q expects contract %s, but table declares %s",
		e.Expected.Name, e.Expected.Contract, e.Received.Contract)
}

func (e *ConflictingContractsError) isSchemaError() {}

// MissingColumnError indicates a column the schema requires but the table
// does not declare.
type MissingColumnError struct {
	// Name of the missing column.
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q missing from table", e.Name)
}

func (e *MissingColumnError) isSchemaError() {}

// SchemaValidationError aggregates every way in which a table fails to
// satisfy a foreign schema.
type SchemaValidationError struct {
	// SchemaErrors lists every incompatibility, in schema column order.
	SchemaErrors []SchemaError
}

func (e *SchemaValidationError) Error() string {
	var reasons []string
	//
	for _, ith := range e.SchemaErrors {
		reasons = append(reasons, ith.Error())
	}
	//
	return fmt.Sprintf("table is incompatible with schema: %s", strings.Join(reasons, "; "))
}

// CheckCompatibility determines whether this table declares (by name) every
// column a foreign schema requires, under a structurally identical contract.
// Column order is irrelevant, and surplus table columns are permitted.  Data
// is not inspected; this is a check of declarations only.
func (t *Table) CheckCompatibility(schema Schema) error {
	var failures []SchemaError
	//
	for _, theirs := range schema.ColumnContracts {
		ours, found := t.lookupContract(theirs.Name)
		//
		if !found {
			failures = append(failures, &MissingColumnError{Name: theirs.Name})
		} else if !theirs.Contract.Equal(ours.Contract) {
			failures = append(failures, &ConflictingContractsError{Expected: theirs, Received: ours})
		}
	}
	//
	if len(failures) == 0 {
		return nil
	}
	//
	return &SchemaValidationError{SchemaErrors: failures}
}

// Lookup the first contract carrying a given name.
func (t *Table) lookupContract(name string) (ColumnContract, bool) {
	for _, ith := range t.contracts {
		if ith.Name == name {
			return ith, true
		}
	}
	//
	return ColumnContract{}, false
}
