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
	"testing"

	"github.com/consensys/go-datakit/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityOk(t *testing.T) {
	tbl := mustTable(t, numberSchema("x", "y"))
	// Column order is irrelevant, surplus table columns are permitted.
	assert.NoError(t, tbl.CheckCompatibility(numberSchema("y")))
	assert.NoError(t, tbl.CheckCompatibility(numberSchema("y", "x")))
	assert.NoError(t, tbl.CheckCompatibility(NewSchema()))
}

func TestCompatibilityMissingColumn(t *testing.T) {
	tbl := mustTable(t, numberSchema("x"))
	//
	var failure *SchemaValidationError
	require.ErrorAs(t, tbl.CheckCompatibility(numberSchema("x", "z")), &failure)
	require.Len(t, failure.SchemaErrors, 1)
	//
	missing, ok := failure.SchemaErrors[0].(*MissingColumnError)
	require.True(t, ok)
	assert.Equal(t, "z", missing.Name)
}

func TestCompatibilityConflictingContracts(t *testing.T) {
	tbl := mustTable(t, numberSchema("x"))
	// Same name, different contract.
	foreign := NewSchema().WithColumn("x",
		value.NewContract(value.NumberKind, value.Minimum{Bound: value.NewInteger(0)}))
	//
	var failure *SchemaValidationError
	require.ErrorAs(t, tbl.CheckCompatibility(foreign), &failure)
	require.Len(t, failure.SchemaErrors, 1)
	//
	conflict, ok := failure.SchemaErrors[0].(*ConflictingContractsError)
	require.True(t, ok)
	assert.Equal(t, "x", conflict.Expected.Name)
	// Declarations only: data is never inspected, so an empty table still
	// conflicts.
	assert.Zero(t, tbl.Height())
}
