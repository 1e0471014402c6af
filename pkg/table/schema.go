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

import "github.com/consensys/go-datakit/pkg/value"

// Schema is a free-standing, ordered set of column contracts, independent of
// any particular table.  Schemas describe foreign expectations a table can be
// validated or compatibility-checked against.
type Schema struct {
	// ColumnContracts of this schema, in column order.
	ColumnContracts []ColumnContract
}

// NewSchema constructs an empty schema.
func NewSchema() Schema {
	return Schema{}
}

// SchemaOf constructs a schema from a given sequence of column contracts.
func SchemaOf(contracts ...ColumnContract) Schema {
	return Schema{contracts}
}

// WithColumn returns a copy of this schema extended with a named contract.
func (s Schema) WithColumn(name string, contract value.Contract) Schema {
	ncontracts := make([]ColumnContract, len(s.ColumnContracts)+1)
	copy(ncontracts, s.ColumnContracts)
	ncontracts[len(s.ColumnContracts)] = ColumnContract{Name: name, Contract: contract}
	//
	return Schema{ncontracts}
}
