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
package json

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/consensys/go-datakit/pkg/value"
)

// FromBytes parses a table expressed in column-oriented JSON notation against
// a given schema.  Every column the schema declares must be present, all
// columns must have the same number of rows, and each cell is parsed through
// the standard literal parser (hence, e.g., RFC 3339 strings become
// datetimes).  Surplus columns in the data are ignored.
func FromBytes(data []byte, schema table.Schema) (*table.Table, error) {
	var rawData map[string][]json.RawMessage
	//
	if err := json.Unmarshal(data, &rawData); err != nil {
		return nil, err
	}
	//
	var (
		tbl    = table.FromSchema(schema)
		height = -1
		// Parsed columns, in schema order.
		columns = make([]table.Column, len(schema.ColumnContracts))
	)
	//
	for i, contract := range schema.ColumnContracts {
		rawColumn, ok := rawData[contract.Name]
		//
		if !ok {
			return nil, fmt.Errorf("column %q missing from data", contract.Name)
		} else if height >= 0 && height != len(rawColumn) {
			return nil, fmt.Errorf("column %q has %d row(s), expected %d", contract.Name, len(rawColumn), height)
		}
		//
		height = len(rawColumn)
		//
		for _, rawCell := range rawColumn {
			cell, err := value.Parse(string(rawCell))
			//
			if err != nil {
				return nil, err
			}
			//
			columns[i] = append(columns[i], cell)
		}
	}
	// Transpose into rows, reusing the table's own (dimension checked)
	// construction path.
	for row := 0; row < max(height, 0); row++ {
		values := make([]value.Value, len(columns))
		//
		for i := range columns {
			values[i] = columns[i][row]
		}
		//
		if err := tbl.AddRow(values); err != nil {
			return nil, err
		}
	}
	//
	return tbl, nil
}
