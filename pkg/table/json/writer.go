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
	"bytes"
	"encoding/json"

	"github.com/consensys/go-datakit/pkg/table"
)

// ToBytes renders a table in column-oriented JSON notation.  For example,
// {"X": [0], "Y": [1]} is a table containing one row of data each for two
// columns "X" and "Y".  Column order follows the table, since consumers
// include schema-positional readers.
func ToBytes(tbl *table.Table) ([]byte, error) {
	var buffer bytes.Buffer
	//
	buffer.WriteString("{")
	//
	for i, contract := range tbl.ColumnContracts() {
		if i != 0 {
			buffer.WriteString(",")
		}
		//
		column, err := tbl.Column(table.Ordinal(i))
		//
		if err != nil {
			return nil, err
		}
		//
		key, err := json.Marshal(contract.Name)
		//
		if err != nil {
			return nil, err
		}
		//
		buffer.Write(key)
		buffer.WriteString(":")
		//
		data, err := json.Marshal(column)
		//
		if err != nil {
			return nil, err
		}
		//
		buffer.Write(data)
	}
	//
	buffer.WriteString("}")
	//
	return buffer.Bytes(), nil
}
