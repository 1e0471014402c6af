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
package csv

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/consensys/go-datakit/pkg/value"
)

// FromReader parses delimiter-separated data (with a header row) into a table
// against a given schema.  Header names may appear in any order, but every
// column the schema declares must be present exactly once; surplus columns
// are ignored.  Cells are parsed as JSON-style literals, with two
// concessions to the format: an empty cell denotes a missing value, and a
// cell which is not a valid literal is taken as bare (unquoted) text.
func FromReader(reader io.Reader, schema table.Schema) (*table.Table, error) {
	var (
		records = csv.NewReader(reader)
		tbl     = table.FromSchema(schema)
	)
	//
	header, err := records.Read()
	//
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	} else if err != nil {
		return nil, err
	}
	// Map each schema column to its position within the header.
	positions, err := resolveHeader(header, schema)
	//
	if err != nil {
		return nil, err
	}
	//
	for {
		record, err := records.Read()
		//
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		//
		row := make([]value.Value, len(positions))
		//
		for i, pos := range positions {
			row[i] = parseCell(record[pos])
		}
		//
		if err := tbl.AddRow(row); err != nil {
			return nil, err
		}
	}
	//
	return tbl, nil
}

// ToWriter renders a table as delimiter-separated data, with a header row of
// column names and each cell written as a literal (so the output round-trips
// through FromReader).
func ToWriter(writer io.Writer, tbl *table.Table) error {
	var (
		records   = csv.NewWriter(writer)
		contracts = tbl.ColumnContracts()
		header    = make([]string, len(contracts))
	)
	//
	for i, contract := range contracts {
		header[i] = contract.Name
	}
	//
	if err := records.Write(header); err != nil {
		return err
	}
	//
	for row := uint(0); row < tbl.Height(); row++ {
		record := make([]string, len(contracts))
		//
		for i := range contracts {
			column, err := tbl.Column(table.Ordinal(i))
			//
			if err != nil {
				return err
			}
			//
			cell, err := json.Marshal(column[row])
			//
			if err != nil {
				return err
			}
			//
			record[i] = string(cell)
		}
		//
		if err := records.Write(record); err != nil {
			return err
		}
	}
	//
	records.Flush()
	//
	return records.Error()
}

func resolveHeader(header []string, schema table.Schema) ([]int, error) {
	positions := make([]int, len(schema.ColumnContracts))
	//
	for i, contract := range schema.ColumnContracts {
		position := -1
		//
		for j, name := range header {
			if name == contract.Name {
				if position >= 0 {
					return nil, fmt.Errorf("duplicate column %q in header", name)
				}
				//
				position = j
			}
		}
		//
		if position < 0 {
			return nil, fmt.Errorf("column %q missing from header", contract.Name)
		}
		//
		positions[i] = position
	}
	//
	return positions, nil
}

func parseCell(cell string) value.Value {
	if cell == "" {
		return value.NewMissing()
	}
	//
	if val, err := value.Parse(cell); err == nil {
		return val
	}
	// Not a literal, so take it as bare text.
	return value.Text(cell)
}
