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
package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/consensys/go-datakit/pkg/table/csv"
	"github.com/consensys/go-datakit/pkg/table/json"
	"github.com/consensys/go-datakit/pkg/table/yaml"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a schema file in YAML notation.
func readSchemaFile(filename string) table.Schema {
	data, err := os.ReadFile(filename)
	//
	if err == nil {
		var schema table.Schema
		//
		if schema, err = yaml.FromBytes(data); err == nil {
			return schema
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return table.Schema{}
}

// Parse a data file using a parser based on the extension of the filename.
func readTableFile(filename string, schema table.Schema) *table.Table {
	data, err := os.ReadFile(filename)
	//
	if err == nil {
		var tbl *table.Table
		// Check file extension
		switch ext := path.Ext(filename); ext {
		case ".json":
			tbl, err = json.FromBytes(data, schema)
		case ".csv":
			tbl, err = csv.FromReader(bytes.NewReader(data), schema)
		default:
			err = fmt.Errorf("unknown data file format: %s", ext)
		}
		//
		if err == nil {
			return tbl
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Determine the width of the enclosing terminal, falling back on a sensible
// default when stdout is not a terminal at all.
func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return width
	}
	//
	return 80
}

// Clip a line to a given width.
func clipLine(line string, width int) string {
	if width > 3 && len(line) > width {
		return line[:width-3] + "..."
	}
	//
	return line
}
