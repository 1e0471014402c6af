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
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] data_file schema_file",
	Short: "Check a given data file against a schema of column contracts.",
	Long: `Check a given data file against a schema of column contracts.
	Data can be given either as column-oriented JSON or as CSV files.
	Schemas are given in YAML notation.  Every violation is reported,
	along with its row, the offending value and the rule that failed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg checkConfig
		//
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg.parallel = GetFlag(cmd, "parallel")
		cfg.column = GetString(cmd, "column")
		// Parse schema
		schema := readSchemaFile(args[1])
		// Parse data
		tbl := readTableFile(args[0], schema)
		// Go!
		checkTable(tbl, cfg)
	},
}

// check config encapsulates certain parameters to be used when checking
// tables.
type checkConfig struct {
	// Use the data-parallel validation path.
	parallel bool
	// Check a single column (by name) rather than the whole table.
	column string
}

func checkTable(tbl *table.Table, cfg checkConfig) {
	var err error
	//
	switch {
	case cfg.column != "" && cfg.parallel:
		err = tbl.ValidateColumnParallel(table.Name(cfg.column))
	case cfg.column != "":
		err = tbl.ValidateColumn(table.Name(cfg.column))
	case cfg.parallel:
		err = tbl.ValidateTableParallel()
	default:
		err = tbl.ValidateTable()
	}
	//
	if err != nil {
		reportFailures(err)
		os.Exit(1)
	}
	//
	fmt.Println("OK")
}

func reportFailures(err error) {
	var (
		invalidData   *table.InvalidDataError
		invalidColumn *table.InvalidValuesError
		width         = terminalWidth()
	)
	//
	switch {
	case errors.As(err, &invalidData):
		// Deterministic report order.
		names := make([]string, 0, len(invalidData.Columns))
		//
		for name := range invalidData.Columns {
			names = append(names, name)
		}
		//
		sort.Strings(names)
		//
		for _, name := range names {
			reportColumnFailures(name, invalidData.Columns[name], width)
		}
	case errors.As(err, &invalidColumn):
		reportColumnFailures(invalidColumn.Contract.Name, invalidColumn.Errors, width)
	default:
		fmt.Println(err)
	}
}

func reportColumnFailures(name string, failures []table.RowError, width int) {
	fmt.Printf("column %q: %d invalid value(s)\n", name, len(failures))
	//
	for _, failure := range failures {
		fmt.Println(clipLine(fmt.Sprintf("  %s", failure), width))
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("parallel", "p", false, "use data-parallel validation")
	checkCmd.Flags().StringP("column", "c", "", "check a single column by name")
}
