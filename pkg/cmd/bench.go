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
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// benchCmd represents the bench command.  Benchmarking is measurement tooling
// around the engine, not part of it: both strategies are required to produce
// identical reports, so only wall-clock duration is of interest here.
var benchCmd = &cobra.Command{
	Use:   "bench [flags] data_file schema_file",
	Short: "Compare sequential and parallel validation of a given data file.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		iterations := GetUint(cmd, "iterations")
		// Parse schema
		schema := readSchemaFile(args[1])
		// Parse data
		tbl := readTableFile(args[0], schema)
		//
		sequential := measure(iterations, tbl.ValidateTable)
		parallel := measure(iterations, tbl.ValidateTableParallel)
		//
		fmt.Printf("rows: %d, columns: %d, iterations: %d\n", tbl.Height(), tbl.Width(), iterations)
		fmt.Printf("sequential: %s/op\n", sequential)
		fmt.Printf("parallel:   %s/op\n", parallel)
	},
}

// Measure the average duration of a given validation strategy across a number
// of iterations.
func measure(iterations uint, strategy func() error) time.Duration {
	if iterations == 0 {
		iterations = 1
	}
	//
	start := time.Now()
	//
	for i := uint(0); i < iterations; i++ {
		// Validation outcome is irrelevant here, only its duration.
		_ = strategy()
	}
	//
	return time.Since(start) / time.Duration(iterations)
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().UintP("iterations", "n", 10, "number of iterations to average over")
}
