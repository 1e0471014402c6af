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

	"github.com/consensys/go-datakit/pkg/table/json"
	"github.com/spf13/cobra"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [flags] data_file schema_file",
	Short: "Convert a given data file into column-oriented JSON.",
	Long: `Convert a given data file into column-oriented JSON.
	Data can be given either as column-oriented JSON or as CSV files,
	and is read through the schema (so, e.g., timestamps survive the
	round trip).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		output := GetString(cmd, "output")
		// Parse schema
		schema := readSchemaFile(args[1])
		// Parse data
		tbl := readTableFile(args[0], schema)
		// Render
		data, err := json.ToBytes(tbl)
		//
		if err == nil && output == "" {
			fmt.Println(string(data))
			return
		} else if err == nil {
			if err = os.WriteFile(output, data, 0644); err == nil {
				return
			}
		}
		// Handle error
		fmt.Println(err)
		os.Exit(2)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "write output to a given file")
}
