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
	"cmp"
	"errors"
	"runtime"
	"slices"

	"github.com/consensys/go-datakit/pkg/util"
)

// Parallel validation follows a fan-out / fan-in pattern: row (resp. column)
// indices are partitioned among a bounded set of workers, each worker
// accumulates failures into a private partial result, and partials are merged
// in a single gather step.  There is no shared mutable accumulator and,
// since tables and contracts are read-only for the duration of a validation
// call, no locking of any kind.  Gathered failures are sorted by row index
// before being returned, so the parallel path is observably identical to the
// sequential one.

// ValidateColumnParallel behaves exactly as ValidateColumn, but evaluates the
// column's rows across one worker per unit of hardware parallelism.
func (t *Table) ValidateColumnParallel(id ColumnId) error {
	ordinal, err := t.resolveColumnId(id)
	//
	if err != nil {
		return err
	}
	//
	return t.validateColumnParallel(ordinal, t.contracts[ordinal], uint(runtime.NumCPU()))
}

// ValidateTableParallel behaves exactly as ValidateTable, but validates
// columns concurrently (one worker per column).
func (t *Table) ValidateTableParallel() error {
	var (
		stats = util.NewPerfStats()
		// Per-column outcomes, indexed by ordinal.
		results = make([]error, t.Width())
		// Communication channel for gathering outcomes.
		ch = make(chan columnResult, t.Width())
	)
	//
	for ordinal := uint(0); ordinal < t.Width(); ordinal++ {
		go func(ordinal uint) {
			err := t.validateColumn(ordinal, t.contracts[ordinal])
			// Send outcome back
			ch <- columnResult{ordinal, err}
		}(ordinal)
	}
	// Collect up all the results
	for i := uint(0); i < t.Width(); i++ {
		r := <-ch
		results[r.ordinal] = r.err
	}
	//
	stats.Log("Table validation (parallel)")
	// Aggregate in ascending column order, so the outcome (including the
	// propagation of any non-aggregatable error) matches the sequential path.
	failures := make(map[string][]RowError)
	//
	for ordinal, err := range results {
		if err != nil {
			var invalid *InvalidValuesError
			//
			if !errors.As(err, &invalid) {
				return err
			}
			//
			failures[t.contracts[ordinal].Name] = invalid.Errors
		}
	}
	//
	if len(failures) == 0 {
		return nil
	}
	//
	return &InvalidDataError{Columns: failures}
}

// Outcome of validating a single column.
type columnResult struct {
	ordinal uint
	err     error
}

func (t *Table) validateColumnParallel(ordinal uint, contract ColumnContract, nworkers uint) error {
	var (
		column = t.columns[ordinal]
		chunks = partition(uint(len(column)), nworkers)
		// Communication channel for gathering partial results.
		ch = make(chan []RowError, len(chunks))
	)
	//
	for _, chunk := range chunks {
		go func(start, end uint) {
			var partial []RowError
			//
			for row := start; row < end; row++ {
				if err := contract.Contract.Validate(column[row]); err != nil {
					partial = append(partial, RowError{Row: row, Err: err})
				}
			}
			// Send partial result back
			ch <- partial
		}(chunk.Left, chunk.Right)
	}
	//
	var failures []RowError
	// Collect up all the partial results
	for range chunks {
		failures = append(failures, <-ch...)
	}
	//
	if len(failures) == 0 {
		return nil
	}
	// Restore ascending row order.
	slices.SortFunc(failures, func(l, r RowError) int {
		return cmp.Compare(l.Row, r.Row)
	})
	//
	return &InvalidValuesError{Contract: contract, Errors: failures}
}

// Partition rows 0..n into at most nworkers half-open [start, end) ranges of
// near-equal size.
func partition(n uint, nworkers uint) []util.Pair[uint, uint] {
	if nworkers == 0 {
		nworkers = 1
	}
	//
	if nworkers > n {
		nworkers = max(n, 1)
	}
	//
	var (
		chunks    = make([]util.Pair[uint, uint], 0, nworkers)
		size      = n / nworkers
		remainder = n % nworkers
		start     = uint(0)
	)
	//
	for i := uint(0); i < nworkers; i++ {
		end := start + size
		// Spread the remainder across the leading chunks.
		if i < remainder {
			end++
		}
		//
		chunks = append(chunks, util.NewPair(start, end))
		start = end
	}
	//
	return chunks
}
