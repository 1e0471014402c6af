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
	"testing"

	"github.com/consensys/go-datakit/pkg/table"
	"github.com/consensys/go-datakit/pkg/value"
)

func testSchema() table.Schema {
	return table.NewSchema().
		WithColumn("id", value.NewContract(value.NumberKind)).
		WithColumn("name", value.NewContract(value.TextKind))
}

func TestReadTable(t *testing.T) {
	data := []byte(`{"id": [1, 2], "name": ["alice", "bob"], "ignored": [true, false]}`)
	//
	tbl, err := FromBytes(data, testSchema())
	//
	if err != nil {
		t.Fatal(err)
	} else if tbl.Height() != 2 || tbl.Width() != 2 {
		t.Fatalf("expected a 2x2 table, got %dx%d", tbl.Height(), tbl.Width())
	}
	//
	column, err := tbl.Column(table.Name("name"))
	//
	if err != nil {
		t.Fatal(err)
	} else if !column[1].Equal(value.Text("bob")) {
		t.Errorf("unexpected cell %s", column[1])
	}
}

func TestReadTableMissingColumn(t *testing.T) {
	if _, err := FromBytes([]byte(`{"id": [1]}`), testSchema()); err == nil {
		t.Error("expected a missing column error")
	}
}

func TestReadTableRaggedColumns(t *testing.T) {
	data := []byte(`{"id": [1, 2], "name": ["alice"]}`)
	//
	if _, err := FromBytes(data, testSchema()); err == nil {
		t.Error("expected a row count mismatch error")
	}
}

func TestRoundTrip(t *testing.T) {
	data := []byte(`{"id": [1, null], "name": ["alice", "2024-06-01T12:00:00Z"]}`)
	//
	tbl, err := FromBytes(data, testSchema())
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	rendered, err := ToBytes(tbl)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	again, err := FromBytes(rendered, testSchema())
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for i := uint(0); i < tbl.Width(); i++ {
		lhs, _ := tbl.Column(table.Ordinal(i))
		rhs, _ := again.Column(table.Ordinal(i))
		//
		for row := range lhs {
			if !lhs[row].Equal(rhs[row]) {
				t.Errorf("cell (%d, %d) did not survive the round trip: %s vs %s", row, i, lhs[row], rhs[row])
			}
		}
	}
}
