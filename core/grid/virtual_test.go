/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package grid

import (
	"fmt"
	"testing"

	"github.com/google/gridview/core/window"
	"github.com/google/safehtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtual_Descriptors(t *testing.T) {
	v := NewVirtual(VirtualOptions[person]{
		Columns:      Columns(Col("name", "Name"), Col("age", "Age")),
		ColumnWidths: map[string]int{"age": 60},
	})

	cols := v.Descriptors()
	require.Len(t, cols, 2)

	assert.Equal(t, "name", cols[0].DataKey)
	assert.Equal(t, "Name", cols[0].Label)
	assert.Equal(t, window.DefaultColumnWidth, cols[0].Width)
	assert.Equal(t, "header name", cols[0].HeaderClassName)
	assert.Equal(t, "cell name", cols[0].ClassName)
	assert.False(t, cols[0].DisableSort)

	assert.Equal(t, 60, cols[1].Width)
}

func TestVirtual_DefaultColumnWidth(t *testing.T) {
	v := NewVirtual(VirtualOptions[person]{
		Columns:      Columns(Col("name", "Name")),
		ColumnWidths: map[string]int{"name": 0},
		Window:       window.Config{DefaultColumnWidth: 90},
	})
	assert.Equal(t, 90, v.Descriptors()[0].Width)
}

func TestVirtual_ActionsDescriptor(t *testing.T) {
	action := Direct(seniority)
	v := NewVirtual(VirtualOptions[person]{
		Columns: Columns(Col("name", "Name")),
		Actions: []Action[person]{action, action, action},
	})

	cols := v.Descriptors()
	require.Len(t, cols, 2)
	actions := cols[1]
	assert.Equal(t, "actions", actions.DataKey)
	assert.Equal(t, "Actions", actions.Label)
	assert.Equal(t, 300, actions.Width)
	assert.True(t, actions.DisableSort)

	out := actions.CellRenderer(window.CellProps[person]{RowData: people[0]})
	assert.Equal(t, "SeniorSeniorSenior", out.String())
}

func TestVirtual_CellRenderers(t *testing.T) {
	var gotKey string
	v := NewVirtual(VirtualOptions[person]{
		Columns: Columns(Col("name", "Name"), Col("age", "Age")),
		Renderers: Renderers[person]{
			"age": func(value any, row person, key string) safehtml.HTML {
				gotKey = key
				return safehtml.HTMLEscaped(fmt.Sprintf("%v years", value))
			},
		},
	})

	vm := v.Build(people, 200, 0)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, "Ann", vm.Rows[0].Cells[0].Content.String())
	assert.Equal(t, "30 years", vm.Rows[0].Cells[1].Content.String())
	assert.Equal(t, "age", gotKey)
}

func TestVirtual_Children(t *testing.T) {
	children := []window.Column[person]{{DataKey: "custom", Label: "Custom", Width: 42}}
	v := NewVirtual(VirtualOptions[person]{
		Columns:  Columns(Col("name", "Name")),
		Actions:  []Action[person]{Direct(seniority)},
		Children: children,
	})

	assert.Equal(t, children, v.Descriptors())
}

func TestVirtual_RowGetter(t *testing.T) {
	v := NewVirtual(VirtualOptions[person]{Columns: Columns(Col("name", "Name"))})
	get := v.RowGetter(people)
	for i := range people {
		assert.Equal(t, people[i], get(i))
	}
}

func TestVirtual_Props(t *testing.T) {
	v := NewVirtual(VirtualOptions[person]{Columns: Columns(Col("name", "Name"))})
	p := v.Props(people)

	assert.Equal(t, 2, p.RowCount)
	assert.Equal(t, window.DefaultRowHeight, p.RowHeight)
	assert.Equal(t, window.DefaultHeaderHeight, p.HeaderHeight)
	assert.Equal(t, window.DefaultOverscanRowCount, p.OverscanRowCount)
	assert.Len(t, p.Columns, 1)
}

func TestVirtual_MaterializesOnlyWindow(t *testing.T) {
	rows := make([]person, 10_000)
	for i := range rows {
		rows[i] = person{Name: fmt.Sprintf("p%d", i), Age: i}
	}

	v := NewVirtual(VirtualOptions[person]{
		Columns: Columns(Col("name", "Name")),
		Window:  window.Config{RowHeight: 20, HeaderHeight: 35, OverscanRowCount: 10},
	})
	props := v.Props(rows)
	fetched := map[int]bool{}
	get := props.RowGetter
	props.RowGetter = func(i int) person {
		fetched[i] = true
		return get(i)
	}

	// 235px viewport = 35px header + 10 rows, scrolled to row 500
	vm := window.Build(props, 235, 500*20)

	assert.Equal(t, 500, vm.Start)
	assert.Equal(t, 510, vm.Stop)
	assert.Len(t, fetched, 30)
	assert.True(t, fetched[490])
	assert.True(t, fetched[519])
	assert.False(t, fetched[489])
	assert.Equal(t, "p500", vm.Rows[10].Cells[0].Content.String())
}

func TestVirtual_NoOverscan(t *testing.T) {
	rows := make([]person, 1000)
	for i := range rows {
		rows[i] = person{Name: fmt.Sprintf("p%d", i), Age: i}
	}

	v := NewVirtual(VirtualOptions[person]{
		Columns: Columns(Col("name", "Name")),
		Window:  window.Config{OverscanRowCount: window.NoOverscan},
	})
	assert.Equal(t, window.NoOverscan, v.Config().OverscanRowCount)

	vm := v.Build(rows, 235, 2000)
	assert.Equal(t, 100, vm.Start)
	assert.Equal(t, 110, vm.Stop)
	assert.Len(t, vm.Rows, vm.Stop-vm.Start)
	assert.Equal(t, "p100", vm.Rows[0].Cells[0].Content.String())
}

func TestVirtual_Empty(t *testing.T) {
	v := NewVirtual(VirtualOptions[person]{Columns: Columns(Col("name", "Name"))})
	vm := v.Build(nil, 300, 0)
	assert.True(t, vm.Empty)
	assert.Equal(t, "No data", vm.NoRows.String())
	assert.Empty(t, vm.Rows)

	custom := NewVirtual(VirtualOptions[person]{
		Columns:        Columns(Col("name", "Name")),
		NoRowsRenderer: func() safehtml.HTML { return safehtml.HTMLEscaped("Nothing yet") },
	})
	assert.Equal(t, "Nothing yet", custom.Build(nil, 300, 0).NoRows.String())
}
